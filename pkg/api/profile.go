package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

var (
	ProfileServiceSaveCallerUserProfileProcedure = procedure(ProfileServiceName, "SaveCallerUserProfile")
	ProfileServiceGetCallerUserProfileProcedure  = procedure(ProfileServiceName, "GetCallerUserProfile")
	ProfileServiceGetUserProfileProcedure        = procedure(ProfileServiceName, "GetUserProfile")
	ProfileServiceGetCallerUserRoleProcedure     = procedure(ProfileServiceName, "GetCallerUserRole")
	ProfileServiceIsCallerAdminProcedure         = procedure(ProfileServiceName, "IsCallerAdmin")
	ProfileServiceAssignCallerUserRoleProcedure  = procedure(ProfileServiceName, "AssignCallerUserRole")
)

// ProfileServiceHandler is implemented by the server.
type ProfileServiceHandler interface {
	SaveCallerUserProfile(context.Context, *connect.Request[SaveCallerUserProfileRequest]) (*connect.Response[SaveCallerUserProfileResponse], error)
	GetCallerUserProfile(context.Context, *connect.Request[GetCallerUserProfileRequest]) (*connect.Response[GetCallerUserProfileResponse], error)
	GetUserProfile(context.Context, *connect.Request[GetUserProfileRequest]) (*connect.Response[GetUserProfileResponse], error)
	GetCallerUserRole(context.Context, *connect.Request[GetCallerUserRoleRequest]) (*connect.Response[GetCallerUserRoleResponse], error)
	IsCallerAdmin(context.Context, *connect.Request[IsCallerAdminRequest]) (*connect.Response[IsCallerAdminResponse], error)
	AssignCallerUserRole(context.Context, *connect.Request[AssignCallerUserRoleRequest]) (*connect.Response[AssignCallerUserRoleResponse], error)
}

// NewProfileServiceHandler builds an HTTP handler from the service implementation.
func NewProfileServiceHandler(svc ProfileServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return route(ProfileServiceName, map[string]http.Handler{
		ProfileServiceSaveCallerUserProfileProcedure: connect.NewUnaryHandler(ProfileServiceSaveCallerUserProfileProcedure, svc.SaveCallerUserProfile, opts...),
		ProfileServiceGetCallerUserProfileProcedure:  connect.NewUnaryHandler(ProfileServiceGetCallerUserProfileProcedure, svc.GetCallerUserProfile, opts...),
		ProfileServiceGetUserProfileProcedure:        connect.NewUnaryHandler(ProfileServiceGetUserProfileProcedure, svc.GetUserProfile, opts...),
		ProfileServiceGetCallerUserRoleProcedure:     connect.NewUnaryHandler(ProfileServiceGetCallerUserRoleProcedure, svc.GetCallerUserRole, opts...),
		ProfileServiceIsCallerAdminProcedure:         connect.NewUnaryHandler(ProfileServiceIsCallerAdminProcedure, svc.IsCallerAdmin, opts...),
		ProfileServiceAssignCallerUserRoleProcedure:  connect.NewUnaryHandler(ProfileServiceAssignCallerUserRoleProcedure, svc.AssignCallerUserRole, opts...),
	})
}

// ProfileServiceClient is a client for the flightlog.v1.ProfileService service.
type ProfileServiceClient struct {
	saveCallerUserProfile *connect.Client[SaveCallerUserProfileRequest, SaveCallerUserProfileResponse]
	getCallerUserProfile  *connect.Client[GetCallerUserProfileRequest, GetCallerUserProfileResponse]
	getUserProfile        *connect.Client[GetUserProfileRequest, GetUserProfileResponse]
	getCallerUserRole     *connect.Client[GetCallerUserRoleRequest, GetCallerUserRoleResponse]
	isCallerAdmin         *connect.Client[IsCallerAdminRequest, IsCallerAdminResponse]
	assignCallerUserRole  *connect.Client[AssignCallerUserRoleRequest, AssignCallerUserRoleResponse]
}

func NewProfileServiceClient(httpClient connect.HTTPClient, url string, opts ...connect.ClientOption) *ProfileServiceClient {
	url = baseURL(url)
	opts = clientOptions(opts)
	return &ProfileServiceClient{
		saveCallerUserProfile: connect.NewClient[SaveCallerUserProfileRequest, SaveCallerUserProfileResponse](httpClient, url+ProfileServiceSaveCallerUserProfileProcedure, opts...),
		getCallerUserProfile:  connect.NewClient[GetCallerUserProfileRequest, GetCallerUserProfileResponse](httpClient, url+ProfileServiceGetCallerUserProfileProcedure, opts...),
		getUserProfile:        connect.NewClient[GetUserProfileRequest, GetUserProfileResponse](httpClient, url+ProfileServiceGetUserProfileProcedure, opts...),
		getCallerUserRole:     connect.NewClient[GetCallerUserRoleRequest, GetCallerUserRoleResponse](httpClient, url+ProfileServiceGetCallerUserRoleProcedure, opts...),
		isCallerAdmin:         connect.NewClient[IsCallerAdminRequest, IsCallerAdminResponse](httpClient, url+ProfileServiceIsCallerAdminProcedure, opts...),
		assignCallerUserRole:  connect.NewClient[AssignCallerUserRoleRequest, AssignCallerUserRoleResponse](httpClient, url+ProfileServiceAssignCallerUserRoleProcedure, opts...),
	}
}

func (c *ProfileServiceClient) SaveCallerUserProfile(ctx context.Context, req *connect.Request[SaveCallerUserProfileRequest]) (*connect.Response[SaveCallerUserProfileResponse], error) {
	return c.saveCallerUserProfile.CallUnary(ctx, req)
}

func (c *ProfileServiceClient) GetCallerUserProfile(ctx context.Context, req *connect.Request[GetCallerUserProfileRequest]) (*connect.Response[GetCallerUserProfileResponse], error) {
	return c.getCallerUserProfile.CallUnary(ctx, req)
}

func (c *ProfileServiceClient) GetUserProfile(ctx context.Context, req *connect.Request[GetUserProfileRequest]) (*connect.Response[GetUserProfileResponse], error) {
	return c.getUserProfile.CallUnary(ctx, req)
}

func (c *ProfileServiceClient) GetCallerUserRole(ctx context.Context, req *connect.Request[GetCallerUserRoleRequest]) (*connect.Response[GetCallerUserRoleResponse], error) {
	return c.getCallerUserRole.CallUnary(ctx, req)
}

func (c *ProfileServiceClient) IsCallerAdmin(ctx context.Context, req *connect.Request[IsCallerAdminRequest]) (*connect.Response[IsCallerAdminResponse], error) {
	return c.isCallerAdmin.CallUnary(ctx, req)
}

func (c *ProfileServiceClient) AssignCallerUserRole(ctx context.Context, req *connect.Request[AssignCallerUserRoleRequest]) (*connect.Response[AssignCallerUserRoleResponse], error) {
	return c.assignCallerUserRole.CallUnary(ctx, req)
}
