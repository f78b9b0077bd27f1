package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/flightlog/internal/middleware"
	"github.com/mmynk/flightlog/internal/models"
	"github.com/mmynk/flightlog/internal/storage"
	"github.com/mmynk/flightlog/pkg/api"
)

// ProfileStore is the storage the profile service needs.
type ProfileStore interface {
	storage.UserStore
	storage.ProfileStore
}

// ProfileService implements the Connect ProfileService. Roles are read from
// storage on every call so that role changes apply before tokens expire.
type ProfileService struct {
	store ProfileStore
}

func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

// callerRole loads the caller's current role.
func (s *ProfileService) callerRole(ctx context.Context) (string, models.Role, error) {
	userID := middleware.GetUserID(ctx)
	if err := requireCaller(userID); err != nil {
		return "", "", err
	}
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return "", "", connectError(err)
	}
	return userID, user.Role, nil
}

// SaveCallerUserProfile sets the caller's display name.
func (s *ProfileService) SaveCallerUserProfile(ctx context.Context, req *connect.Request[api.SaveCallerUserProfileRequest]) (*connect.Response[api.SaveCallerUserProfileResponse], error) {
	userID := middleware.GetUserID(ctx)
	if err := requireCaller(userID); err != nil {
		return nil, err
	}

	name := ""
	if req.Msg.Profile != nil {
		name = strings.TrimSpace(req.Msg.Profile.Name)
	}
	if name == "" {
		return nil, connectError(&models.ValidationError{Field: "name", Reason: "is required"})
	}

	if err := s.store.SaveProfile(ctx, userID, &models.UserProfile{Name: name}); err != nil {
		slog.Error("SaveCallerUserProfile failed", "user_id", userID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Profile saved", "user_id", userID)
	return connect.NewResponse(&api.SaveCallerUserProfileResponse{}), nil
}

// GetCallerUserProfile returns the caller's profile, or none if unset.
func (s *ProfileService) GetCallerUserProfile(ctx context.Context, req *connect.Request[api.GetCallerUserProfileRequest]) (*connect.Response[api.GetCallerUserProfileResponse], error) {
	userID := middleware.GetUserID(ctx)
	if err := requireCaller(userID); err != nil {
		return nil, err
	}

	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.GetCallerUserProfileResponse{Profile: profileToAPI(profile)}), nil
}

// GetUserProfile returns another user's profile, or none if unset.
func (s *ProfileService) GetUserProfile(ctx context.Context, req *connect.Request[api.GetUserProfileRequest]) (*connect.Response[api.GetUserProfileResponse], error) {
	if err := requireCaller(middleware.GetUserID(ctx)); err != nil {
		return nil, err
	}
	if req.Msg.UserID == "" {
		return nil, connectError(&models.ValidationError{Field: "userId", Reason: "is required"})
	}

	profile, err := s.store.GetProfile(ctx, req.Msg.UserID)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.GetUserProfileResponse{Profile: profileToAPI(profile)}), nil
}

func (s *ProfileService) GetCallerUserRole(ctx context.Context, req *connect.Request[api.GetCallerUserRoleRequest]) (*connect.Response[api.GetCallerUserRoleResponse], error) {
	_, role, err := s.callerRole(ctx)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.GetCallerUserRoleResponse{Role: string(role)}), nil
}

func (s *ProfileService) IsCallerAdmin(ctx context.Context, req *connect.Request[api.IsCallerAdminRequest]) (*connect.Response[api.IsCallerAdminResponse], error) {
	_, role, err := s.callerRole(ctx)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.IsCallerAdminResponse{IsAdmin: role == models.RoleAdmin}), nil
}

// AssignCallerUserRole changes the role of another user. Admin only.
func (s *ProfileService) AssignCallerUserRole(ctx context.Context, req *connect.Request[api.AssignCallerUserRoleRequest]) (*connect.Response[api.AssignCallerUserRoleResponse], error) {
	callerID, role, err := s.callerRole(ctx)
	if err != nil {
		return nil, err
	}
	if role != models.RoleAdmin {
		return nil, connect.NewError(connect.CodePermissionDenied, middleware.ErrAdminRequired)
	}

	target := models.Role(strings.ToLower(strings.TrimSpace(req.Msg.Role)))
	if !target.Valid() {
		return nil, connectError(&models.ValidationError{Field: "role", Reason: "must be admin, user or guest"})
	}
	if req.Msg.UserID == "" {
		return nil, connectError(&models.ValidationError{Field: "userId", Reason: "is required"})
	}

	if err := s.store.UpdateUserRole(ctx, req.Msg.UserID, target); err != nil {
		slog.Error("AssignCallerUserRole failed", "user_id", req.Msg.UserID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Role assigned", "by", callerID, "user_id", req.Msg.UserID, "role", target)
	return connect.NewResponse(&api.AssignCallerUserRoleResponse{}), nil
}

func profileToAPI(p *models.UserProfile) *api.UserProfile {
	if p == nil {
		return nil
	}
	return &api.UserProfile{Name: p.Name}
}
