package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

var (
	FlightServiceAddFlightEntryProcedure          = procedure(FlightServiceName, "AddFlightEntry")
	FlightServiceGetFlightEntriesProcedure        = procedure(FlightServiceName, "GetFlightEntries")
	FlightServiceGetFlightEntryProcedure          = procedure(FlightServiceName, "GetFlightEntry")
	FlightServiceUpdateFlightEntryProcedure       = procedure(FlightServiceName, "UpdateFlightEntry")
	FlightServiceDeleteFlightEntryProcedure       = procedure(FlightServiceName, "DeleteFlightEntry")
	FlightServiceGetTotalHoursByAircraftProcedure = procedure(FlightServiceName, "GetTotalHoursByAircraft")
	FlightServiceGetTotalHoursByStudentProcedure  = procedure(FlightServiceName, "GetTotalHoursByStudent")
	FlightServiceGetDailyHoursProcedure           = procedure(FlightServiceName, "GetDailyHours")
	FlightServiceGetMonthlyHoursProcedure         = procedure(FlightServiceName, "GetMonthlyHours")
)

// FlightServiceHandler is implemented by the server.
type FlightServiceHandler interface {
	AddFlightEntry(context.Context, *connect.Request[AddFlightEntryRequest]) (*connect.Response[AddFlightEntryResponse], error)
	GetFlightEntries(context.Context, *connect.Request[GetFlightEntriesRequest]) (*connect.Response[GetFlightEntriesResponse], error)
	GetFlightEntry(context.Context, *connect.Request[GetFlightEntryRequest]) (*connect.Response[GetFlightEntryResponse], error)
	UpdateFlightEntry(context.Context, *connect.Request[UpdateFlightEntryRequest]) (*connect.Response[UpdateFlightEntryResponse], error)
	DeleteFlightEntry(context.Context, *connect.Request[DeleteFlightEntryRequest]) (*connect.Response[DeleteFlightEntryResponse], error)
	GetTotalHoursByAircraft(context.Context, *connect.Request[GetTotalHoursByAircraftRequest]) (*connect.Response[GetTotalHoursByAircraftResponse], error)
	GetTotalHoursByStudent(context.Context, *connect.Request[GetTotalHoursByStudentRequest]) (*connect.Response[GetTotalHoursByStudentResponse], error)
	GetDailyHours(context.Context, *connect.Request[GetDailyHoursRequest]) (*connect.Response[GetDailyHoursResponse], error)
	GetMonthlyHours(context.Context, *connect.Request[GetMonthlyHoursRequest]) (*connect.Response[GetMonthlyHoursResponse], error)
}

func NewFlightServiceHandler(svc FlightServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return route(FlightServiceName, map[string]http.Handler{
		FlightServiceAddFlightEntryProcedure:          connect.NewUnaryHandler(FlightServiceAddFlightEntryProcedure, svc.AddFlightEntry, opts...),
		FlightServiceGetFlightEntriesProcedure:        connect.NewUnaryHandler(FlightServiceGetFlightEntriesProcedure, svc.GetFlightEntries, opts...),
		FlightServiceGetFlightEntryProcedure:          connect.NewUnaryHandler(FlightServiceGetFlightEntryProcedure, svc.GetFlightEntry, opts...),
		FlightServiceUpdateFlightEntryProcedure:       connect.NewUnaryHandler(FlightServiceUpdateFlightEntryProcedure, svc.UpdateFlightEntry, opts...),
		FlightServiceDeleteFlightEntryProcedure:       connect.NewUnaryHandler(FlightServiceDeleteFlightEntryProcedure, svc.DeleteFlightEntry, opts...),
		FlightServiceGetTotalHoursByAircraftProcedure: connect.NewUnaryHandler(FlightServiceGetTotalHoursByAircraftProcedure, svc.GetTotalHoursByAircraft, opts...),
		FlightServiceGetTotalHoursByStudentProcedure:  connect.NewUnaryHandler(FlightServiceGetTotalHoursByStudentProcedure, svc.GetTotalHoursByStudent, opts...),
		FlightServiceGetDailyHoursProcedure:           connect.NewUnaryHandler(FlightServiceGetDailyHoursProcedure, svc.GetDailyHours, opts...),
		FlightServiceGetMonthlyHoursProcedure:         connect.NewUnaryHandler(FlightServiceGetMonthlyHoursProcedure, svc.GetMonthlyHours, opts...),
	})
}

// FlightServiceClient is a client for the flightlog.v1.FlightService service.
type FlightServiceClient struct {
	addFlightEntry          *connect.Client[AddFlightEntryRequest, AddFlightEntryResponse]
	getFlightEntries        *connect.Client[GetFlightEntriesRequest, GetFlightEntriesResponse]
	getFlightEntry          *connect.Client[GetFlightEntryRequest, GetFlightEntryResponse]
	updateFlightEntry       *connect.Client[UpdateFlightEntryRequest, UpdateFlightEntryResponse]
	deleteFlightEntry       *connect.Client[DeleteFlightEntryRequest, DeleteFlightEntryResponse]
	getTotalHoursByAircraft *connect.Client[GetTotalHoursByAircraftRequest, GetTotalHoursByAircraftResponse]
	getTotalHoursByStudent  *connect.Client[GetTotalHoursByStudentRequest, GetTotalHoursByStudentResponse]
	getDailyHours           *connect.Client[GetDailyHoursRequest, GetDailyHoursResponse]
	getMonthlyHours         *connect.Client[GetMonthlyHoursRequest, GetMonthlyHoursResponse]
}

func NewFlightServiceClient(httpClient connect.HTTPClient, url string, opts ...connect.ClientOption) *FlightServiceClient {
	url = baseURL(url)
	opts = clientOptions(opts)
	return &FlightServiceClient{
		addFlightEntry:          connect.NewClient[AddFlightEntryRequest, AddFlightEntryResponse](httpClient, url+FlightServiceAddFlightEntryProcedure, opts...),
		getFlightEntries:        connect.NewClient[GetFlightEntriesRequest, GetFlightEntriesResponse](httpClient, url+FlightServiceGetFlightEntriesProcedure, opts...),
		getFlightEntry:          connect.NewClient[GetFlightEntryRequest, GetFlightEntryResponse](httpClient, url+FlightServiceGetFlightEntryProcedure, opts...),
		updateFlightEntry:       connect.NewClient[UpdateFlightEntryRequest, UpdateFlightEntryResponse](httpClient, url+FlightServiceUpdateFlightEntryProcedure, opts...),
		deleteFlightEntry:       connect.NewClient[DeleteFlightEntryRequest, DeleteFlightEntryResponse](httpClient, url+FlightServiceDeleteFlightEntryProcedure, opts...),
		getTotalHoursByAircraft: connect.NewClient[GetTotalHoursByAircraftRequest, GetTotalHoursByAircraftResponse](httpClient, url+FlightServiceGetTotalHoursByAircraftProcedure, opts...),
		getTotalHoursByStudent:  connect.NewClient[GetTotalHoursByStudentRequest, GetTotalHoursByStudentResponse](httpClient, url+FlightServiceGetTotalHoursByStudentProcedure, opts...),
		getDailyHours:           connect.NewClient[GetDailyHoursRequest, GetDailyHoursResponse](httpClient, url+FlightServiceGetDailyHoursProcedure, opts...),
		getMonthlyHours:         connect.NewClient[GetMonthlyHoursRequest, GetMonthlyHoursResponse](httpClient, url+FlightServiceGetMonthlyHoursProcedure, opts...),
	}
}

func (c *FlightServiceClient) AddFlightEntry(ctx context.Context, req *connect.Request[AddFlightEntryRequest]) (*connect.Response[AddFlightEntryResponse], error) {
	return c.addFlightEntry.CallUnary(ctx, req)
}

func (c *FlightServiceClient) GetFlightEntries(ctx context.Context, req *connect.Request[GetFlightEntriesRequest]) (*connect.Response[GetFlightEntriesResponse], error) {
	return c.getFlightEntries.CallUnary(ctx, req)
}

func (c *FlightServiceClient) GetFlightEntry(ctx context.Context, req *connect.Request[GetFlightEntryRequest]) (*connect.Response[GetFlightEntryResponse], error) {
	return c.getFlightEntry.CallUnary(ctx, req)
}

func (c *FlightServiceClient) UpdateFlightEntry(ctx context.Context, req *connect.Request[UpdateFlightEntryRequest]) (*connect.Response[UpdateFlightEntryResponse], error) {
	return c.updateFlightEntry.CallUnary(ctx, req)
}

func (c *FlightServiceClient) DeleteFlightEntry(ctx context.Context, req *connect.Request[DeleteFlightEntryRequest]) (*connect.Response[DeleteFlightEntryResponse], error) {
	return c.deleteFlightEntry.CallUnary(ctx, req)
}

func (c *FlightServiceClient) GetTotalHoursByAircraft(ctx context.Context, req *connect.Request[GetTotalHoursByAircraftRequest]) (*connect.Response[GetTotalHoursByAircraftResponse], error) {
	return c.getTotalHoursByAircraft.CallUnary(ctx, req)
}

func (c *FlightServiceClient) GetTotalHoursByStudent(ctx context.Context, req *connect.Request[GetTotalHoursByStudentRequest]) (*connect.Response[GetTotalHoursByStudentResponse], error) {
	return c.getTotalHoursByStudent.CallUnary(ctx, req)
}

func (c *FlightServiceClient) GetDailyHours(ctx context.Context, req *connect.Request[GetDailyHoursRequest]) (*connect.Response[GetDailyHoursResponse], error) {
	return c.getDailyHours.CallUnary(ctx, req)
}

func (c *FlightServiceClient) GetMonthlyHours(ctx context.Context, req *connect.Request[GetMonthlyHoursRequest]) (*connect.Response[GetMonthlyHoursResponse], error) {
	return c.getMonthlyHours.CallUnary(ctx, req)
}
