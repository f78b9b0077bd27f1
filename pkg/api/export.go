package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

var ExportServiceExportFlightLogProcedure = procedure(ExportServiceName, "ExportFlightLog")

// ExportServiceHandler is implemented by the server.
type ExportServiceHandler interface {
	ExportFlightLog(context.Context, *connect.Request[ExportFlightLogRequest]) (*connect.Response[ExportFlightLogResponse], error)
}

func NewExportServiceHandler(svc ExportServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return route(ExportServiceName, map[string]http.Handler{
		ExportServiceExportFlightLogProcedure: connect.NewUnaryHandler(ExportServiceExportFlightLogProcedure, svc.ExportFlightLog, opts...),
	})
}

// ExportServiceClient is a client for the flightlog.v1.ExportService service.
type ExportServiceClient struct {
	exportFlightLog *connect.Client[ExportFlightLogRequest, ExportFlightLogResponse]
}

func NewExportServiceClient(httpClient connect.HTTPClient, url string, opts ...connect.ClientOption) *ExportServiceClient {
	url = baseURL(url)
	opts = clientOptions(opts)
	return &ExportServiceClient{
		exportFlightLog: connect.NewClient[ExportFlightLogRequest, ExportFlightLogResponse](httpClient, url+ExportServiceExportFlightLogProcedure, opts...),
	}
}

func (c *ExportServiceClient) ExportFlightLog(ctx context.Context, req *connect.Request[ExportFlightLogRequest]) (*connect.Response[ExportFlightLogResponse], error) {
	return c.exportFlightLog.CallUnary(ctx, req)
}
