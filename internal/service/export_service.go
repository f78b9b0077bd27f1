package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/flightlog/internal/calculator"
	"github.com/mmynk/flightlog/internal/middleware"
	"github.com/mmynk/flightlog/internal/models"
	"github.com/mmynk/flightlog/internal/objectstore"
	"github.com/mmynk/flightlog/internal/storage"
	"github.com/mmynk/flightlog/internal/xlsx"
	"github.com/mmynk/flightlog/pkg/api"
)

// ContentTypeXLSX is the media type of exported workbooks.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportService implements the Connect ExportService.
type ExportService struct {
	store   storage.FlightStore
	archive objectstore.Archive
}

// NewExportService creates an export service. archive may be nil, in which
// case workbooks are only returned inline.
func NewExportService(store storage.FlightStore, archive objectstore.Archive) *ExportService {
	return &ExportService{store: store, archive: archive}
}

// ExportFlightLog builds the workbook for a month, or for the whole log when
// no month is given.
func (s *ExportService) ExportFlightLog(ctx context.Context, req *connect.Request[api.ExportFlightLogRequest]) (*connect.Response[api.ExportFlightLogResponse], error) {
	userID := middleware.GetUserID(ctx)
	if err := requireCaller(userID); err != nil {
		return nil, err
	}

	month := strings.TrimSpace(req.Msg.Month)
	if month != "" && !calculator.ValidMonth(month) {
		return nil, connectError(&models.ValidationError{Field: "month", Reason: "must be YYYY-MM"})
	}

	entries, err := s.store.ListFlightEntries(ctx, models.FlightFilter{Month: month})
	if err != nil {
		slog.Error("ExportFlightLog: listing failed", "month", month, "error", err)
		return nil, connectError(err)
	}

	content, err := xlsx.Build(entries)
	if err != nil {
		slog.Error("ExportFlightLog: build failed", "month", month, "error", err)
		return nil, connectError(err)
	}

	resp := &api.ExportFlightLogResponse{
		Filename: xlsx.Filename(month),
		Content:  content,
	}
	if s.archive != nil {
		url, err := s.archive.Put(ctx, resp.Filename, ContentTypeXLSX, content)
		if err != nil {
			// The inline workbook is still useful without a link.
			slog.Warn("ExportFlightLog: archive upload failed", "filename", resp.Filename, "error", err)
		} else {
			resp.URL = url
		}
	}

	slog.Info("Flight log exported",
		"user_id", userID,
		"month", month,
		"entries", len(entries),
		"bytes", len(content),
		"archived", resp.URL != "",
	)
	return connect.NewResponse(resp), nil
}
