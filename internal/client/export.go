package client

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/flightlog/internal/calculator"
	"github.com/mmynk/flightlog/internal/models"
	"github.com/mmynk/flightlog/internal/xlsx"
	"github.com/mmynk/flightlog/pkg/api"
)

// ExportXLSX builds the workbook for month (YYYY-MM, or "" for every entry)
// locally from the cached entry listing. It returns the suggested file name
// and the workbook bytes.
func (c *Client) ExportXLSX(ctx context.Context, month string) (string, []byte, error) {
	if month != "" && !calculator.ValidMonth(month) {
		return "", nil, &models.ValidationError{Field: "month", Reason: "must be YYYY-MM"}
	}
	entries, err := c.Entries(ctx, models.FlightFilter{Month: month})
	if err != nil {
		return "", nil, err
	}
	data, err := xlsx.Build(entries)
	if err != nil {
		return "", nil, err
	}
	return xlsx.Filename(month), data, nil
}

// ExportRemote asks the server to build the workbook. The response carries a
// download URL when the server archives exports.
func (c *Client) ExportRemote(ctx context.Context, month string) (*api.ExportFlightLogResponse, error) {
	resp, err := c.export.ExportFlightLog(ctx, connect.NewRequest(&api.ExportFlightLogRequest{Month: month}))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}
