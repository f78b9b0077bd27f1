package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/flightlog/pkg/api"
)

type fakeArchive struct {
	name        string
	contentType string
	size        int
	err         error
}

func (f *fakeArchive) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.name, f.contentType, f.size = name, contentType, len(data)
	return "https://archive.example.com/" + name, nil
}

func exportedFiles(t *testing.T, content []byte) int {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("export is not a zip archive: %v", err)
	}
	return len(zr.File)
}

func TestExportFlightLog(t *testing.T) {
	archive := &fakeArchive{}
	env := setupTestServer(t, archive)
	ctx := context.Background()
	c := env.register("cfi@example.com")
	addEntry(t, c, sampleEntry())

	resp, err := c.Export.ExportFlightLog(ctx, connect.NewRequest(&api.ExportFlightLogRequest{Month: "2025-06"}))
	if err != nil {
		t.Fatalf("ExportFlightLog failed: %v", err)
	}
	if resp.Msg.Filename != "flight-log-2025-06.xlsx" {
		t.Errorf("unexpected filename %s", resp.Msg.Filename)
	}
	if n := exportedFiles(t, resp.Msg.Content); n != 5 {
		t.Errorf("expected 5 parts, got %d", n)
	}
	if resp.Msg.URL != "https://archive.example.com/flight-log-2025-06.xlsx" {
		t.Errorf("unexpected url %q", resp.Msg.URL)
	}
	if archive.contentType != ContentTypeXLSX || archive.size != len(resp.Msg.Content) {
		t.Errorf("unexpected archive upload: %+v", archive)
	}

	_, err = c.Export.ExportFlightLog(ctx, connect.NewRequest(&api.ExportFlightLogRequest{Month: "06/2025"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestExportFlightLog_ArchiveFailureStillReturnsWorkbook(t *testing.T) {
	env := setupTestServer(t, &fakeArchive{err: errors.New("bucket unavailable")})
	c := env.register("cfi@example.com")

	resp, err := c.Export.ExportFlightLog(context.Background(), connect.NewRequest(&api.ExportFlightLogRequest{}))
	if err != nil {
		t.Fatalf("ExportFlightLog failed: %v", err)
	}
	if resp.Msg.Filename != "flight-log.xlsx" || resp.Msg.URL != "" {
		t.Errorf("unexpected response: %s %q", resp.Msg.Filename, resp.Msg.URL)
	}
	exportedFiles(t, resp.Msg.Content)
}
