package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/flightlog/internal/auth"
	"github.com/mmynk/flightlog/internal/client"
	"github.com/mmynk/flightlog/internal/models"
	"github.com/mmynk/flightlog/internal/storage/sqlstore"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := sqlstore.New(filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)

	handler := New(store, Options{
		JWTManager:  auth.NewJWTManager("server-secret-server-secret-server", "flightlog", time.Hour),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		MetricsPath: "/metrics",
		Registry:    prometheus.NewRegistry(),
		CORSOrigin:  "*",
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		store.Close()
	})
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHealthz(t *testing.T) {
	srv := newServer(t)
	code, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok\n", body)
}

func TestEndToEnd_MetricsRecordRPCs(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()

	c := client.New(srv.URL)
	_, err := c.Register(ctx, "cfi@example.com", "correct-horse")
	require.NoError(t, err)
	require.NoError(t, c.AddCategory(ctx, models.CategoryAircraft, "C172"))
	names, err := c.Categories(ctx, models.CategoryAircraft)
	require.NoError(t, err)
	assert.Equal(t, []string{"C172"}, names)

	code, body := get(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `flightlog_rpc_requests_total{code="ok",procedure="/flightlog.v1.CategoryService/AddCategory"} 1`)
	assert.True(t, strings.Contains(body, "flightlog_rpc_duration_seconds_bucket"))
}

func TestCORSPreflight(t *testing.T) {
	srv := newServer(t)
	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/flightlog.v1.FlightService/GetFlightEntries", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestUnknownProcedure(t *testing.T) {
	srv := newServer(t)
	resp, err := http.Post(srv.URL+"/flightlog.v1.FlightService/Nope", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
