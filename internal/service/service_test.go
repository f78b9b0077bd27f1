package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/flightlog/internal/auth"
	"github.com/mmynk/flightlog/internal/middleware"
	"github.com/mmynk/flightlog/internal/objectstore"
	"github.com/mmynk/flightlog/internal/storage/sqlstore"
	"github.com/mmynk/flightlog/pkg/api"
)

const testSecret = "test-secret-test-secret-test-secret"

// testEnv is a running server backed by a temporary SQLite database.
type testEnv struct {
	t      *testing.T
	url    string
	store  *sqlstore.SQLStore
	jwt    *auth.JWTManager
	public *api.AuthServiceClient
}

// clients is one caller's view of the API.
type clients struct {
	Auth     *api.AuthServiceClient
	Profile  *api.ProfileServiceClient
	Category *api.CategoryServiceClient
	Flight   *api.FlightServiceClient
	Export   *api.ExportServiceClient
	UserID   string
}

func setupTestServer(t *testing.T, archive objectstore.Archive) *testEnv {
	t.Helper()

	store, err := sqlstore.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtManager := auth.NewJWTManager(testSecret, "flightlog-test", time.Hour)

	opts := connect.WithInterceptors(
		middleware.RequireAuth(jwtManager, api.PublicProcedures...),
		middleware.LoggingInterceptor(logger),
	)

	mux := http.NewServeMux()
	mux.Handle(api.NewAuthServiceHandler(NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, store, logger), opts))
	mux.Handle(api.NewProfileServiceHandler(NewProfileService(store), opts))
	mux.Handle(api.NewCategoryServiceHandler(NewCategoryService(store), opts))
	mux.Handle(api.NewFlightServiceHandler(NewFlightService(store), opts))
	mux.Handle(api.NewExportServiceHandler(NewExportService(store, archive), opts))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{
		t:      t,
		url:    server.URL,
		store:  store,
		jwt:    jwtManager,
		public: api.NewAuthServiceClient(http.DefaultClient, server.URL),
	}
}

func bearer(token string) connect.ClientOption {
	return connect.WithInterceptors(connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set("Authorization", "Bearer "+token)
			return next(ctx, req)
		}
	}))
}

func (e *testEnv) clients(token, userID string) *clients {
	opt := bearer(token)
	return &clients{
		Auth:     api.NewAuthServiceClient(http.DefaultClient, e.url, opt),
		Profile:  api.NewProfileServiceClient(http.DefaultClient, e.url, opt),
		Category: api.NewCategoryServiceClient(http.DefaultClient, e.url, opt),
		Flight:   api.NewFlightServiceClient(http.DefaultClient, e.url, opt),
		Export:   api.NewExportServiceClient(http.DefaultClient, e.url, opt),
		UserID:   userID,
	}
}

// register creates an account and returns clients authenticated as it.
func (e *testEnv) register(email string) *clients {
	e.t.Helper()
	resp, err := e.public.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:    email,
		Password: "correct-horse",
	}))
	if err != nil {
		e.t.Fatalf("Register(%s) failed: %v", email, err)
	}
	return e.clients(resp.Msg.Token, resp.Msg.User.ID)
}

func sampleEntry() *api.FlightEntry {
	return &api.FlightEntry{
		Date:         "2025-06-01",
		Student:      "Alice",
		Instructor:   "Bob",
		Aircraft:     "C172",
		Exercise:     "Circuits",
		FlightType:   "dual",
		TakeoffTime:  "09:00",
		LandingTime:  "10:30",
		LandingType:  "day",
		LandingCount: 3,
	}
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}
