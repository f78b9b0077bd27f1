// Package server assembles the flightlog HTTP handler: Connect services,
// health and metrics endpoints, and the request middleware.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/flightlog/internal/auth"
	"github.com/mmynk/flightlog/internal/middleware"
	"github.com/mmynk/flightlog/internal/objectstore"
	"github.com/mmynk/flightlog/internal/service"
	"github.com/mmynk/flightlog/internal/storage"
	"github.com/mmynk/flightlog/pkg/api"
)

// Store is the storage the server needs, including a health probe.
type Store interface {
	storage.Store
	Ping(ctx context.Context) error
}

// Options configures the handler.
type Options struct {
	JWTManager *auth.JWTManager
	// Archive is optional; exports are returned inline only when nil.
	Archive objectstore.Archive
	Logger  *slog.Logger

	// MetricsPath mounts the Prometheus handler when non-empty.
	MetricsPath string
	Registry    *prometheus.Registry

	CORSOrigin string
}

// New returns the complete HTTP handler, wrapped with h2c so Connect clients
// can use HTTP/2 without TLS.
func New(store Store, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	interceptors := []connect.Interceptor{}
	mux := http.NewServeMux()

	if opts.MetricsPath != "" {
		reg := opts.Registry
		if reg == nil {
			reg = prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		}
		interceptors = append(interceptors, middleware.NewMetrics(reg).Interceptor())
		mux.Handle("GET "+opts.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	interceptors = append(interceptors,
		middleware.RequireAuth(opts.JWTManager, api.PublicProcedures...),
		middleware.LoggingInterceptor(logger),
	)
	handlerOpts := connect.WithInterceptors(interceptors...)

	authenticator := auth.NewPasswordAuthenticator(store)
	mux.Handle(api.NewAuthServiceHandler(service.NewAuthService(authenticator, opts.JWTManager, store, logger), handlerOpts))
	mux.Handle(api.NewProfileServiceHandler(service.NewProfileService(store), handlerOpts))
	mux.Handle(api.NewCategoryServiceHandler(service.NewCategoryService(store), handlerOpts))
	mux.Handle(api.NewFlightServiceHandler(service.NewFlightService(store), handlerOpts))
	mux.Handle(api.NewExportServiceHandler(service.NewExportService(store, opts.Archive), handlerOpts))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			logger.Error("Health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	handler := loggingMiddleware(logger, corsMiddleware(opts.CORSOrigin, mux))
	return h2c.NewHandler(handler, &http2.Server{})
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(origin string, next http.Handler) http.Handler {
	if origin == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
