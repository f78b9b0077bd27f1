package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmynk/flightlog/internal/auth"
	"github.com/mmynk/flightlog/internal/config"
	"github.com/mmynk/flightlog/internal/objectstore"
	"github.com/mmynk/flightlog/internal/server"
	"github.com/mmynk/flightlog/internal/storage/sqlstore"
	"github.com/mmynk/flightlog/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlstore.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("Storage initialized", "driver", cfg.Database.Driver)

	opts := server.Options{
		JWTManager: auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL),
		Logger:     logger,
		CORSOrigin: cfg.Server.CORSOrigin,
	}
	if cfg.Metrics.Enabled {
		opts.MetricsPath = cfg.Metrics.Path
	}
	if cfg.Export.Enabled() {
		archive, err := objectstore.New(ctx, objectstore.Config{
			Bucket:       cfg.Export.Bucket,
			Region:       cfg.Export.Region,
			Endpoint:     cfg.Export.Endpoint,
			AccessKey:    cfg.Export.AccessKey,
			SecretKey:    cfg.Export.SecretKey,
			Prefix:       cfg.Export.Prefix,
			UsePathStyle: cfg.Export.UsePathStyle,
			PresignTTL:   cfg.Export.PresignTTL,
		})
		if err != nil {
			return err
		}
		opts.Archive = archive
		logger.Info("Export archive enabled", "bucket", cfg.Export.Bucket)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.New(store, opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Connect server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
