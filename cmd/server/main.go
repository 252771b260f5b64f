package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"quiz_backend/internal/app/di"
	"quiz_backend/internal/app/router"
	"quiz_backend/internal/config"
	"quiz_backend/internal/feature/catalog/adapters"
	"quiz_backend/internal/platform/db"
	httpserver "quiz_backend/internal/platform/http"
	"quiz_backend/internal/platform/logging"
	"quiz_backend/internal/shared/ratelimiter"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stdout, logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	// db
	gdb, err := db.OpenDB(cfg.Database.DB(), logger)
	if err != nil {
		return err
	}
	if cfg.Database.RunMigrations {
		if err := db.Migrate(gdb, adapters.Models()...); err != nil {
			return err
		}
		logger.Info("schema migrated")
	}
	gw := db.NewGateway(gdb, db.WithAtomicSave(cfg.Database.AtomicSave))
	logger.Info("gateway ready", "atomic_save", gw.AtomicSave())
	defer func() {
		if err := gw.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	handlers, err := di.NewCatalogHandlers(gw, di.AuthSettings{
		JWTSecret: cfg.Auth.JWTSecret,
		TokenTTL:  cfg.Auth.TokenTTL,
	})
	if err != nil {
		return err
	}

	opts := router.Options{
		JWTSecret:          cfg.Auth.JWTSecret,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		TrustedProxies:     cfg.Server.TrustedProxies,
		Logger:             logger,
	}
	if cfg.Auth.RateLimit > 0 {
		opts.AuthRateLimiter = ratelimiter.NewRateLimiter(cfg.Auth.RateLimit, cfg.Auth.RateWindow)
	}

	// ルータ生成
	r, err := router.NewRouter(handlers, opts)
	if err != nil {
		return err
	}
	srv := httpserver.NewServer(cfg.Server.HTTP(), r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.Env)
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

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
