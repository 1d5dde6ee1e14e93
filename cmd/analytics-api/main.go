package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ledger-analytics/internal/app"
	"ledger-analytics/internal/config"
	"ledger-analytics/internal/database"
	"ledger-analytics/internal/handlers"
	"ledger-analytics/internal/middleware"
	"ledger-analytics/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.IsDevelopment() {
		opts.Level = slog.LevelDebug
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	analytics, err := app.New(ctx, cfg, db.DB, prometheus.DefaultRegisterer, logger)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	e := newServer(cfg, db, analytics, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	schedulerDone := make(chan error, 1)
	go func() { schedulerDone <- analytics.Scheduler.Start(ctx) }()
	go limiter.Run(ctx)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down server")
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case err := <-schedulerDone:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}

	logger.Info("server stopped")
	return nil
}

func newServer(cfg *config.Config, db *database.DB, analytics *app.App, limiter *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID},
	}))
	e.Use(limiter.Middleware())

	health := handlers.NewHealthCheckHandler(db.DB, analytics.Store)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1/analytics")
	var refreshGuards []echo.MiddlewareFunc
	if cfg.Auth.PublicKey != nil {
		api.Use(middleware.RequireAuth(services.NewTokenService(cfg.Auth.PublicKey, cfg.Auth.Issuer)))
		refreshGuards = append(refreshGuards, middleware.RequireAdmin())
	} else {
		slog.Warn("bearer token verification disabled, analytics routes are public")
	}

	handlers.NewAnalyticsHandler(
		analytics.Store,
		analytics.Forecasts,
		analytics.Risk,
		analytics.Goals,
		analytics.Scenarios,
		analytics.Insights,
		cfg.Analytics.DefaultCurrency,
	).RegisterRoutes(api, refreshGuards...)

	return e
}
