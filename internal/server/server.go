package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"opsintel/internal/config"
	"opsintel/internal/handlers"
	"opsintel/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 30 * time.Second

// New builds the echo instance with the middleware chain and every route mounted.
// Metrics are served from gatherer. Background middleware work stops when ctx is done.
func New(ctx context.Context, cfg *config.Config, h *handlers.Set, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDevelopment()
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	// X-Forwarded-For is only honoured when it arrives through loopback or private network proxies
	e.IPExtractor = echo.ExtractIPFromXFFHeader()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(echomw.BodyLimit("64K"))

	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1")

	kpis := api.Group("/kpis")
	kpis.GET("/daily", h.KPI.DailyKPIs)
	kpis.GET("/segments", h.KPI.SegmentBreakdowns)
	kpis.GET("/variances", h.KPI.Variances)

	api.GET("/alerts", h.KPI.Alerts)
	api.GET("/reports/daily", h.KPI.DailyReport)

	rps := cfg.Security.RateLimitPerSecond
	if rps <= 0 {
		rps = 5
	}
	assistant := api.Group("/assistant", middleware.RateLimiter(ctx, rps, 2*rps))
	assistant.POST("/ask", h.Assistant.Ask)
	assistant.POST("/compare", h.Assistant.Compare)

	return e
}

// Run serves e until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, e *echo.Echo, cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", srv.Addr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("Server exited")
	return nil
}
