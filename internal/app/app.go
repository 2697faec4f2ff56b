package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"opsintel/internal/config"
	"opsintel/internal/database"
	"opsintel/internal/dataset"
	"opsintel/internal/handlers"
	"opsintel/internal/llm"
	"opsintel/internal/models"
	"opsintel/internal/repositories"
	"opsintel/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// App holds the loaded dataset, the query store and every service built on them
type App struct {
	Config   *config.Config
	DB       *database.DB
	Snapshot *dataset.Snapshot

	KPI       services.KPIServiceInterface
	Variance  services.VarianceServiceInterface
	Anomaly   services.AnomalyServiceInterface
	Formatter services.AlertFormatterInterface
	Report    services.ReportServiceInterface
	Store     services.StoreServiceInterface
	Assistant services.AssistantServiceInterface

	logger *slog.Logger
}

// New loads the dataset, opens the query store, syncs it and wires the services.
// Metrics are registered on reg.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	snapshot, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize query store: %w", err)
	}

	metrics := services.NewPrometheusMetricsWithRegistry(reg)
	alertLogger := services.NewAlertLogger(logger)

	kpiService := services.NewKPIService(snapshot)
	varianceService := services.NewVarianceService(kpiService)
	anomalyService := services.NewAnomalyService(kpiService, varianceService, alertLogger, metrics)
	formatter := services.NewAlertFormatter()

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	storeService := services.NewStoreService(transactionRepo, kpiService, alertLogger, metrics)

	a := &App{
		Config:    cfg,
		DB:        db,
		Snapshot:  snapshot,
		KPI:       kpiService,
		Variance:  varianceService,
		Anomaly:   anomalyService,
		Formatter: formatter,
		Report:    services.NewReportService(kpiService, anomalyService, formatter),
		Store:     storeService,
		logger:    logger,
	}

	if err := a.syncStore(ctx); err != nil {
		db.Close()
		return nil, err
	}

	generator := newGenerator(cfg.LLM, logger, alertLogger, metrics)
	a.Assistant = services.NewAssistantService(
		services.NewEngineRouter(),
		generator,
		alertLogger,
		metrics,
		services.NewSQLEngine(transactionRepo, generator),
		services.NewTabularEngine(snapshot, generator),
	)

	return a, nil
}

func (a *App) syncStore(ctx context.Context) error {
	if _, err := a.Store.Sync(ctx, a.Snapshot); err != nil {
		return err
	}

	drift, err := a.Store.Reconcile(ctx)
	if err != nil {
		a.logger.Warn("query store reconciliation failed", "error", err)
		return nil
	}
	if len(drift) > 0 {
		a.logger.Warn("query store totals differ from the dataset",
			"days", strings.Join(drift, ","))
	}
	return nil
}

// newGenerator returns the breaker-guarded language model, or a generator that
// always fails when the model is disabled
func newGenerator(cfg config.LLMConfig, logger *slog.Logger, alertLogger services.AlertLoggerInterface, metrics services.MetricsRecorderInterface) llm.Generator {
	var generator llm.Generator = llm.Disabled{}
	if cfg.Enabled {
		generator = llm.NewOllamaGenerator(cfg, logger)
	}

	breaker := services.NewCircuitBreaker(services.LLMCircuitBreakerConfig(cfg), alertLogger, metrics)
	return services.NewGuardedGenerator(generator, breaker, metrics)
}

// DetectionDefaults converts the alert configuration into detection options
func (a *App) DetectionDefaults() models.DetectionOptions {
	opts := models.DefaultDetectionOptions()
	opts.ThresholdPct = decimal.NewFromFloat(a.Config.Alerts.ThresholdPct)
	if a.Config.Alerts.ZScoreThreshold > 0 {
		opts.ZScoreThreshold = decimal.NewNullDecimal(decimal.NewFromFloat(a.Config.Alerts.ZScoreThreshold))
	}
	return opts
}

// DefaultMode is the configured assistant mode, auto when the setting is not a known mode
func (a *App) DefaultMode() models.EngineMode {
	mode := models.EngineMode(strings.ToLower(strings.TrimSpace(a.Config.Alerts.DefaultMode)))
	if !mode.IsValid() {
		a.logger.Warn("unknown assistant mode, using auto", "mode", a.Config.Alerts.DefaultMode)
		return models.EngineAuto
	}
	return mode
}

// Handlers builds the HTTP handlers over the wired services
func (a *App) Handlers() *handlers.Set {
	return &handlers.Set{
		Health:    handlers.NewHealthCheckHandler(a.DB.DB, a.Snapshot),
		KPI:       handlers.NewKPIHandler(a.KPI, a.Variance, a.Anomaly, a.Formatter, a.Report, a.DetectionDefaults()),
		Assistant: handlers.NewAssistantHandler(a.Assistant, a.DefaultMode(), a.Config.LLM.Interpret),
	}
}

func (a *App) Close() error {
	return a.DB.Close()
}
