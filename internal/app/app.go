package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"ledger-analytics/internal/config"
	"ledger-analytics/internal/repositories"
	"ledger-analytics/internal/services"
)

// App holds the analytics services shared by the API server and the CLI.
type App struct {
	Store     *services.AggregationStore
	Forecasts *services.ForecastService
	Risk      services.RiskServiceInterface
	Goals     *services.GoalService
	Scenarios *services.ScenarioService
	Insights  *services.InsightService
	Scheduler *services.RefreshScheduler
	Metrics   services.MetricsRecorderInterface
	Breaker   services.CircuitBreakerInterface

	LedgerWriter repositories.LedgerWriterInterface
	Categories   repositories.CategoryRepositoryInterface
}

// New wires repositories and services over db. reg may be nil, in which
// case metrics are discarded.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, reg prometheus.Registerer, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var metrics services.MetricsRecorderInterface = services.NoopMetrics{}
	if reg != nil {
		metrics = services.NewPrometheusMetrics(reg)
	}
	audit := services.NewAuditLogger(logger)

	ledgerRepo := repositories.NewLedgerRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	goalRepo := repositories.NewGoalRepository(db)

	opts := []services.AggregationStoreOption{
		services.WithStoreMetrics(metrics),
		services.WithStoreAuditLogger(audit),
	}
	if cfg.Analytics.PersistSnapshots {
		opts = append(opts, services.WithSnapshotRepository(repositories.NewViewSnapshotRepository(db)))
	}
	store := services.NewAggregationStore(ledgerRepo, categoryRepo, opts...)

	if cfg.Analytics.PersistSnapshots {
		if err := store.Restore(ctx); err != nil {
			logger.Warn("could not restore aggregate snapshot, starting empty", slog.String("error", err.Error()))
		}
	}

	weights := services.ModelWeights(cfg.Analytics.GoalWeights)
	currency := cfg.Analytics.DefaultCurrency

	risk := services.NewRiskService()
	forecasts := services.NewForecastService(store, currency, cfg.Analytics.DefaultHorizon, cfg.Analytics.MaxHorizon, metrics, audit)
	goals := services.NewGoalService(store, risk, goalRepo, weights, currency, metrics, audit)
	scenarios := services.NewScenarioService(store, risk, weights, currency, metrics)

	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		Name:         "narrative",
		MaxFailures:  cfg.Narrative.FailureThreshold,
		ResetTimeout: cfg.Narrative.ResetTimeout,
	}, metrics)

	narrator, err := newNarrator(ctx, cfg.Narrative, logger)
	if err != nil {
		return nil, err
	}

	insights := services.NewInsightService(store, forecasts, risk, goals, scenarios, narrator, breaker,
		services.InsightServiceConfig{
			DefaultCurrency:      currency,
			LookbackMonths:       cfg.Analytics.LookbackMonths,
			CorrelationThreshold: cfg.Analytics.CorrelationThreshold,
			NarrativeTimeout:     cfg.Narrative.Timeout,
		}, metrics, audit)

	scheduler := services.NewRefreshScheduler(store, cfg.Analytics.RefreshSchedule, cfg.Analytics.RefreshOnStartup, cfg.Analytics.RefreshTimeout)

	return &App{
		Store:        store,
		Forecasts:    forecasts,
		Risk:         risk,
		Goals:        goals,
		Scenarios:    scenarios,
		Insights:     insights,
		Scheduler:    scheduler,
		Metrics:      metrics,
		Breaker:      breaker,
		LedgerWriter: repositories.NewLedgerWriter(db),
		Categories:   categoryRepo,
	}, nil
}

// newNarrator returns nil when narratives are disabled so insight payloads
// report the narrative section as unavailable.
func newNarrator(ctx context.Context, cfg config.NarrativeConfig, logger *slog.Logger) (services.NarrativeGeneratorInterface, error) {
	if !cfg.Enabled {
		logger.Info("narrative generation disabled")
		return nil, nil
	}
	narrator, err := services.NewGeminiNarrator(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("narrative generator: %w", err)
	}
	logger.Info("narrative generation enabled", slog.String("model", cfg.Model))
	return narrator, nil
}
