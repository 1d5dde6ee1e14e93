package services

import (
	"context"
	"time"

	"ledger-analytics/internal/models"

	"github.com/google/uuid"
)

// AggregationStoreInterface maintains the versioned aggregate views derived from the ledger
type AggregationStoreInterface interface {
	// Refresh rebuilds every view from the ledger as of asOf and swaps them in together.
	Refresh(ctx context.Context, asOf time.Time) (*models.RefreshReport, error)
	// Restore loads the last persisted snapshot, if any.
	Restore(ctx context.Context) error
	Query(viewName string, filter models.ViewFilter) ([]models.ViewRow, error)
	View(name string) (models.AggregateView, error)
	Version() uint64
	LastUpdated() time.Time
	MonthlySeries(currency string) []models.TimeSeriesPoint
	CategorySeries(currency string) []models.CategorySeries
	CategoryNames() map[uuid.UUID]string
}

// ViewBuilder derives one aggregate view from a refresh input
type ViewBuilder interface {
	Name() string
	Build(ctx context.Context, input *RefreshInput) ([]models.ViewRow, error)
}

type ForecastServiceInterface interface {
	Forecast(ctx context.Context, req ForecastRequest) (*models.ForecastResult, error)
	ForecastAll(ctx context.Context, currency string, horizon int) ([]models.ForecastResult, []error)
}

type RiskServiceInterface interface {
	AssessRisk(values []float64) (*models.RiskAssessment, error)
	AssessStreams(points []models.TimeSeriesPoint) models.StreamRisk
}

type GoalServiceInterface interface {
	PredictGoal(goal models.Goal, points []models.TimeSeriesPoint, risk models.StreamRisk) (*models.GoalPrediction, error)
	PredictForCurrency(ctx context.Context, goal models.Goal) (*models.GoalPrediction, error)
	PredictStoredGoal(ctx context.Context, goalID uuid.UUID) (*models.GoalPrediction, error)
	PredictAll(ctx context.Context, currency string) ([]models.GoalOutcome, error)
}

type ScenarioServiceInterface interface {
	GenerateScenarios(points []models.TimeSeriesPoint, risk models.StreamRisk) (*models.ScenarioSet, error)
	ScenariosForCurrency(ctx context.Context, currency string) (*models.ScenarioSet, error)
}

type InsightServiceInterface interface {
	Compose(inputs InsightInputs) *models.StructuredInsightPayload
	Generate(ctx context.Context, currency string, withNarrative bool) (*models.StructuredInsightPayload, error)
}

// NarrativeGeneratorInterface turns a serialized insight payload into prose.
// Implementations receive a copy and cannot affect engine state.
type NarrativeGeneratorInterface interface {
	Narrate(ctx context.Context, payload []byte) (string, error)
}

// LedgerGeneratorInterface produces synthetic ledger history for development databases
type LedgerGeneratorInterface interface {
	Generate(categories []models.Category, start, end time.Time, currency string) []models.LedgerEntry
}

// AuditLoggerInterface records analytics events as structured log entries
type AuditLoggerInterface interface {
	LogRefreshStarted(ctx context.Context, asOf time.Time, currentVersion uint64)
	LogRefreshCompleted(ctx context.Context, version uint64, ledgerRows int, durationMs int64)
	LogRefreshFailed(ctx context.Context, view string, errorMsg string, retainedVersion uint64)
	LogModelUnavailable(ctx context.Context, model models.ModelKind, stream models.Stream, reason string)
	LogGoalPredicted(ctx context.Context, goalID uuid.UUID, prediction *models.GoalPrediction)
	LogNarrativeFailed(ctx context.Context, errorMsg string, durationMs int64)
}

// TokenServiceInterface verifies bearer tokens issued by the external auth service
type TokenServiceInterface interface {
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
