package services

import (
	"context"
	"log/slog"
	"time"

	"ledger-analytics/internal/models"

	"github.com/google/uuid"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogRefreshStarted(ctx context.Context, asOf time.Time, currentVersion uint64) {
	al.logger.InfoContext(ctx, "aggregate refresh started",
		slog.String("event_type", "refresh_started"),
		slog.Time("as_of", asOf),
		slog.Uint64("current_version", currentVersion),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogRefreshCompleted(ctx context.Context, version uint64, ledgerRows int, durationMs int64) {
	al.logger.InfoContext(ctx, "aggregate refresh completed",
		slog.String("event_type", "refresh_completed"),
		slog.Uint64("version", version),
		slog.Int("ledger_rows", ledgerRows),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogRefreshFailed(ctx context.Context, view string, errorMsg string, retainedVersion uint64) {
	al.logger.WarnContext(ctx, "aggregate refresh failed",
		slog.String("event_type", "refresh_failed"),
		slog.String("view", view),
		slog.String("error", errorMsg),
		slog.Uint64("retained_version", retainedVersion),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogModelUnavailable(ctx context.Context, model models.ModelKind, stream models.Stream, reason string) {
	al.logger.InfoContext(ctx, "forecast model unavailable",
		slog.String("event_type", "model_unavailable"),
		slog.String("model", string(model)),
		slog.String("stream", string(stream)),
		slog.String("reason", reason),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogGoalPredicted(ctx context.Context, goalID uuid.UUID, prediction *models.GoalPrediction) {
	attrs := []slog.Attr{
		slog.String("event_type", "goal_predicted"),
		slog.String("status", prediction.Status),
		slog.Int("months_remaining", prediction.MonthsRemaining),
		slog.Float64("confidence", prediction.Confidence),
		slog.Bool("expired", prediction.Expired),
		slog.Int("models_used", len(prediction.ModelsUsed)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if goalID != uuid.Nil {
		attrs = append(attrs, slog.String("goal_id", goalID.String()))
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "goal predicted", attrs...)
}

func (al *AuditLogger) LogNarrativeFailed(ctx context.Context, errorMsg string, durationMs int64) {
	al.logger.WarnContext(ctx, "narrative generation failed",
		slog.String("event_type", "narrative_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

type correlationKey struct{}

// WithCorrelationID attaches an id that audit entries of the request will carry.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID returns the id set by WithCorrelationID, or "".
func CorrelationID(ctx context.Context) string {
	return getCorrelationID(ctx)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationKey{}).(string); ok {
		return correlationID
	}

	return ""
}
