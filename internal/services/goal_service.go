package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"ledger-analytics/internal/forecast"
	"ledger-analytics/internal/models"
	"ledger-analytics/internal/repositories"

	"github.com/google/uuid"
)

const (
	goalMonth                 = 30 * 24 * time.Hour
	goalDispersionWeight      = 0.7
	goalRiskWeight            = 0.3
	goalMaxForecastHorizonCap = 600
)

type GoalService struct {
	store           AggregationStoreInterface
	riskService     RiskServiceInterface
	goalRepo        repositories.GoalRepositoryInterface
	weights         ModelWeights
	defaultCurrency string
	metrics         MetricsRecorderInterface
	audit           AuditLoggerInterface
	now             func() time.Time
}

func NewGoalService(
	store AggregationStoreInterface,
	riskService RiskServiceInterface,
	goalRepo repositories.GoalRepositoryInterface,
	weights ModelWeights,
	defaultCurrency string,
	metrics MetricsRecorderInterface,
	audit AuditLoggerInterface,
) *GoalService {
	if len(weights.Kinds()) == 0 {
		weights = EqualWeights()
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if audit == nil {
		audit = NewAuditLogger(nil)
	}
	return &GoalService{
		store:           store,
		riskService:     riskService,
		goalRepo:        goalRepo,
		weights:         weights,
		defaultCurrency: defaultCurrency,
		metrics:         metrics,
		audit:           audit,
		now:             time.Now,
	}
}

// MonthsRemaining counts started 30-day months between now and target.
func MonthsRemaining(now, target time.Time) int {
	return int(math.Ceil(float64(target.Sub(now)) / float64(goalMonth)))
}

// PredictGoal projects the savings stream until the goal's target date.
//
// When the target date has passed the prediction is still returned, with
// Expired set, MonthsRemaining <= 0 and no forecast, together with
// ErrGoalExpired. Models without enough data are left out of the ensemble;
// ErrNoModelsAvailable is returned only when none remains.
func (s *GoalService) PredictGoal(goal models.Goal, points []models.TimeSeriesPoint, risk models.StreamRisk) (*models.GoalPrediction, error) {
	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	months := MonthsRemaining(s.now(), goal.TargetDate)
	avgRisk, _ := risk.AverageScore()

	if months <= 0 {
		prediction := &models.GoalPrediction{
			GoalID:          goal.ID,
			PredictedAmount: goal.CurrentAmount,
			Confidence:      forecast.Clamp(0, 100, 100-avgRisk*goalRiskWeight),
			MonthsRemaining: months,
			MonthlyRequired: goal.Shortfall(),
			Expired:         true,
			ModelsUsed:      []models.ModelKind{},
		}
		prediction.Status = goalStatus(prediction.PredictedAmount, goal.TargetAmount)
		s.metrics.IncrementCounter(MetricGoalPrediction, map[string]string{"status": "expired"})
		return prediction, ErrGoalExpired
	}

	horizon := months
	if horizon > goalMaxForecastHorizonCap {
		horizon = goalMaxForecastHorizonCap
	}

	ensemble, err := RunEnsemble(points, models.StreamNet, s.weights, horizon)
	for _, kind := range ensemble.Unavailable {
		s.metrics.IncrementCounter(MetricModelUnavailable, map[string]string{"model": string(kind)})
	}
	if err != nil {
		s.metrics.IncrementCounter(MetricGoalPrediction, map[string]string{"status": "unavailable"})
		return nil, err
	}

	totalPredicted := forecast.Sum(ensemble.Values)
	prediction := &models.GoalPrediction{
		GoalID:            goal.ID,
		PredictedAmount:   goal.CurrentAmount + totalPredicted,
		Confidence:        goalConfidence(ensemble.AllPredictions(), avgRisk),
		MonthsRemaining:   months,
		MonthlyRequired:   goal.Shortfall() / float64(months),
		MonthlyPredicted:  totalPredicted / float64(horizon),
		ModelsUsed:        ensemble.Used,
		ModelsUnavailable: ensemble.Unavailable,
	}
	prediction.Status = goalStatus(prediction.PredictedAmount, goal.TargetAmount)

	s.metrics.IncrementCounter(MetricGoalPrediction, map[string]string{"status": prediction.Status})
	return prediction, nil
}

// goalConfidence lowers 100 by the relative variance of the individual model
// predictions (variance of predictions divided by their squared mean
// magnitude, in percent) and by the average stream risk. Predictions that
// disagree around a zero mean give no confidence.
func goalConfidence(predictions []float64, avgRisk float64) float64 {
	var dispersion float64
	variance := forecast.PopulationVariance(predictions)
	scale := math.Abs(forecast.Mean(predictions))
	if rel, ok := forecast.SafeDiv(variance, scale*scale); ok {
		dispersion = rel * 100
	} else if variance >= forecast.Epsilon {
		return 0
	}
	return forecast.Clamp(0, 100, 100-(dispersion*goalDispersionWeight+avgRisk*goalRiskWeight))
}

func goalStatus(predicted, target float64) string {
	if predicted >= target {
		return models.GoalStatusOnTrack
	}
	return models.GoalStatusOffTrack
}

func validateGoal(goal models.Goal) error {
	if goal.TargetAmount <= 0 {
		return fmt.Errorf("%w: target amount must be positive", ErrInvalidGoal)
	}
	if goal.CurrentAmount < 0 {
		return fmt.Errorf("%w: current amount must not be negative", ErrInvalidGoal)
	}
	if goal.TargetDate.IsZero() {
		return fmt.Errorf("%w: target date is required", ErrInvalidGoal)
	}
	return nil
}

// PredictForCurrency predicts goal against the current monthly series of its
// currency, or of the default currency when the goal has none.
func (s *GoalService) PredictForCurrency(ctx context.Context, goal models.Goal) (*models.GoalPrediction, error) {
	currency := strings.ToUpper(goal.Currency)
	if currency == "" {
		currency = s.defaultCurrency
	}

	points := s.store.MonthlySeries(currency)
	risk := s.riskService.AssessStreams(points)

	prediction, err := s.PredictGoal(goal, points, risk)
	if prediction != nil {
		s.audit.LogGoalPredicted(ctx, goal.ID, prediction)
	}
	return prediction, err
}

func (s *GoalService) PredictStoredGoal(ctx context.Context, goalID uuid.UUID) (*models.GoalPrediction, error) {
	definition, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	return s.PredictForCurrency(ctx, definition.ToGoal())
}

// PredictAll predicts every stored goal in currency. Individual failures are
// reported per goal; only a failure to list goals fails the call.
func (s *GoalService) PredictAll(ctx context.Context, currency string) ([]models.GoalOutcome, error) {
	definitions, err := s.goalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	outcomes := make([]models.GoalOutcome, 0, len(definitions))
	for i := range definitions {
		goal := definitions[i].ToGoal()
		if currency != "" && goal.Currency != currency {
			continue
		}

		outcome := models.GoalOutcome{Goal: goal}
		prediction, err := s.PredictForCurrency(ctx, goal)
		outcome.Prediction = prediction
		if err != nil && !(errors.Is(err, ErrGoalExpired) && prediction != nil) {
			outcome.Error = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}
