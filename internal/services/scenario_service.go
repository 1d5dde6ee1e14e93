package services

import (
	"context"
	"fmt"
	"strings"

	"ledger-analytics/internal/forecast"
	"ledger-analytics/internal/models"
)

var scenarioFactors = []struct {
	label  models.ScenarioLabel
	factor float64
}{
	{models.ScenarioOptimistic, 1.2},
	{models.ScenarioRealistic, 1.0},
	{models.ScenarioPessimistic, 0.8},
}

// InverseFactor is the expense factor paired with an income factor: an
// optimistic scenario earns more and spends less.
func InverseFactor(f float64) float64 {
	return 2 - f
}

// ScaleIncome returns a new slice with every income value multiplied by f.
func ScaleIncome(values []float64, f float64) []float64 {
	return scale(values, f)
}

// ScaleExpense returns a new slice with every expense value multiplied by f.
// Callers pass InverseFactor of the scenario factor.
func ScaleExpense(values []float64, f float64) []float64 {
	return scale(values, f)
}

func scale(values []float64, f float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * f
	}
	return out
}

// ScenarioHorizon is the fixed number of months every scenario projects.
const ScenarioHorizon = 12

type ScenarioService struct {
	store           AggregationStoreInterface
	riskService     RiskServiceInterface
	weights         ModelWeights
	defaultCurrency string
	metrics         MetricsRecorderInterface
}

func NewScenarioService(
	store AggregationStoreInterface,
	riskService RiskServiceInterface,
	weights ModelWeights,
	defaultCurrency string,
	metrics MetricsRecorderInterface,
) *ScenarioService {
	if len(weights.Kinds()) == 0 {
		weights = EqualWeights()
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &ScenarioService{
		store:           store,
		riskService:     riskService,
		weights:         weights,
		defaultCurrency: defaultCurrency,
		metrics:         metrics,
	}
}

// GenerateScenarios projects income and expenses over the scenario horizon and
// derives optimistic, realistic and pessimistic variants. Savings are
// recomputed from the scaled streams, never forecast on their own.
func (s *ScenarioService) GenerateScenarios(points []models.TimeSeriesPoint, risk models.StreamRisk) (*models.ScenarioSet, error) {
	income, err := RunEnsemble(points, models.StreamIncome, s.weights, ScenarioHorizon)
	s.countUnavailable(income.Unavailable)
	if err != nil {
		return nil, fmt.Errorf("scenario income baseline: %w", err)
	}
	expenses, err := RunEnsemble(points, models.StreamExpenses, s.weights, ScenarioHorizon)
	s.countUnavailable(expenses.Unavailable)
	if err != nil {
		return nil, fmt.Errorf("scenario expense baseline: %w", err)
	}

	baseIncome := nonNegative(income.Values)
	baseExpenses := nonNegative(expenses.Values)

	var start models.Period
	if len(points) > 0 {
		start = points[len(points)-1].Period.AddMonths(1)
	}

	set := &models.ScenarioSet{
		Horizon:    ScenarioHorizon,
		ModelsUsed: intersectKinds(income.Used, expenses.Used),
	}
	if len(income.Unavailable) > 0 || len(expenses.Unavailable) > 0 {
		set.Unavailable = make(map[string][]models.ModelKind)
		if len(income.Unavailable) > 0 {
			set.Unavailable[string(models.StreamIncome)] = income.Unavailable
		}
		if len(expenses.Unavailable) > 0 {
			set.Unavailable[string(models.StreamExpenses)] = expenses.Unavailable
		}
	}

	for _, sf := range scenarioFactors {
		scenario := buildScenario(sf.label, sf.factor, start, baseIncome, baseExpenses, risk)
		switch sf.label {
		case models.ScenarioOptimistic:
			set.Optimistic = scenario
		case models.ScenarioRealistic:
			set.Realistic = scenario
		case models.ScenarioPessimistic:
			set.Pessimistic = scenario
		}
	}
	return set, nil
}

func buildScenario(label models.ScenarioLabel, f float64, start models.Period, income, expenses []float64, risk models.StreamRisk) models.Scenario {
	inv := InverseFactor(f)
	scaledIncome := ScaleIncome(income, f)
	scaledExpenses := ScaleExpense(expenses, inv)

	savings := make([]float64, len(scaledIncome))
	for i := range savings {
		savings[i] = scaledIncome[i] - scaledExpenses[i]
	}

	return models.Scenario{
		Label:       label,
		Factor:      f,
		StartPeriod: start,
		Predictions: models.ScenarioPredictions{
			Income:   scaledIncome,
			Expenses: scaledExpenses,
			Savings:  savings,
		},
		RiskFactors: models.ScenarioRiskFactors{
			Income:   scaledScore(risk.Income, f),
			Expenses: scaledScore(risk.Expenses, inv),
			Savings:  scaledScore(risk.Savings, inv),
		},
	}
}

func scaledScore(a models.StreamAssessment, f float64) float64 {
	if !a.Available() {
		return 0
	}
	return forecast.Clamp(0, 100, a.Assessment.Score*f)
}

func nonNegative(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v > 0 {
			out[i] = v
		}
	}
	return out
}

func intersectKinds(a, b []models.ModelKind) []models.ModelKind {
	inB := make(map[models.ModelKind]bool, len(b))
	for _, k := range b {
		inB[k] = true
	}
	out := []models.ModelKind{}
	for _, k := range a {
		if inB[k] {
			out = append(out, k)
		}
	}
	return out
}

func (s *ScenarioService) countUnavailable(kinds []models.ModelKind) {
	for _, kind := range kinds {
		s.metrics.IncrementCounter(MetricModelUnavailable, map[string]string{"model": string(kind)})
	}
}

// ScenariosForCurrency generates scenarios from the current monthly series.
func (s *ScenarioService) ScenariosForCurrency(ctx context.Context, currency string) (*models.ScenarioSet, error) {
	currency = strings.ToUpper(currency)
	if currency == "" {
		currency = s.defaultCurrency
	}
	points := s.store.MonthlySeries(currency)
	return s.GenerateScenarios(points, s.riskService.AssessStreams(points))
}
