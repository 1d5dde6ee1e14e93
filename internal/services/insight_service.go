package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"ledger-analytics/internal/models"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// InsightInputs carries every upstream section. A nil section, or one with
// its error set, is reported as unavailable in the composed payload.
type InsightInputs struct {
	Currency      string
	Aggregates    *models.AggregatesSummary
	AggregatesErr error
	Forecasts     []models.ForecastResult
	ForecastErrs  []error
	Risk          *models.StreamRisk
	RiskErr       error
	Goals         []models.GoalOutcome
	GoalsErr      error
	Scenarios     *models.ScenarioSet
	ScenariosErr  error
}

type InsightServiceConfig struct {
	DefaultCurrency      string
	LookbackMonths       int
	CorrelationThreshold float64
	NarrativeTimeout     time.Duration
}

type InsightService struct {
	store           AggregationStoreInterface
	forecastService ForecastServiceInterface
	riskService     RiskServiceInterface
	goalService     GoalServiceInterface
	scenarioService ScenarioServiceInterface
	narrator        NarrativeGeneratorInterface
	breaker         CircuitBreakerInterface
	config          InsightServiceConfig
	metrics         MetricsRecorderInterface
	audit           AuditLoggerInterface
	now             func() time.Time
}

// NewInsightService wires the composer. narrator may be nil, in which case
// narrative sections are always unavailable.
func NewInsightService(
	store AggregationStoreInterface,
	forecastService ForecastServiceInterface,
	riskService RiskServiceInterface,
	goalService GoalServiceInterface,
	scenarioService ScenarioServiceInterface,
	narrator NarrativeGeneratorInterface,
	breaker CircuitBreakerInterface,
	config InsightServiceConfig,
	metrics MetricsRecorderInterface,
	audit AuditLoggerInterface,
) *InsightService {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if audit == nil {
		audit = NewAuditLogger(nil)
	}
	if breaker == nil {
		breaker = NewCircuitBreaker(DefaultCircuitBreakerConfig("narrative"), metrics)
	}
	if config.NarrativeTimeout <= 0 {
		config.NarrativeTimeout = 30 * time.Second
	}
	return &InsightService{
		store:           store,
		forecastService: forecastService,
		riskService:     riskService,
		goalService:     goalService,
		scenarioService: scenarioService,
		narrator:        narrator,
		breaker:         breaker,
		config:          config,
		metrics:         metrics,
		audit:           audit,
		now:             time.Now,
	}
}

// Compose shapes the inputs into a payload. It holds no business logic:
// sections are wrapped as they come, charts and tables are derived views.
func (s *InsightService) Compose(in InsightInputs) *models.StructuredInsightPayload {
	payload := &models.StructuredInsightPayload{
		GeneratedAt: s.now().UTC(),
		Currency:    in.Currency,
		Aggregates:  aggregatesSection(in),
		Forecasts:   forecastsSection(in),
		Risk:        riskSection(in),
		Goals:       goalsSection(in),
		Scenarios:   scenariosSection(in),
		Narrative:   models.UnavailableSection("narrative not requested"),
		Charts:      []models.ChartDescriptor{},
		Tables:      []models.TableDescriptor{},
	}

	if in.Aggregates != nil && len(in.Aggregates.Monthly) > 0 {
		payload.Charts = append(payload.Charts, monthlyChart(in.Aggregates.Monthly))
	}
	if in.Scenarios != nil && in.ScenariosErr == nil {
		payload.Charts = append(payload.Charts, scenarioChart(in.Scenarios))
	}
	if in.Aggregates != nil && len(in.Aggregates.CategoryTotals) > 0 {
		payload.Tables = append(payload.Tables, categoryTable(in.Aggregates.CategoryTotals, in.Currency))
	}
	if in.GoalsErr == nil && len(in.Goals) > 0 {
		payload.Tables = append(payload.Tables, goalTable(in.Goals, in.Currency))
	}
	return payload
}

func reasonOf(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}

func aggregatesSection(in InsightInputs) models.Section {
	if in.Aggregates == nil || in.AggregatesErr != nil {
		return models.UnavailableSection(reasonOf(in.AggregatesErr, "aggregates not provided"))
	}
	return models.AvailableSection(in.Aggregates)
}

func forecastsSection(in InsightInputs) models.Section {
	reasons := make([]string, 0, len(in.ForecastErrs))
	for _, err := range in.ForecastErrs {
		reasons = append(reasons, err.Error())
	}
	switch {
	case len(in.Forecasts) == 0 && len(reasons) == 0:
		return models.UnavailableSection("forecasts not provided")
	case len(in.Forecasts) == 0:
		return models.UnavailableSection(strings.Join(reasons, "; "))
	case len(reasons) > 0:
		return models.PartialSection(in.Forecasts, strings.Join(reasons, "; "))
	default:
		return models.AvailableSection(in.Forecasts)
	}
}

func riskSection(in InsightInputs) models.Section {
	if in.Risk == nil || in.RiskErr != nil {
		return models.UnavailableSection(reasonOf(in.RiskErr, "risk not provided"))
	}

	var missing []string
	for name, a := range map[models.Stream]models.StreamAssessment{
		models.StreamIncome:   in.Risk.Income,
		models.StreamExpenses: in.Risk.Expenses,
		models.StreamNet:      in.Risk.Savings,
	} {
		if !a.Available() {
			missing = append(missing, fmt.Sprintf("%s: %s", name, a.Unavailable))
		}
	}
	sort.Strings(missing)

	switch len(missing) {
	case 0:
		return models.AvailableSection(in.Risk)
	case 3:
		return models.UnavailableSection(strings.Join(missing, "; "))
	default:
		return models.PartialSection(in.Risk, strings.Join(missing, "; "))
	}
}

func goalsSection(in InsightInputs) models.Section {
	if in.GoalsErr != nil {
		return models.UnavailableSection(in.GoalsErr.Error())
	}
	if in.Goals == nil {
		return models.UnavailableSection("goals not provided")
	}

	failed := 0
	for _, o := range in.Goals {
		if o.Prediction == nil || o.Prediction.Partial() {
			failed++
		}
	}
	if failed > 0 {
		return models.PartialSection(in.Goals, fmt.Sprintf("%d of %d goals have incomplete predictions", failed, len(in.Goals)))
	}
	return models.AvailableSection(in.Goals)
}

func scenariosSection(in InsightInputs) models.Section {
	if in.Scenarios == nil || in.ScenariosErr != nil {
		return models.UnavailableSection(reasonOf(in.ScenariosErr, "scenarios not provided"))
	}
	if len(in.Scenarios.Unavailable) > 0 {
		var reasons []string
		for stream, kinds := range in.Scenarios.Unavailable {
			reasons = append(reasons, fmt.Sprintf("%s: %v unavailable", stream, kinds))
		}
		sort.Strings(reasons)
		return models.PartialSection(in.Scenarios, strings.Join(reasons, "; "))
	}
	return models.AvailableSection(in.Scenarios)
}

func monthlyChart(points []models.TimeSeriesPoint) models.ChartDescriptor {
	axis := make([]string, len(points))
	for i, p := range points {
		axis[i] = p.Period.String()
	}
	return models.ChartDescriptor{
		ID:    "monthly_cash_flow",
		Type:  "line",
		Title: "Monthly income, expenses and savings",
		XAxis: axis,
		Series: []models.ChartSeries{
			{Name: "income", Values: models.StreamValues(points, models.StreamIncome)},
			{Name: "expenses", Values: models.StreamValues(points, models.StreamExpenses)},
			{Name: "savings", Values: models.StreamValues(points, models.StreamNet)},
		},
	}
}

func scenarioChart(set *models.ScenarioSet) models.ChartDescriptor {
	axis := make([]string, set.Horizon)
	start := set.Realistic.StartPeriod
	for i := range axis {
		if start.IsZero() {
			axis[i] = fmt.Sprintf("+%d", i+1)
			continue
		}
		axis[i] = start.AddMonths(i).String()
	}

	series := make([]models.ChartSeries, 0, 3)
	for _, sc := range set.All() {
		series = append(series, models.ChartSeries{Name: string(sc.Label), Values: sc.Predictions.Savings})
	}
	return models.ChartDescriptor{
		ID:     "scenario_savings",
		Type:   "band",
		Title:  "Projected monthly savings by scenario",
		XAxis:  axis,
		Series: series,
	}
}

func categoryTable(totals []models.CategoryTotal, currency string) models.TableDescriptor {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		name := t.Name
		if name == "" {
			name = t.CategoryID.String()
		}
		rows = append(rows, []string{name, FormatMoney(t.TotalAmount, currency), fmt.Sprintf("%d", t.TransactionCount)})
	}
	return models.TableDescriptor{
		ID:      "category_totals",
		Title:   "Totals by category",
		Columns: []string{"category", "total", "transactions"},
		Rows:    rows,
	}
}

func goalTable(outcomes []models.GoalOutcome, currency string) models.TableDescriptor {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		cur := o.Goal.Currency
		if cur == "" {
			cur = currency
		}
		row := []string{o.Goal.Name, FormatMoney(o.Goal.TargetAmount, cur), "-", "-", o.Error}
		if o.Prediction != nil {
			row[2] = FormatMoney(o.Prediction.PredictedAmount, cur)
			row[3] = o.Prediction.Status
		}
		rows = append(rows, row)
	}
	return models.TableDescriptor{
		ID:      "goal_predictions",
		Title:   "Goal predictions",
		Columns: []string{"goal", "target", "predicted", "status", "error"},
		Rows:    rows,
	}
}

// FormatMoney renders amount in the currency's display format. Unknown
// currencies fall back to a plain two-decimal amount followed by the code.
func FormatMoney(amount float64, currency string) string {
	d := decimal.NewFromFloat(amount)
	cur := money.GetCurrency(currency)
	if cur == nil {
		return d.StringFixed(2) + " " + currency
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), currency).Display()
}

// Generate gathers every section for currency from the current aggregates
// and composes them. Narrative failures never fail the call.
func (s *InsightService) Generate(ctx context.Context, currency string, withNarrative bool) (*models.StructuredInsightPayload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	currency = strings.ToUpper(currency)
	if currency == "" {
		currency = s.config.DefaultCurrency
	}

	in := InsightInputs{Currency: currency}
	in.Aggregates, in.AggregatesErr = s.aggregates(currency)

	points := s.store.MonthlySeries(currency)

	in.Forecasts, in.ForecastErrs = s.forecastService.ForecastAll(ctx, currency, 0)

	risk := s.riskService.AssessStreams(points)
	in.Risk = &risk

	in.Goals, in.GoalsErr = s.goalService.PredictAll(ctx, currency)

	in.Scenarios, in.ScenariosErr = s.scenarioService.GenerateScenarios(points, risk)

	payload := s.Compose(in)
	if withNarrative {
		payload.Narrative = s.narrate(ctx, payload)
	}
	return payload, nil
}

func (s *InsightService) aggregates(currency string) (*models.AggregatesSummary, error) {
	if s.store.Version() == 0 {
		return nil, fmt.Errorf("%w: aggregates have not been refreshed yet", ErrRefreshFailed)
	}

	summary := &models.AggregatesSummary{
		Version:     s.store.Version(),
		LastUpdated: s.store.LastUpdated(),
		Monthly:     lastMonths(s.store.MonthlySeries(currency), s.config.LookbackMonths),
	}

	names := s.store.CategoryNames()
	for _, cs := range s.store.CategorySeries(currency) {
		total := models.CategoryTotal{CategoryID: cs.CategoryID, Name: names[cs.CategoryID]}
		for _, p := range cs.Points {
			total.TotalAmount += p.TotalAmount
			total.TransactionCount += p.TransactionCount
		}
		summary.CategoryTotals = append(summary.CategoryTotals, total)
	}
	sort.Slice(summary.CategoryTotals, func(i, j int) bool {
		return summary.CategoryTotals[i].TotalAmount < summary.CategoryTotals[j].TotalAmount
	})

	filter := models.ViewFilter{Currency: currency}
	anomalies, err := QueryRows[models.CategoryAnomalyRow](s.store, models.ViewCategoryAnomalies, filter)
	if err != nil {
		return nil, err
	}
	correlations, err := QueryRows[models.CategoryCorrelationRow](s.store, models.ViewCategoryCorrelations, filter)
	if err != nil {
		return nil, err
	}
	summary.Anomalies = anomalies
	summary.Correlations = FilterCorrelations(correlations, s.config.CorrelationThreshold)
	return summary, nil
}

func lastMonths(points []models.TimeSeriesPoint, n int) []models.TimeSeriesPoint {
	if n <= 0 || len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

// narrate hands a serialized copy of the payload to the external generator.
func (s *InsightService) narrate(ctx context.Context, payload *models.StructuredInsightPayload) models.Section {
	if s.narrator == nil {
		return models.UnavailableSection(ErrNarrativeDisabled.Error())
	}
	if s.breaker.IsOpen() {
		s.metrics.IncrementCounter(MetricNarrativeRequest, map[string]string{"status": "circuit_open"})
		return models.UnavailableSection(ErrCircuitBreakerOpen.Error())
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.UnavailableSection(fmt.Sprintf("encode payload: %v", err))
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.NarrativeTimeout)
	defer cancel()

	start := time.Now()
	text, err := s.narrator.Narrate(ctx, body)
	elapsed := time.Since(start)
	s.metrics.RecordProcessingTime(MetricNarrativeDuration, elapsed)

	if err != nil {
		s.breaker.RecordFailure()
		s.metrics.IncrementCounter(MetricNarrativeRequest, map[string]string{"status": "error"})
		s.audit.LogNarrativeFailed(ctx, err.Error(), elapsed.Milliseconds())
		slog.Warn("Narrative generation failed", "error", err, "breaker_state", s.breaker.GetState())
		return models.UnavailableSection(err.Error())
	}

	s.breaker.RecordSuccess()
	s.metrics.IncrementCounter(MetricNarrativeRequest, map[string]string{"status": "success"})
	return models.AvailableSection(text)
}
