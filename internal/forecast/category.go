package forecast

import (
	"sort"

	"github.com/google/uuid"

	"ledger-analytics/internal/models"
)

type CategoryTrend struct {
	Trend      Linear  `json:"trend"`
	Volatility float64 `json:"volatility"`
}

// CategoryModel holds an independent trend per category of one currency.
// Every trend is indexed against the same months, ending at LastPeriod, so
// step k of any forecast is LastPeriod + k + 1. Categories with too little
// history are listed in Unavailable.
type CategoryModel struct {
	PerCategory map[uuid.UUID]CategoryTrend `json:"per_category"`
	Unavailable []uuid.UUID                 `json:"unavailable,omitempty"`
	LastPeriod  models.Period               `json:"last_period"`
}

// FitCategory fits every series independently. A category needs at least two
// months between its own first and last period; missing months inside that
// span, and months after it up to the latest period of any series, count as
// zero. It fails only when no category has enough data.
func FitCategory(series []models.CategorySeries) (CategoryModel, error) {
	m := CategoryModel{PerCategory: make(map[uuid.UUID]CategoryTrend, len(series))}
	for _, s := range series {
		if n := len(s.Points); n > 0 && m.LastPeriod.Before(s.Points[n-1].Period) {
			m.LastPeriod = s.Points[n-1].Period
		}
	}

	longest := 0
	for _, s := range series {
		span := ownSpan(s.Points)
		if span > longest {
			longest = span
		}
		if span < 2 {
			m.Unavailable = append(m.Unavailable, s.CategoryID)
			continue
		}

		values := denseValues(s.Points, m.LastPeriod)
		trend, err := FitLinear(values)
		if err != nil {
			m.Unavailable = append(m.Unavailable, s.CategoryID)
			continue
		}
		m.PerCategory[s.CategoryID] = CategoryTrend{
			Trend:      trend,
			Volatility: PopulationStdDev(values),
		}
	}

	if len(m.PerCategory) == 0 {
		return CategoryModel{}, insufficient(models.ModelCategory, 2, longest)
	}

	sort.Slice(m.Unavailable, func(i, j int) bool {
		return m.Unavailable[i].String() < m.Unavailable[j].String()
	})
	return m, nil
}

func (m CategoryModel) Kind() models.ModelKind {
	return models.ModelCategory
}

func (m CategoryModel) ForecastCategory(id uuid.UUID, horizon int) ([]float64, bool) {
	ct, ok := m.PerCategory[id]
	if !ok {
		return nil, false
	}
	return ct.Trend.Forecast(horizon), true
}

func (m CategoryModel) ForecastAll(horizon int) map[uuid.UUID][]float64 {
	out := make(map[uuid.UUID][]float64, len(m.PerCategory))
	for id, ct := range m.PerCategory {
		out[id] = ct.Trend.Forecast(horizon)
	}
	return out
}

// Forecast is the element-wise sum of all category forecasts.
func (m CategoryModel) Forecast(horizon int) []float64 {
	if horizon <= 0 {
		return []float64{}
	}
	total := make([]float64, horizon)
	for _, ct := range m.PerCategory {
		for k, v := range ct.Trend.Forecast(horizon) {
			total[k] += v
		}
	}
	return total
}

func ownSpan(points []models.CategoryPoint) int {
	if len(points) == 0 {
		return 0
	}
	return points[len(points)-1].Period.Index() - points[0].Period.Index() + 1
}

// denseValues lays points out month by month from the first point to last.
func denseValues(points []models.CategoryPoint, last models.Period) []float64 {
	first := points[0].Period.Index()
	values := make([]float64, last.Index()-first+1)
	for _, p := range points {
		values[p.Period.Index()-first] += p.TotalAmount
	}
	return values
}
