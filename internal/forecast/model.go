// Package forecast implements the statistical models used by the analytics
// services. Everything here is pure computation over float64 series; inputs
// arrive in ascending period order and nothing is cached between calls.
package forecast

import (
	"fmt"

	"ledger-analytics/internal/models"
)

// Model is a fitted series model that can project forward.
type Model interface {
	Kind() models.ModelKind
	Forecast(horizon int) []float64
}

// FitSeries fits a single-series model kind to one stream of the points.
// The category model needs per-category input and is rejected here; use FitCategory.
func FitSeries(kind models.ModelKind, points []models.TimeSeriesPoint, stream models.Stream) (Model, error) {
	switch kind {
	case models.ModelLinear:
		return FitLinear(models.StreamValues(points, stream))
	case models.ModelExponential:
		return FitExponential(models.StreamValues(points, stream))
	case models.ModelSeasonal:
		return FitSeasonal(ObservationsOf(points, stream))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedModel, kind)
	}
}

// ForecastSeries fits kind and returns horizon projected values.
func ForecastSeries(kind models.ModelKind, points []models.TimeSeriesPoint, stream models.Stream, horizon int) ([]float64, error) {
	m, err := FitSeries(kind, points, stream)
	if err != nil {
		return nil, err
	}
	return m.Forecast(horizon), nil
}

// Parameters exposes the fitted coefficients of m for reporting.
func Parameters(m Model) map[string]float64 {
	switch v := m.(type) {
	case Linear:
		return map[string]float64{"slope": v.Slope, "intercept": v.Intercept}
	case Exponential:
		return map[string]float64{
			"growth_rate": v.GrowthRate(),
			"base":        v.Base(),
			"excluded":    float64(v.Excluded),
		}
	case Seasonal:
		params := map[string]float64{
			"trend_slope":     v.Trend.Slope,
			"trend_intercept": v.Trend.Intercept,
		}
		for i, f := range v.Factors {
			params[fmt.Sprintf("factor_%02d", i+1)] = f
		}
		return params
	case CategoryModel:
		return map[string]float64{
			"categories":  float64(len(v.PerCategory)),
			"unavailable": float64(len(v.Unavailable)),
		}
	default:
		return map[string]float64{}
	}
}
