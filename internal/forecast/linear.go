package forecast

import "ledger-analytics/internal/models"

// Linear is an OLS trend of a series against its index 0..N-1.
type Linear struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	N         int     `json:"n"`
}

// FitLinear fails with *InsufficientDataError when fewer than two values are given.
func FitLinear(values []float64) (Linear, error) {
	n := len(values)
	if n < 2 {
		return Linear{}, insufficient(models.ModelLinear, 2, n)
	}

	slope, intercept, ok := ols(indices(n), values)
	if !ok {
		return Linear{}, insufficient(models.ModelLinear, 2, n)
	}

	return Linear{Slope: slope, Intercept: intercept, N: n}, nil
}

func (l Linear) Kind() models.ModelKind {
	return models.ModelLinear
}

// At evaluates the trend line at index i.
func (l Linear) At(i float64) float64 {
	return l.Slope*i + l.Intercept
}

// Forecast returns the trend at indices N..N+horizon-1.
func (l Linear) Forecast(horizon int) []float64 {
	if horizon <= 0 {
		return []float64{}
	}
	out := make([]float64, horizon)
	for k := range out {
		out[k] = l.At(float64(l.N + k))
	}
	return out
}
