package forecast

import (
	"math"

	"ledger-analytics/internal/models"
)

// Exponential fits ln|v| against the index. Values with |v| < Epsilon are
// excluded; the remaining points keep their original index.
type Exponential struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	N         int     `json:"n"`
	Excluded  int     `json:"excluded"`
	// Sign is -1 when the usable values sum negative, so a series of negative
	// net flows is projected as negative.
	Sign float64 `json:"sign"`
}

func FitExponential(values []float64) (Exponential, error) {
	xs := make([]float64, 0, len(values))
	ys := make([]float64, 0, len(values))
	var signed float64
	for i, v := range values {
		if math.Abs(v) < Epsilon {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, math.Log(math.Abs(v)))
		signed += v
	}

	if len(xs) < 2 {
		return Exponential{}, insufficient(models.ModelExponential, 2, len(xs))
	}

	slope, intercept, ok := ols(xs, ys)
	if !ok {
		return Exponential{}, insufficient(models.ModelExponential, 2, len(xs))
	}

	sign := 1.0
	if signed < 0 {
		sign = -1
	}

	return Exponential{
		Slope:     slope,
		Intercept: intercept,
		N:         len(values),
		Excluded:  len(values) - len(xs),
		Sign:      sign,
	}, nil
}

func (e Exponential) Kind() models.ModelKind {
	return models.ModelExponential
}

// GrowthRate is the fitted month-over-month growth, e.g. 0.05 for 5%.
func (e Exponential) GrowthRate() float64 {
	return math.Exp(e.Slope) - 1
}

func (e Exponential) Base() float64 {
	return math.Exp(e.Intercept)
}

func (e Exponential) At(i float64) float64 {
	return e.Sign * math.Exp(e.Slope*i+e.Intercept)
}

func (e Exponential) Forecast(horizon int) []float64 {
	if horizon <= 0 {
		return []float64{}
	}
	out := make([]float64, horizon)
	for k := range out {
		out[k] = e.At(float64(e.N + k))
	}
	return out
}
