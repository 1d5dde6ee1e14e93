package forecast

import (
	"math"

	"ledger-analytics/internal/models"
)

// Observation is one value of a monthly series
type Observation struct {
	Period models.Period
	Value  float64
}

// Seasonal combines a linear trend with twelve calendar-month factors.
// Factor m is the mean ratio value/trend over past occurrences of month m
// where the trend is not degenerate; months never observed get 1.0.
type Seasonal struct {
	Factors    [12]float64   `json:"factors"`
	Observed   [12]int       `json:"observed"`
	Trend      Linear        `json:"trend"`
	LastPeriod models.Period `json:"last_period"`
}

// FitSeasonal expects observations in ascending period order.
func FitSeasonal(observations []Observation) (Seasonal, error) {
	values := make([]float64, len(observations))
	for i, o := range observations {
		values[i] = o.Value
	}

	trend, err := FitLinear(values)
	if err != nil {
		return Seasonal{}, insufficient(models.ModelSeasonal, 2, len(observations))
	}

	// Factors are ratios to the trend because the forecast multiplies them into it.
	var sums [12]float64
	var counts [12]int
	for i, o := range observations {
		ratio, ok := SafeDiv(o.Value, trend.At(float64(i)))
		if !ok {
			continue
		}
		bucket := int(o.Period.Month) - 1
		sums[bucket] += ratio
		counts[bucket]++
	}

	s := Seasonal{Trend: trend, LastPeriod: observations[len(observations)-1].Period}
	for m := 0; m < 12; m++ {
		s.Observed[m] = counts[m]
		if counts[m] == 0 {
			s.Factors[m] = 1.0
			continue
		}
		s.Factors[m] = sums[m] / float64(counts[m])
	}
	return s, nil
}

func (s Seasonal) Kind() models.ModelKind {
	return models.ModelSeasonal
}

// Factor returns the multiplier for the given calendar month
func (s Seasonal) Factor(month int) float64 {
	if month < 1 || month > 12 {
		return 1.0
	}
	return s.Factors[month-1]
}

// Forecast step k projects the trend at index N+k and scales it by the factor
// of the calendar month k+1 months after LastPeriod.
func (s Seasonal) Forecast(horizon int) []float64 {
	if horizon <= 0 {
		return []float64{}
	}
	out := make([]float64, horizon)
	for k := range out {
		p := s.LastPeriod.AddMonths(k + 1)
		v := s.Trend.At(float64(s.Trend.N+k)) * s.Factor(int(p.Month))
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		out[k] = v
	}
	return out
}

// ObservationsOf pairs each point's period with one of its streams.
func ObservationsOf(points []models.TimeSeriesPoint, stream models.Stream) []Observation {
	obs := make([]Observation, len(points))
	for i, p := range points {
		obs[i] = Observation{Period: p.Period, Value: p.Value(stream)}
	}
	return obs
}
