package services

import (
	"math"

	"ledger-analytics/internal/forecast"
	"ledger-analytics/internal/models"
)

const (
	riskVolatilityWeight   = 0.4
	riskTrendWeight        = 30.0
	riskRecentChangeWeight = 0.3

	riskHighVolatility   = 20.0
	riskMediumVolatility = 10.0
)

// RiskService scores the volatility and trend of income, expense and savings
// streams. It holds no state and is safe for concurrent use.
type RiskService struct{}

func NewRiskService() RiskServiceInterface {
	return &RiskService{}
}

// AssessRisk scores one ordered stream. Volatility is the population standard
// deviation as a percentage of the mean magnitude, and the trend is fitted on
// the series divided by that magnitude, so streams of different size compare.
// A stream whose mean is zero has zero volatility and trend.
// Fewer than two values fail with *forecast.InsufficientDataError.
func (s *RiskService) AssessRisk(values []float64) (*models.RiskAssessment, error) {
	if len(values) < 2 {
		// FitLinear reports the shortfall in the shared error type.
		_, err := forecast.FitLinear(values)
		return nil, err
	}

	mean := forecast.Mean(values)
	stddev := forecast.PopulationStdDev(values)
	scale := math.Abs(mean)

	var volatility, trendStrength float64
	if scale >= forecast.Epsilon {
		volatility = stddev / scale * 100

		normalized := make([]float64, len(values))
		for i, v := range values {
			normalized[i] = v / scale
		}
		trend, err := forecast.FitLinear(normalized)
		if err != nil {
			return nil, err
		}
		trendStrength = math.Abs(trend.Slope)
	}

	factors := models.RiskFactors{
		Volatility:      volatility,
		TrendStrength:   trendStrength,
		RecentChangePct: RecentChangePct(values),
		StdDev:          stddev,
		Mean:            mean,
	}

	return &models.RiskAssessment{
		Score:   RiskScore(factors),
		Level:   RiskLevelFor(factors.Volatility),
		Factors: factors,
	}, nil
}

// AssessStreams scores income, expenses and savings (income minus expenses).
// A stream that cannot be scored is marked unavailable rather than failing the others.
func (s *RiskService) AssessStreams(points []models.TimeSeriesPoint) models.StreamRisk {
	return models.StreamRisk{
		Income:   s.assessStream(models.StreamValues(points, models.StreamIncome)),
		Expenses: s.assessStream(models.StreamValues(points, models.StreamExpenses)),
		Savings:  s.assessStream(models.StreamValues(points, models.StreamNet)),
	}
}

func (s *RiskService) assessStream(values []float64) models.StreamAssessment {
	assessment, err := s.AssessRisk(values)
	if err != nil {
		return models.StreamAssessment{Unavailable: err.Error()}
	}
	return models.StreamAssessment{Assessment: assessment}
}

// RecentChangePct is the change of the last value relative to the one before,
// in percent. It is 0 for fewer than two values or a zero previous value.
func RecentChangePct(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	last, prev := values[n-1], values[n-2]
	change, _ := forecast.SafeDiv(last-prev, math.Abs(prev))
	return change * 100
}

func RiskScore(f models.RiskFactors) float64 {
	raw := f.Volatility*riskVolatilityWeight +
		f.TrendStrength*riskTrendWeight +
		math.Abs(f.RecentChangePct)*riskRecentChangeWeight
	return forecast.Clamp(0, 100, raw)
}

func RiskLevelFor(volatility float64) models.RiskLevel {
	switch {
	case volatility > riskHighVolatility:
		return models.RiskLevelHigh
	case volatility > riskMediumVolatility:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}
