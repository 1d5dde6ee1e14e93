package services

import (
	"testing"

	"ledger-analytics/internal/forecast"
	"ledger-analytics/internal/models"

	"github.com/stretchr/testify/suite"
)

type RiskServiceTestSuite struct {
	suite.Suite
	service RiskServiceInterface
}

func TestRiskServiceSuite(t *testing.T) {
	suite.Run(t, new(RiskServiceTestSuite))
}

func (s *RiskServiceTestSuite) SetupTest() {
	s.service = NewRiskService()
}

func (s *RiskServiceTestSuite) TestAssessRisk_ReferenceExpensesAreLowRisk() {
	expenses := models.StreamValues(referencePoints(), models.StreamExpenses)

	risk, err := s.service.AssessRisk(expenses)
	s.Require().NoError(err)

	s.Equal(models.RiskLevelLow, risk.Level)
	s.InDelta(4.04, risk.Factors.Volatility, 0.01)
	s.InDelta(853.33, risk.Factors.Mean, 0.01)
	s.InDelta(900.0/880.0*100-100, risk.Factors.RecentChangePct, 1e-9)
	s.GreaterOrEqual(risk.Score, 0.0)
	s.LessOrEqual(risk.Score, 100.0)
}

func (s *RiskServiceTestSuite) TestAssessRisk_ConstantSeries() {
	risk, err := s.service.AssessRisk([]float64{250, 250, 250, 250})
	s.Require().NoError(err)

	s.Equal(0.0, risk.Factors.Volatility)
	s.Equal(0.0, risk.Factors.TrendStrength)
	s.Equal(0.0, risk.Factors.RecentChangePct)
	s.Equal(0.0, risk.Score)
	s.Equal(models.RiskLevelLow, risk.Level)
}

func (s *RiskServiceTestSuite) TestAssessRisk_ZeroMeanSeries() {
	risk, err := s.service.AssessRisk([]float64{0, 0, 0})
	s.Require().NoError(err)
	s.Equal(0.0, risk.Factors.Volatility)
	s.Equal(models.RiskLevelLow, risk.Level)
}

func (s *RiskServiceTestSuite) TestAssessRisk_Levels() {
	tests := []struct {
		name   string
		values []float64
		level  models.RiskLevel
	}{
		{"steady", []float64{100, 102, 100, 102}, models.RiskLevelLow},
		{"moderate swings", []float64{100, 130, 100, 130}, models.RiskLevelMedium},
		{"large swings", []float64{100, 300, 100, 300}, models.RiskLevelHigh},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			risk, err := s.service.AssessRisk(tt.values)
			s.Require().NoError(err)
			s.Equal(tt.level, risk.Level)
		})
	}
}

func (s *RiskServiceTestSuite) TestAssessRisk_ScoreIsClamped() {
	risk, err := s.service.AssessRisk([]float64{1, 1000, 1, 5000})
	s.Require().NoError(err)
	s.Equal(100.0, risk.Score)
}

func (s *RiskServiceTestSuite) TestAssessRisk_InsufficientData() {
	for _, values := range [][]float64{nil, {42}} {
		_, err := s.service.AssessRisk(values)
		s.ErrorIs(err, forecast.ErrInsufficientData)
	}
}

func (s *RiskServiceTestSuite) TestAssessStreams() {
	streams := s.service.AssessStreams(referencePoints())
	s.True(streams.Income.Available())
	s.True(streams.Expenses.Available())
	s.True(streams.Savings.Available())

	avg, ok := streams.AverageScore()
	s.True(ok)
	s.GreaterOrEqual(avg, 0.0)

	single := s.service.AssessStreams(referencePoints()[:1])
	s.False(single.Income.Available())
	s.NotEmpty(single.Savings.Unavailable)
	_, ok = single.AverageScore()
	s.False(ok)
}

func (s *RiskServiceTestSuite) TestRecentChangePct() {
	s.Equal(50.0, RecentChangePct([]float64{100, 150}))
	s.Equal(-50.0, RecentChangePct([]float64{-100, -150}))
	s.Equal(0.0, RecentChangePct([]float64{0, 150}), "zero previous value")
	s.Equal(0.0, RecentChangePct([]float64{150}))
}

func (s *RiskServiceTestSuite) TestRiskScore() {
	score := RiskScore(models.RiskFactors{Volatility: 10, TrendStrength: 0.1, RecentChangePct: -20})
	s.InDelta(10*0.4+0.1*30+20*0.3, score, 1e-9)
}
