package app

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"ledger-analytics/internal/config"
	"ledger-analytics/internal/database"
	"ledger-analytics/internal/models"
	"ledger-analytics/internal/services"
)

type AppTestSuite struct {
	suite.Suite
	db  *database.DB
	cfg *config.Config
	ctx context.Context
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.ctx = context.Background()
	s.cfg = &config.Config{
		Analytics: config.AnalyticsConfig{
			RefreshSchedule:      "@hourly",
			RefreshTimeout:       time.Minute,
			DefaultCurrency:      "USD",
			LookbackMonths:       12,
			DefaultHorizon:       6,
			MaxHorizon:           24,
			CorrelationThreshold: 0.7,
			GoalWeights:          services.EqualWeights(),
			PersistSnapshots:     true,
		},
		Narrative: config.NarrativeConfig{
			FailureThreshold: 3,
			ResetTimeout:     time.Minute,
		},
	}
}

func (s *AppTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AppTestSuite) seedLedger() {
	income := database.CreateTestCategory(s.T(), s.db, "Income", nil)
	database.CreateTestCategory(s.T(), s.db, "Salary", income)
	living := database.CreateTestCategory(s.T(), s.db, "Living", nil)
	database.CreateTestCategory(s.T(), s.db, "Rent", living)
	database.CreateTestCategory(s.T(), s.db, "Groceries", living)

	var categories []models.Category
	s.Require().NoError(s.db.Find(&categories).Error)

	end := time.Now().UTC()
	start := end.AddDate(-2, 0, 0)
	entries := services.NewLedgerGenerator(42).Generate(categories, start, end, "USD")
	s.Require().NotEmpty(entries)

	a, err := New(s.ctx, s.cfg, s.db.DB, nil, nil)
	s.Require().NoError(err)
	s.Require().NoError(a.LedgerWriter.CreateBatch(s.ctx, entries))
}

func (s *AppTestSuite) TestNew_EmptyDatabase() {
	a, err := New(s.ctx, s.cfg, s.db.DB, prometheus.NewRegistry(), nil)
	s.Require().NoError(err)

	s.Equal(uint64(0), a.Store.Version())
	s.NotNil(a.Scheduler)
	s.Equal("closed", a.Breaker.GetState().String())
}

func (s *AppTestSuite) TestRefreshThenForecast() {
	s.seedLedger()

	a, err := New(s.ctx, s.cfg, s.db.DB, nil, nil)
	s.Require().NoError(err)

	report, err := a.Store.Refresh(s.ctx, time.Now().UTC())
	s.Require().NoError(err)
	s.Equal(uint64(1), report.Version)
	s.Positive(report.LedgerRows)

	result, err := a.Forecasts.Forecast(s.ctx, services.ForecastRequest{Model: models.ModelLinear})
	s.Require().NoError(err)
	s.Equal("USD", result.Currency)
	s.Len(result.Values, s.cfg.Analytics.DefaultHorizon)
}

func (s *AppTestSuite) TestInsightsWithoutNarrator() {
	s.seedLedger()

	a, err := New(s.ctx, s.cfg, s.db.DB, nil, nil)
	s.Require().NoError(err)
	_, err = a.Store.Refresh(s.ctx, time.Now().UTC())
	s.Require().NoError(err)

	payload, err := a.Insights.Generate(s.ctx, "USD", true)
	s.Require().NoError(err)
	s.Equal(models.SectionAvailable, payload.Aggregates.Status)
	s.Equal(models.SectionUnavailable, payload.Narrative.Status)
}

func (s *AppTestSuite) TestSnapshotRestoredOnStartup() {
	s.seedLedger()

	first, err := New(s.ctx, s.cfg, s.db.DB, nil, nil)
	s.Require().NoError(err)
	_, err = first.Store.Refresh(s.ctx, time.Now().UTC())
	s.Require().NoError(err)

	second, err := New(s.ctx, s.cfg, s.db.DB, nil, nil)
	s.Require().NoError(err)
	s.Equal(first.Store.Version(), second.Store.Version())
	s.NotEmpty(second.Store.MonthlySeries("USD"))
}

func (s *AppTestSuite) TestNew_NarrativeEnabledWithoutKey() {
	s.cfg.Narrative.Enabled = true

	_, err := New(s.ctx, s.cfg, s.db.DB, nil, nil)
	s.ErrorIs(err, services.ErrNarrativeDisabled)
}
