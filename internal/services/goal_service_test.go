package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ledger-analytics/internal/models"
	"ledger-analytics/internal/repositories"
	"ledger-analytics/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type GoalServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	goalRepo *repository_mocks.MockGoalRepositoryInterface
	metrics  *recordingMetrics
	service  *GoalService
	now      time.Time
}

func TestGoalServiceSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}

func (s *GoalServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.goalRepo = repository_mocks.NewMockGoalRepositoryInterface(s.ctrl)
	s.metrics = newRecordingMetrics()

	income := models.Category{ID: uuid.New(), Name: "Salary"}
	rent := models.Category{ID: uuid.New(), Name: "Rent"}
	store := newSeededStore(s.T(), referenceEntries(income.ID, rent.ID), []models.Category{income, rent})

	s.service = NewGoalService(store, NewRiskService(), s.goalRepo, nil, "USD", s.metrics, nil)
	s.now = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
}

func (s *GoalServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// inMonths returns a target date exactly months*30 days away.
func (s *GoalServiceTestSuite) inMonths(months int) time.Time {
	return s.now.Add(time.Duration(months) * goalMonth)
}

func (s *GoalServiceTestSuite) TestMonthsRemaining() {
	s.Equal(3, MonthsRemaining(s.now, s.now.Add(90*24*time.Hour)))
	s.Equal(4, MonthsRemaining(s.now, s.now.Add(91*24*time.Hour)))
	s.Equal(1, MonthsRemaining(s.now, s.now.Add(time.Hour)))
	s.Equal(0, MonthsRemaining(s.now, s.now))
	s.LessOrEqual(MonthsRemaining(s.now, s.now.Add(-45*24*time.Hour)), 0)
}

func (s *GoalServiceTestSuite) TestPredictGoal_ReferenceFixtureIsOffTrack() {
	goal := models.Goal{ID: uuid.New(), TargetAmount: 5000, CurrentAmount: 4000, TargetDate: s.inMonths(3)}
	points := referencePoints()

	prediction, err := s.service.PredictGoal(goal, points, NewRiskService().AssessStreams(points))
	s.Require().NoError(err)

	s.Equal(3, prediction.MonthsRemaining)
	s.InDelta(4650, prediction.PredictedAmount, 100)
	s.Equal(models.GoalStatusOffTrack, prediction.Status)
	s.InDelta(1000.0/3, prediction.MonthlyRequired, 1e-9)
	s.Len(prediction.ModelsUsed, 3)
	s.False(prediction.Partial())
	s.GreaterOrEqual(prediction.Confidence, 0.0)
	s.LessOrEqual(prediction.Confidence, 100.0)
	s.Equal(1, s.metrics.counters[MetricGoalPrediction])
}

func (s *GoalServiceTestSuite) TestPredictGoal_StatusMatchesPrediction() {
	points := referencePoints()
	risk := NewRiskService().AssessStreams(points)

	for _, target := range []float64{100, 4000, 4600, 4700, 9000} {
		goal := models.Goal{TargetAmount: target, CurrentAmount: 4000, TargetDate: s.inMonths(3)}
		prediction, err := s.service.PredictGoal(goal, points, risk)
		s.Require().NoError(err)
		s.Equal(prediction.PredictedAmount >= target, prediction.IsOnTrack(), "target %v", target)
	}
}

func (s *GoalServiceTestSuite) TestPredictGoal_ExpiredGoal() {
	goal := models.Goal{TargetAmount: 5000, CurrentAmount: 1200, TargetDate: s.now.AddDate(0, -2, 0)}

	prediction, err := s.service.PredictGoal(goal, referencePoints(), models.StreamRisk{})

	s.ErrorIs(err, ErrGoalExpired)
	s.Require().NotNil(prediction)
	s.True(prediction.Expired)
	s.LessOrEqual(prediction.MonthsRemaining, 0)
	s.Equal(1200.0, prediction.PredictedAmount)
	s.Equal(3800.0, prediction.MonthlyRequired)
	s.Equal(models.GoalStatusOffTrack, prediction.Status)
	s.Empty(prediction.ModelsUsed)
}

func (s *GoalServiceTestSuite) TestPredictGoal_PartialModels() {
	points := referencePoints()
	for i := range points {
		points[i].Net = 0
	}
	points[len(points)-1].Net = 300

	goal := models.Goal{TargetAmount: 1000, CurrentAmount: 0, TargetDate: s.inMonths(2)}
	prediction, err := s.service.PredictGoal(goal, points, models.StreamRisk{})
	s.Require().NoError(err)

	s.True(prediction.Partial())
	s.Equal([]models.ModelKind{models.ModelExponential}, prediction.ModelsUnavailable)
	s.NotContains(prediction.ModelsUsed, models.ModelExponential)
	s.Equal(1, s.metrics.counters[MetricModelUnavailable])
}

func (s *GoalServiceTestSuite) TestPredictGoal_NoModelsAvailable() {
	goal := models.Goal{TargetAmount: 1000, TargetDate: s.inMonths(6)}

	prediction, err := s.service.PredictGoal(goal, referencePoints()[:1], models.StreamRisk{})
	s.ErrorIs(err, ErrNoModelsAvailable)
	s.Nil(prediction)
}

func (s *GoalServiceTestSuite) TestPredictGoal_InvalidGoal() {
	tests := []struct {
		name string
		goal models.Goal
	}{
		{"zero target", models.Goal{TargetAmount: 0, TargetDate: s.inMonths(1)}},
		{"negative current", models.Goal{TargetAmount: 10, CurrentAmount: -1, TargetDate: s.inMonths(1)}},
		{"missing date", models.Goal{TargetAmount: 10}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.PredictGoal(tt.goal, referencePoints(), models.StreamRisk{})
			s.ErrorIs(err, ErrInvalidGoal)
		})
	}
}

func (s *GoalServiceTestSuite) TestGoalConfidence() {
	s.Equal(100.0, goalConfidence([]float64{10, 10, 10}, 0))
	s.Equal(85.0, goalConfidence([]float64{10, 10, 10}, 50))
	s.Equal(0.0, goalConfidence([]float64{-100, 100, -100, 100}, 0), "zero mean predictions")
	s.Less(goalConfidence([]float64{5, 15}, 0), 100.0)
}

func (s *GoalServiceTestSuite) TestPredictForCurrency_DefaultsCurrency() {
	goal := models.Goal{TargetAmount: 5000, CurrentAmount: 4000, TargetDate: s.inMonths(3)}

	prediction, err := s.service.PredictForCurrency(s.ctx, goal)
	s.Require().NoError(err)
	s.Len(prediction.ModelsUsed, 3)

	goal.Currency = "eur"
	_, err = s.service.PredictForCurrency(s.ctx, goal)
	s.ErrorIs(err, ErrNoModelsAvailable, "no EUR history")
}

func (s *GoalServiceTestSuite) TestPredictStoredGoal() {
	id := uuid.New()
	s.goalRepo.EXPECT().GetByID(gomock.Any(), id).Return(&models.GoalDefinition{
		ID:            id,
		Name:          "Emergency fund",
		TargetAmount:  decimal.NewFromInt(5000),
		CurrentAmount: decimal.NewFromInt(4000),
		TargetDate:    s.inMonths(3),
		Currency:      "USD",
	}, nil)

	prediction, err := s.service.PredictStoredGoal(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(id, prediction.GoalID)
}

func (s *GoalServiceTestSuite) TestPredictStoredGoal_NotFound() {
	s.goalRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrGoalNotFound)

	_, err := s.service.PredictStoredGoal(s.ctx, uuid.New())
	s.ErrorIs(err, repositories.ErrGoalNotFound)
}

func (s *GoalServiceTestSuite) TestPredictAll() {
	definitions := []models.GoalDefinition{
		{ID: uuid.New(), Name: "Car", TargetAmount: decimal.NewFromInt(2000), TargetDate: s.inMonths(12), Currency: "USD"},
		{ID: uuid.New(), Name: "Old trip", TargetAmount: decimal.NewFromInt(900), TargetDate: s.now.AddDate(-1, 0, 0), Currency: "USD"},
		{ID: uuid.New(), Name: "Flat", TargetAmount: decimal.NewFromInt(90000), TargetDate: s.inMonths(24), Currency: "EUR"},
	}
	s.goalRepo.EXPECT().List(gomock.Any()).Return(definitions, nil).Times(2)

	outcomes, err := s.service.PredictAll(s.ctx, "USD")
	s.Require().NoError(err)
	s.Require().Len(outcomes, 2)
	s.Empty(outcomes[0].Error)
	s.Require().NotNil(outcomes[1].Prediction)
	s.True(outcomes[1].Prediction.Expired)
	s.Empty(outcomes[1].Error, "expired goals still carry a prediction")

	outcomes, err = s.service.PredictAll(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(outcomes, 3)
	s.Nil(outcomes[2].Prediction)
	s.Contains(outcomes[2].Error, "no forecast model")
}

func (s *GoalServiceTestSuite) TestPredictAll_ListFailure() {
	s.goalRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("database is down"))

	_, err := s.service.PredictAll(s.ctx, "USD")
	s.Error(err)
}
