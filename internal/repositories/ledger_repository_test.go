package repositories

import (
	"context"
	"testing"
	"time"

	"ledger-analytics/internal/database"
	"ledger-analytics/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestLedgerRepository(t *testing.T) {
	suite.Run(t, new(LedgerRepositorySuite))
}

type LedgerRepositorySuite struct {
	suite.Suite
	db         *database.DB
	repo       LedgerRepositoryInterface
	categories CategoryRepositoryInterface
	ctx        context.Context

	food      *models.Category
	groceries *models.Category
}

func (s *LedgerRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewLedgerRepository(s.db.DB)
	s.categories = NewCategoryRepository(s.db.DB)
	s.ctx = context.Background()

	s.food = database.CreateTestCategory(s.T(), s.db, "Food", nil)
	s.groceries = database.CreateTestCategory(s.T(), s.db, "Groceries", s.food)
}

func (s *LedgerRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *LedgerRepositorySuite) day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 12, 0, 0, 0, time.UTC)
}

func (s *LedgerRepositorySuite) TestGetEntries_OrderedByDate() {
	database.CreateTestEntry(s.T(), s.db, s.day(time.March, 10), -30, "USD", s.groceries)
	database.CreateTestEntry(s.T(), s.db, s.day(time.January, 5), 1000, "USD", nil)
	database.CreateTestEntry(s.T(), s.db, s.day(time.February, 20), -45.5, "USD", s.food)

	entries, err := s.repo.GetEntries(s.ctx, models.LedgerFilters{})
	s.Require().NoError(err)
	s.Require().Len(entries, 3)

	s.Equal(time.January, entries[0].OccurredAt.Month())
	s.Equal(time.February, entries[1].OccurredAt.Month())
	s.Equal(time.March, entries[2].OccurredAt.Month())
	s.True(entries[1].Amount.Equal(decimal.NewFromFloat(-45.5)))
}

func (s *LedgerRepositorySuite) TestGetEntries_Filters() {
	database.CreateTestEntry(s.T(), s.db, s.day(time.January, 5), 1000, "USD", nil)
	database.CreateTestEntry(s.T(), s.db, s.day(time.February, 5), -20, "USD", s.groceries)
	database.CreateTestEntry(s.T(), s.db, s.day(time.February, 6), -25, "EUR", s.groceries)
	database.CreateTestEntry(s.T(), s.db, s.day(time.March, 5), -70, "USD", s.food)

	end := s.day(time.February, 28)
	upToFeb, err := s.repo.GetEntries(s.ctx, models.LedgerFilters{EndDate: &end})
	s.Require().NoError(err)
	s.Len(upToFeb, 3)

	usd, err := s.repo.GetEntries(s.ctx, models.LedgerFilters{Currency: "USD"})
	s.Require().NoError(err)
	s.Len(usd, 3)

	start := s.day(time.February, 1)
	groceries, err := s.repo.GetEntries(s.ctx, models.LedgerFilters{
		StartDate:   &start,
		Currency:    "USD",
		CategoryIDs: []uuid.UUID{s.groceries.ID},
	})
	s.Require().NoError(err)
	s.Require().Len(groceries, 1)
	s.Equal(s.groceries.ID, *groceries[0].CategoryID)
}

func (s *LedgerRepositorySuite) TestGetEntries_InvalidFilter() {
	start := s.day(time.March, 1)
	end := s.day(time.January, 1)

	_, err := s.repo.GetEntries(s.ctx, models.LedgerFilters{StartDate: &start, EndDate: &end})
	s.ErrorIs(err, models.ErrInvalidLedgerFilter)

	_, err = s.repo.GetEntries(s.ctx, models.LedgerFilters{Currency: "dollars"})
	s.ErrorIs(err, models.ErrInvalidLedgerFilter)
}

func (s *LedgerRepositorySuite) TestGetEntries_RandomVolume() {
	for i := 0; i < 25; i++ {
		amount := gofakeit.Float64Range(-500, 500)
		if decimal.NewFromFloat(amount).Round(2).IsZero() {
			amount = 1
		}
		occurred := gofakeit.DateRange(s.day(time.January, 1), s.day(time.December, 31)).UTC()
		database.CreateTestEntry(s.T(), s.db, occurred, amount, "USD", nil)
	}

	entries, err := s.repo.GetEntries(s.ctx, models.LedgerFilters{})
	s.Require().NoError(err)
	s.Len(entries, 25)
	for i := 1; i < len(entries); i++ {
		s.False(entries[i].OccurredAt.Before(entries[i-1].OccurredAt))
	}
}

func (s *LedgerRepositorySuite) TestGetCurrencies() {
	database.CreateTestEntry(s.T(), s.db, s.day(time.January, 5), 10, "USD", nil)
	database.CreateTestEntry(s.T(), s.db, s.day(time.January, 6), 10, "EUR", nil)
	database.CreateTestEntry(s.T(), s.db, s.day(time.January, 7), 10, "USD", nil)

	currencies, err := s.repo.GetCurrencies(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"EUR", "USD"}, currencies)
}

func (s *LedgerRepositorySuite) TestCategoryRepository_GetAll() {
	categories, err := s.categories.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(categories, 2)

	s.Equal("Food", categories[0].Name)
	s.False(categories[0].HasParent())
	s.Equal("Groceries", categories[1].Name)
	s.Equal(s.food.ID, *categories[1].ParentID)
}
