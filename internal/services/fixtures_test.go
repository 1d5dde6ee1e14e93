package services

import (
	"context"
	"testing"
	"time"

	"ledger-analytics/internal/models"
	"ledger-analytics/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// referenceIncome and referenceExpenses are the six-month regression fixture
// (January to June 2023); expenses are written with the ledger sign.
var (
	referenceIncome   = []float64{1000, 1000, 1050, 1050, 1100, 1100}
	referenceExpenses = []float64{-800, -850, -820, -870, -880, -900}
)

func period(year, month int) models.Period {
	return models.Period{Year: year, Month: time.Month(month)}
}

// referencePoints builds the fixture as a monthly series.
func referencePoints() []models.TimeSeriesPoint {
	points := make([]models.TimeSeriesPoint, len(referenceIncome))
	for i := range points {
		expenses := -referenceExpenses[i]
		points[i] = models.TimeSeriesPoint{
			Period:   period(2023, i+1),
			Income:   referenceIncome[i],
			Expenses: expenses,
			Net:      referenceIncome[i] - expenses,
			Currency: "USD",
		}
	}
	return points
}

func ledgerEntry(at time.Time, amount float64, currency string, category *uuid.UUID) models.LedgerEntry {
	return models.LedgerEntry{
		ID:         uuid.New(),
		OccurredAt: at,
		Amount:     decimal.NewFromFloat(amount),
		Currency:   currency,
		CategoryID: category,
		CreatedAt:  at,
	}
}

func monthDay(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
}

// referenceEntries turns the fixture into ledger rows, one income and one
// expense row per month.
func referenceEntries(incomeCategory, expenseCategory uuid.UUID) []models.LedgerEntry {
	var entries []models.LedgerEntry
	for i := range referenceIncome {
		entries = append(entries,
			ledgerEntry(monthDay(2023, i+1, 1), referenceIncome[i], "USD", &incomeCategory),
			ledgerEntry(monthDay(2023, i+1, 15), referenceExpenses[i], "USD", &expenseCategory),
		)
	}
	return entries
}

func ptrID(id uuid.UUID) *uuid.UUID {
	return &id
}

// newSeededStore returns a store refreshed once from entries and categories.
func newSeededStore(t *testing.T, entries []models.LedgerEntry, categories []models.Category) *AggregationStore {
	t.Helper()
	ctrl := gomock.NewController(t)

	ledgerRepo := repository_mocks.NewMockLedgerRepositoryInterface(ctrl)
	categoryRepo := repository_mocks.NewMockCategoryRepositoryInterface(ctrl)
	ledgerRepo.EXPECT().GetEntries(gomock.Any(), gomock.Any()).Return(entries, nil).AnyTimes()
	categoryRepo.EXPECT().GetAll(gomock.Any()).Return(categories, nil).AnyTimes()

	store := NewAggregationStore(ledgerRepo, categoryRepo)
	_, err := store.Refresh(context.Background(), monthDay(2023, 12, 31))
	require.NoError(t, err)
	return store
}

// recordingMetrics counts metric calls by name.
type recordingMetrics struct {
	counters map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{counters: make(map[string]int)}
}

func (m *recordingMetrics) IncrementCounter(name string, _ map[string]string) { m.counters[name]++ }
func (m *recordingMetrics) RecordProcessingTime(string, time.Duration)        {}
func (m *recordingMetrics) RecordGauge(string, float64, map[string]string)    {}
