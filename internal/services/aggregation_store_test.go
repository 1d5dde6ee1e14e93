package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ledger-analytics/internal/models"
	"ledger-analytics/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var errInjected = errors.New("injected builder failure")

// stubBuilder emits one row stamped with the refresh date, or fails while
// fail is set.
type stubBuilder struct {
	name string
	fail *atomic.Bool
}

func (b stubBuilder) Name() string { return b.name }

func (b stubBuilder) Build(_ context.Context, in *RefreshInput) ([]models.ViewRow, error) {
	if b.fail != nil && b.fail.Load() {
		return nil, errInjected
	}
	return []models.ViewRow{models.MonthlySummaryRow{Period: models.PeriodOf(in.AsOf), Currency: "USD"}}, nil
}

type AggregationStoreTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	ledgerRepo   *repository_mocks.MockLedgerRepositoryInterface
	categoryRepo *repository_mocks.MockCategoryRepositoryInterface
	snapshotRepo *repository_mocks.MockViewSnapshotRepositoryInterface
	income       models.Category
	rent         models.Category
}

func TestAggregationStoreSuite(t *testing.T) {
	suite.Run(t, new(AggregationStoreTestSuite))
}

func (s *AggregationStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.ledgerRepo = repository_mocks.NewMockLedgerRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.snapshotRepo = repository_mocks.NewMockViewSnapshotRepositoryInterface(s.ctrl)
	s.income = models.Category{ID: uuid.New(), Name: "Income"}
	s.rent = models.Category{ID: uuid.New(), Name: "Rent"}
}

func (s *AggregationStoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AggregationStoreTestSuite) expectLedger(entries []models.LedgerEntry) {
	s.ledgerRepo.EXPECT().GetEntries(gomock.Any(), gomock.Any()).Return(entries, nil).AnyTimes()
	s.categoryRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Category{s.income, s.rent}, nil).AnyTimes()
}

func (s *AggregationStoreTestSuite) TestQuery_BeforeFirstRefresh() {
	store := NewAggregationStore(s.ledgerRepo, s.categoryRepo)

	rows, err := store.Query(models.ViewMonthlySummary, models.ViewFilter{})
	s.NoError(err)
	s.Empty(rows)
	s.Equal(uint64(0), store.Version())
	s.Nil(store.MonthlySeries("USD"))
}

func (s *AggregationStoreTestSuite) TestRefresh_PublishesEveryView() {
	s.expectLedger(referenceEntries(s.income.ID, s.rent.ID))
	store := NewAggregationStore(s.ledgerRepo, s.categoryRepo)
	asOf := monthDay(2023, 7, 1)

	report, err := store.Refresh(s.ctx, asOf)
	s.Require().NoError(err)
	s.True(report.Succeeded)
	s.Equal(uint64(1), report.Version)
	s.Equal(uint64(0), report.PreviousVersion)
	s.Equal(12, report.LedgerRows)
	s.Len(report.Views, len(models.AllViewNames()))

	for _, name := range models.AllViewNames() {
		view, err := store.View(name)
		s.Require().NoError(err)
		s.Equal(uint64(1), view.Version, name)
		s.Equal(asOf, view.LastUpdated, name)
	}
	s.Equal("Rent", store.CategoryNames()[s.rent.ID])
}

func (s *AggregationStoreTestSuite) TestRefresh_ReadsLedgerUpToAsOf() {
	asOf := monthDay(2023, 7, 1)
	s.ledgerRepo.EXPECT().
		GetEntries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.LedgerFilters) ([]models.LedgerEntry, error) {
			s.Require().NotNil(f.EndDate)
			s.Equal(asOf, *f.EndDate)
			s.Nil(f.StartDate)
			return nil, nil
		})
	s.categoryRepo.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

	_, err := NewAggregationStore(s.ledgerRepo, s.categoryRepo).Refresh(s.ctx, asOf)
	s.NoError(err)
}

// A failure injected in the third of five views must leave every view at
// its previous version.
func (s *AggregationStoreTestSuite) TestRefresh_FailureMidwayRetainsPreviousViews() {
	s.expectLedger(nil)
	fail := &atomic.Bool{}
	names := []string{
		models.ViewMonthlySummary,
		models.ViewCategorySummary,
		models.ViewSubcategorySummary,
		models.ViewCategoryHierarchy,
		models.ViewCategoryAnomalies,
	}
	builders := make([]ViewBuilder, len(names))
	for i, name := range names {
		b := stubBuilder{name: name}
		if i == 2 {
			b.fail = fail
		}
		builders[i] = b
	}
	store := NewAggregationStore(s.ledgerRepo, s.categoryRepo, WithViewBuilders(builders...))

	_, err := store.Refresh(s.ctx, monthDay(2023, 1, 31))
	s.Require().NoError(err)

	fail.Store(true)
	report, err := store.Refresh(s.ctx, monthDay(2023, 2, 28))

	s.Require().Error(err)
	s.ErrorIs(err, ErrRefreshFailed)
	s.ErrorIs(err, errInjected)

	var refreshErr *RefreshError
	s.Require().ErrorAs(err, &refreshErr)
	s.Equal(models.ViewSubcategorySummary, refreshErr.View)
	s.Equal(uint64(1), refreshErr.RetainedVersion)

	s.False(report.Succeeded)
	s.True(report.PreviousStateRetained)
	s.Equal(models.ViewSubcategorySummary, report.FailedView)
	s.Equal(uint64(1), store.Version())

	for _, name := range names {
		rows, err := store.Query(name, models.ViewFilter{})
		s.Require().NoError(err)
		s.Require().Len(rows, 1, name)
		s.Equal(period(2023, 1), rows[0].RowPeriod(), name)
	}

	fail.Store(false)
	_, err = store.Refresh(s.ctx, monthDay(2023, 2, 28))
	s.Require().NoError(err)
	s.Equal(uint64(2), store.Version())
}

func (s *AggregationStoreTestSuite) TestRefresh_LedgerFailure() {
	s.ledgerRepo.EXPECT().GetEntries(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	metrics := newRecordingMetrics()
	store := NewAggregationStore(s.ledgerRepo, s.categoryRepo, WithStoreMetrics(metrics))

	report, err := store.Refresh(s.ctx, time.Now())

	s.ErrorIs(err, ErrRefreshFailed)
	s.True(report.PreviousStateRetained)
	s.Empty(report.FailedView)
	s.Contains(report.Error, "connection refused")
	s.Equal(1, metrics.counters[MetricRefreshFailed])
}

func (s *AggregationStoreTestSuite) TestRefresh_PersistsSnapshotBeforeSwap() {
	s.expectLedger(referenceEntries(s.income.ID, s.rent.ID))
	s.snapshotRepo.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []models.ViewSnapshotRecord) error {
			s.Len(records, len(models.AllViewNames()))
			for _, r := range records {
				s.Equal(uint64(1), r.Version)
			}
			return nil
		})

	store := NewAggregationStore(s.ledgerRepo, s.categoryRepo, WithSnapshotRepository(s.snapshotRepo))
	_, err := store.Refresh(s.ctx, monthDay(2023, 7, 1))
	s.NoError(err)
	s.Equal(uint64(1), store.Version())
}

func (s *AggregationStoreTestSuite) TestRefresh_PersistFailureAbortsSwap() {
	s.expectLedger(referenceEntries(s.income.ID, s.rent.ID))
	s.snapshotRepo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	store := NewAggregationStore(s.ledgerRepo, s.categoryRepo, WithSnapshotRepository(s.snapshotRepo))
	_, err := store.Refresh(s.ctx, monthDay(2023, 7, 1))

	s.ErrorIs(err, ErrRefreshFailed)
	s.Equal(uint64(0), store.Version())
	rows, err := store.Query(models.ViewMonthlySummary, models.ViewFilter{})
	s.NoError(err)
	s.Empty(rows)
}

func (s *AggregationStoreTestSuite) TestRestore_ServesPersistedSnapshot() {
	s.expectLedger(referenceEntries(s.income.ID, s.rent.ID))

	var saved []models.ViewSnapshotRecord
	s.snapshotRepo.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []models.ViewSnapshotRecord) error {
			saved = records
			return nil
		})
	s.snapshotRepo.EXPECT().LoadAll(gomock.Any()).DoAndReturn(func(context.Context) ([]models.ViewSnapshotRecord, error) {
		return saved, nil
	})

	first := NewAggregationStore(s.ledgerRepo, s.categoryRepo, WithSnapshotRepository(s.snapshotRepo))
	_, err := first.Refresh(s.ctx, monthDay(2023, 7, 1))
	s.Require().NoError(err)

	restarted := NewAggregationStore(s.ledgerRepo, s.categoryRepo, WithSnapshotRepository(s.snapshotRepo))
	s.Require().NoError(restarted.Restore(s.ctx))

	s.Equal(uint64(1), restarted.Version())
	s.Equal(first.MonthlySeries("USD"), restarted.MonthlySeries("USD"))
	s.Equal("Income", restarted.CategoryNames()[s.income.ID])
}

func (s *AggregationStoreTestSuite) TestRestore_WithoutSnapshotRepository() {
	store := NewAggregationStore(s.ledgerRepo, s.categoryRepo)
	s.NoError(store.Restore(s.ctx))
	s.Equal(uint64(0), store.Version())
}

func (s *AggregationStoreTestSuite) TestQuery_Filters() {
	var entries []models.LedgerEntry
	for m := 1; m <= 6; m++ {
		entries = append(entries,
			ledgerEntry(monthDay(2023, m, 1), 1000, "USD", ptrID(s.income.ID)),
			ledgerEntry(monthDay(2023, m, 2), -400, "USD", ptrID(s.rent.ID)),
			ledgerEntry(monthDay(2023, m, 3), 500, "EUR", nil),
		)
	}
	s.expectLedger(entries)
	store := NewAggregationStore(s.ledgerRepo, s.categoryRepo)
	_, err := store.Refresh(s.ctx, monthDay(2023, 7, 1))
	s.Require().NoError(err)

	from, to := period(2023, 2), period(2023, 4)
	rows, err := store.Query(models.ViewMonthlySummary, models.ViewFilter{Currency: "USD", FromPeriod: &from, ToPeriod: &to})
	s.Require().NoError(err)
	s.Len(rows, 3)

	rows, err = store.Query(models.ViewCategorySummary, models.ViewFilter{CategoryID: ptrID(s.rent.ID)})
	s.Require().NoError(err)
	s.Len(rows, 6)

	rows, err = store.Query(models.ViewMonthlySummary, models.ViewFilter{Limit: 2})
	s.Require().NoError(err)
	s.Len(rows, 2)

	typed, err := QueryRows[models.MonthlySummaryRow](store, models.ViewMonthlySummary, models.ViewFilter{Currency: "EUR"})
	s.Require().NoError(err)
	s.Len(typed, 6)
	s.Equal(500.0, typed[0].Income)
}

func (s *AggregationStoreTestSuite) TestQuery_Errors() {
	store := NewAggregationStore(s.ledgerRepo, s.categoryRepo)

	_, err := store.Query("balance_sheet", models.ViewFilter{})
	s.ErrorIs(err, ErrUnknownView)

	from, to := period(2023, 5), period(2023, 1)
	_, err = store.Query(models.ViewMonthlySummary, models.ViewFilter{FromPeriod: &from, ToPeriod: &to})
	s.ErrorIs(err, ErrInvalidFilter)

	_, err = store.Query(models.ViewMonthlySummary, models.ViewFilter{Currency: "dollars"})
	s.ErrorIs(err, ErrInvalidFilter)
}

func (s *AggregationStoreTestSuite) TestMonthlySeries_FillsGaps() {
	s.expectLedger([]models.LedgerEntry{
		ledgerEntry(monthDay(2023, 1, 1), 1000, "USD", nil),
		ledgerEntry(monthDay(2023, 4, 1), 1200, "USD", nil),
	})
	store := NewAggregationStore(s.ledgerRepo, s.categoryRepo)
	_, err := store.Refresh(s.ctx, monthDay(2023, 5, 1))
	s.Require().NoError(err)

	points := store.MonthlySeries("USD")
	s.Require().Len(points, 4)
	s.Equal(period(2023, 2), points[1].Period)
	s.Equal(0.0, points[1].Income)
	s.Equal(1200.0, points[3].Income)
}

func (s *AggregationStoreTestSuite) TestCategorySeries_Ordered() {
	s.expectLedger(referenceEntries(s.income.ID, s.rent.ID))
	store := NewAggregationStore(s.ledgerRepo, s.categoryRepo)
	_, err := store.Refresh(s.ctx, monthDay(2023, 7, 1))
	s.Require().NoError(err)

	series := store.CategorySeries("USD")
	s.Len(series, 2)
	for _, cs := range series {
		s.Len(cs.Points, 6)
		for i := 1; i < len(cs.Points); i++ {
			s.True(cs.Points[i-1].Period.Before(cs.Points[i].Period))
		}
	}
}

func (s *AggregationStoreTestSuite) TestConcurrentReadersDuringRefresh() {
	s.expectLedger(referenceEntries(s.income.ID, s.rent.ID))
	store := NewAggregationStore(s.ledgerRepo, s.categoryRepo)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.Refresh(s.ctx, monthDay(2023, 7, 1))
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				rows, err := store.Query(models.ViewMonthlySummary, models.ViewFilter{})
				if err != nil || (len(rows) != 0 && len(rows) != 6) {
					s.Failf("inconsistent read", "rows=%d err=%v", len(rows), err)
					return
				}
			}
		}()
	}
	wg.Wait()

	s.Equal(uint64(4), store.Version())
}
