package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"ledger-analytics/internal/models"
	"ledger-analytics/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// viewSet is one consistent generation of every aggregate view. It is never
// modified after being published.
type viewSet struct {
	version       uint64
	lastUpdated   time.Time
	views         map[string]models.AggregateView
	categoryNames map[uuid.UUID]string
}

// AggregationStore owns the aggregate views. Refreshes are serialized by
// writeMu; readers load the published viewSet without locking.
type AggregationStore struct {
	ledgerRepo   repositories.LedgerRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	snapshotRepo repositories.ViewSnapshotRepositoryInterface
	builders     []ViewBuilder
	metrics      MetricsRecorderInterface
	audit        AuditLoggerInterface
	logger       *slog.Logger

	writeMu sync.Mutex
	current atomic.Pointer[viewSet]
}

type AggregationStoreOption func(*AggregationStore)

// WithViewBuilders replaces the default view builders.
func WithViewBuilders(builders ...ViewBuilder) AggregationStoreOption {
	return func(s *AggregationStore) {
		s.builders = builders
	}
}

// WithSnapshotRepository persists every successful refresh and enables Restore.
func WithSnapshotRepository(repo repositories.ViewSnapshotRepositoryInterface) AggregationStoreOption {
	return func(s *AggregationStore) {
		s.snapshotRepo = repo
	}
}

func WithStoreMetrics(metrics MetricsRecorderInterface) AggregationStoreOption {
	return func(s *AggregationStore) {
		s.metrics = metrics
	}
}

func WithStoreAuditLogger(audit AuditLoggerInterface) AggregationStoreOption {
	return func(s *AggregationStore) {
		s.audit = audit
	}
}

func NewAggregationStore(
	ledgerRepo repositories.LedgerRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	opts ...AggregationStoreOption,
) *AggregationStore {
	s := &AggregationStore{
		ledgerRepo:   ledgerRepo,
		categoryRepo: categoryRepo,
		builders:     DefaultViewBuilders(),
		metrics:      NoopMetrics{},
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.audit == nil {
		s.audit = NewAuditLogger(s.logger)
	}

	s.current.Store(s.emptySet())
	return s
}

func (s *AggregationStore) emptySet() *viewSet {
	views := make(map[string]models.AggregateView, len(s.builders))
	for _, b := range s.builders {
		views[b.Name()] = models.AggregateView{Name: b.Name(), Rows: []models.ViewRow{}}
	}
	return &viewSet{views: views, categoryNames: map[uuid.UUID]string{}}
}

// Refresh rebuilds every view from the ledger as of asOf. The new views are
// published together; on any failure the previous generation stays current
// and a *RefreshError is returned alongside the report.
func (s *AggregationStore) Refresh(ctx context.Context, asOf time.Time) (*models.RefreshReport, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	start := time.Now()
	prev := s.current.Load()
	report := &models.RefreshReport{
		AsOf:            asOf,
		PreviousVersion: prev.version,
		Version:         prev.version,
	}

	s.audit.LogRefreshStarted(ctx, asOf, prev.version)

	next, err := s.build(ctx, asOf, prev.version+1, report)
	if err == nil && s.snapshotRepo != nil {
		err = s.persist(ctx, next)
	}

	report.DurationMs = time.Since(start).Milliseconds()
	s.metrics.RecordProcessingTime(MetricRefreshDuration, time.Since(start))

	if err != nil {
		refreshErr := toRefreshError(err, prev.version)
		report.PreviousStateRetained = true
		report.FailedView = refreshErr.View
		report.Error = refreshErr.Err.Error()

		s.metrics.IncrementCounter(MetricRefreshFailed, nil)
		s.audit.LogRefreshFailed(ctx, refreshErr.View, refreshErr.Err.Error(), prev.version)
		return report, refreshErr
	}

	s.current.Store(next)

	report.Succeeded = true
	report.Version = next.version
	s.metrics.IncrementCounter(MetricRefreshCompleted, nil)
	s.metrics.RecordGauge(MetricViewVersion, float64(next.version), nil)
	for _, v := range report.Views {
		s.metrics.RecordGauge(MetricViewRows, float64(v.Rows), map[string]string{"view": v.Name})
	}
	s.audit.LogRefreshCompleted(ctx, next.version, report.LedgerRows, report.DurationMs)

	return report, nil
}

func (s *AggregationStore) build(ctx context.Context, asOf time.Time, version uint64, report *models.RefreshReport) (*viewSet, error) {
	entries, err := s.ledgerRepo.GetEntries(ctx, models.UpTo(asOf))
	if err != nil {
		return nil, &RefreshError{Err: fmt.Errorf("failed to read ledger: %w", err)}
	}
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, &RefreshError{Err: fmt.Errorf("failed to read categories: %w", err)}
	}
	report.LedgerRows = len(entries)

	input := NewRefreshInput(asOf, entries, categories)
	results := make([][]models.ViewRow, len(s.builders))
	stats := make([]models.ViewRefreshStat, len(s.builders))

	g, gctx := errgroup.WithContext(ctx)
	for i, b := range s.builders {
		i, b := i, b
		g.Go(func() error {
			started := time.Now()
			rows, err := b.Build(gctx, input)
			if err != nil {
				return &RefreshError{View: b.Name(), Err: err}
			}
			if rows == nil {
				rows = []models.ViewRow{}
			}
			results[i] = rows
			stats[i] = models.ViewRefreshStat{
				Name:       b.Name(),
				Rows:       len(rows),
				DurationMs: time.Since(started).Milliseconds(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	next := &viewSet{
		version:       version,
		lastUpdated:   asOf,
		views:         make(map[string]models.AggregateView, len(s.builders)),
		categoryNames: make(map[uuid.UUID]string, len(categories)),
	}
	for i, b := range s.builders {
		next.views[b.Name()] = models.AggregateView{
			Name:        b.Name(),
			Version:     version,
			LastUpdated: asOf,
			Rows:        results[i],
		}
	}
	for _, c := range categories {
		next.categoryNames[c.ID] = c.Name
	}
	report.Views = stats

	return next, nil
}

func (s *AggregationStore) persist(ctx context.Context, set *viewSet) error {
	records := make([]models.ViewSnapshotRecord, 0, len(set.views))
	for _, b := range s.builders {
		record, err := models.NewViewSnapshotRecord(set.views[b.Name()])
		if err != nil {
			return &RefreshError{View: b.Name(), Err: err}
		}
		records = append(records, record)
	}

	if err := s.snapshotRepo.ReplaceAll(ctx, records); err != nil {
		return &RefreshError{Err: fmt.Errorf("failed to persist snapshot: %w", err)}
	}
	return nil
}

func toRefreshError(err error, retained uint64) *RefreshError {
	refreshErr, ok := err.(*RefreshError)
	if !ok {
		refreshErr = &RefreshError{Err: err}
	}
	refreshErr.RetainedVersion = retained
	return refreshErr
}

// Restore publishes the persisted snapshot, if one exists. Views missing from
// the snapshot are served empty until the next refresh.
func (s *AggregationStore) Restore(ctx context.Context) error {
	if s.snapshotRepo == nil {
		return nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	records, err := s.snapshotRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore aggregate views: %w", err)
	}
	if len(records) == 0 {
		s.logger.Info("no persisted aggregate snapshot found")
		return nil
	}

	set := s.emptySet()
	for _, record := range records {
		if _, known := set.views[record.Name]; !known {
			s.logger.Warn("ignoring persisted view without builder", "view", record.Name)
			continue
		}
		view, err := record.ToView()
		if err != nil {
			return fmt.Errorf("failed to restore view %s: %w", record.Name, err)
		}
		set.views[record.Name] = view
		if view.Version > set.version {
			set.version = view.Version
			set.lastUpdated = view.LastUpdated
		}
	}

	if categories, err := s.categoryRepo.GetAll(ctx); err != nil {
		s.logger.Warn("failed to load category names on restore", "error", err)
	} else {
		for _, c := range categories {
			set.categoryNames[c.ID] = c.Name
		}
	}

	s.current.Store(set)
	s.logger.Info("restored aggregate views", "version", set.version, "views", len(records))
	return nil
}

// Query returns the rows of the current generation of viewName matching filter.
func (s *AggregationStore) Query(viewName string, filter models.ViewFilter) ([]models.ViewRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	view, err := s.View(viewName)
	if err != nil {
		return nil, err
	}

	rows := make([]models.ViewRow, 0, len(view.Rows))
	for _, row := range view.Rows {
		if !filter.Matches(row) {
			continue
		}
		rows = append(rows, row)
		if filter.Limit > 0 && len(rows) == filter.Limit {
			break
		}
	}
	return rows, nil
}

func (s *AggregationStore) View(name string) (models.AggregateView, error) {
	view, ok := s.current.Load().views[name]
	if !ok {
		return models.AggregateView{}, fmt.Errorf("%w: %s", ErrUnknownView, name)
	}
	return view, nil
}

func (s *AggregationStore) Version() uint64 {
	return s.current.Load().version
}

func (s *AggregationStore) LastUpdated() time.Time {
	return s.current.Load().lastUpdated
}

// MonthlySeries returns the monthly summary of one currency as a dense series:
// months without entries between the first and last period appear as zeros.
func (s *AggregationStore) MonthlySeries(currency string) []models.TimeSeriesPoint {
	view, ok := s.current.Load().views[models.ViewMonthlySummary]
	if !ok {
		return nil
	}

	byPeriod := make(map[models.Period]models.MonthlySummaryRow)
	var first, last models.Period
	for _, row := range view.Rows {
		r, ok := row.(models.MonthlySummaryRow)
		if !ok || r.Currency != currency {
			continue
		}
		if len(byPeriod) == 0 || r.Period.Before(first) {
			first = r.Period
		}
		if len(byPeriod) == 0 || r.Period.After(last) {
			last = r.Period
		}
		byPeriod[r.Period] = r
	}
	if len(byPeriod) == 0 {
		return nil
	}

	points := make([]models.TimeSeriesPoint, 0, last.Index()-first.Index()+1)
	for p := first; !p.After(last); p = p.AddMonths(1) {
		if r, ok := byPeriod[p]; ok {
			points = append(points, r.ToPoint())
			continue
		}
		points = append(points, models.TimeSeriesPoint{Period: p, Currency: currency})
	}
	return points
}

// CategorySeries returns every category's monthly totals in one currency.
func (s *AggregationStore) CategorySeries(currency string) []models.CategorySeries {
	view, ok := s.current.Load().views[models.ViewCategorySummary]
	if !ok {
		return nil
	}

	byCategory := make(map[uuid.UUID]*models.CategorySeries)
	var order []uuid.UUID
	for _, row := range view.Rows {
		r, ok := row.(models.CategorySummaryRow)
		if !ok || r.Currency != currency {
			continue
		}
		series, ok := byCategory[r.CategoryID]
		if !ok {
			series = &models.CategorySeries{CategoryID: r.CategoryID, Currency: currency}
			byCategory[r.CategoryID] = series
			order = append(order, r.CategoryID)
		}
		series.Points = append(series.Points, models.CategoryPoint{
			Period:           r.Period,
			TotalAmount:      r.TotalAmount,
			TransactionCount: r.TransactionCount,
		})
	}

	out := make([]models.CategorySeries, 0, len(order))
	for _, id := range order {
		series := byCategory[id]
		sort.Slice(series.Points, func(i, j int) bool {
			return series.Points[i].Period.Before(series.Points[j].Period)
		})
		out = append(out, *series)
	}
	return out
}

// CategoryNames returns a copy of the category names captured by the last refresh.
func (s *AggregationStore) CategoryNames() map[uuid.UUID]string {
	names := s.current.Load().categoryNames
	out := make(map[uuid.UUID]string, len(names))
	for id, name := range names {
		out[id] = name
	}
	return out
}

// QueryRows narrows the rows of a view to one concrete row type.
func QueryRows[T models.ViewRow](store AggregationStoreInterface, viewName string, filter models.ViewFilter) ([]T, error) {
	rows, err := store.Query(viewName, filter)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if typed, ok := row.(T); ok {
			out = append(out, typed)
		}
	}
	return out, nil
}
