package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// RefreshScheduler runs the aggregation store refresh in the background on a
// cron schedule. Overlapping ticks are skipped while a refresh is running.
type RefreshScheduler struct {
	store     AggregationStoreInterface
	schedule  string
	onStartup bool
	timeout   time.Duration
	logger    *slog.Logger
	now       func() time.Time

	mu      sync.Mutex
	lastErr error
	runs    int
}

func NewRefreshScheduler(store AggregationStoreInterface, schedule string, onStartup bool, timeout time.Duration) *RefreshScheduler {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &RefreshScheduler{
		store:     store,
		schedule:  schedule,
		onStartup: onStartup,
		timeout:   timeout,
		logger:    slog.Default(),
		now:       time.Now,
	}
}

// Start blocks until ctx is cancelled, then waits for an in-flight refresh.
func (s *RefreshScheduler) Start(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(s.schedule, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", s.schedule, err)
	}

	s.logger.Info("starting aggregate refresh scheduler",
		slog.String("schedule", s.schedule),
		slog.Bool("refresh_on_startup", s.onStartup),
	)

	if s.onStartup {
		s.RunOnce(ctx)
	}

	c.Start()
	<-ctx.Done()

	s.logger.Info("refresh scheduler shutting down, waiting for running refresh to complete")
	<-c.Stop().Done()
	s.logger.Info("refresh scheduler stopped")
	return nil
}

// RunOnce performs a single refresh bounded by the scheduler timeout.
// Failures are logged; the store keeps serving its previous version.
func (s *RefreshScheduler) RunOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	report, err := s.store.Refresh(ctx, s.now().UTC())

	s.mu.Lock()
	s.runs++
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		var refreshErr *RefreshError
		if errors.As(err, &refreshErr) {
			s.logger.Error("scheduled refresh failed",
				slog.String("view", refreshErr.View),
				slog.Uint64("retained_version", refreshErr.RetainedVersion),
				slog.String("error", refreshErr.Err.Error()),
			)
			return
		}
		s.logger.Error("scheduled refresh failed", slog.String("error", err.Error()))
		return
	}

	s.logger.Info("scheduled refresh completed",
		slog.Uint64("version", report.Version),
		slog.Int("ledger_rows", report.LedgerRows),
		slog.Int64("duration_ms", report.DurationMs),
	)
}

// LastResult reports how many refreshes ran and the error of the latest one.
func (s *RefreshScheduler) LastResult() (runs int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs, s.lastErr
}
