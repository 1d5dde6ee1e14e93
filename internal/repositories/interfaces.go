package repositories

import (
	"context"
	"errors"

	"ledger-analytics/internal/models"

	"github.com/google/uuid"
)

var ErrGoalNotFound = errors.New("goal not found")

// LedgerRepositoryInterface is the read-only ledger accessor used by the aggregation store
type LedgerRepositoryInterface interface {
	// GetEntries returns matching entries ordered by OccurredAt ascending.
	GetEntries(ctx context.Context, filters models.LedgerFilters) ([]models.LedgerEntry, error)
	GetCurrencies(ctx context.Context) ([]string, error)
}

// LedgerWriterInterface inserts synthetic ledger history into development databases.
// The analytics engine itself never writes to the ledger.
type LedgerWriterInterface interface {
	CreateBatch(ctx context.Context, entries []models.LedgerEntry) error
}

// CategoryRepositoryInterface defines the contract for category lookups
type CategoryRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Category, error)
}

// GoalRepositoryInterface defines the contract for goal definition lookups
type GoalRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.GoalDefinition, error)
	List(ctx context.Context) ([]models.GoalDefinition, error)
}

// ViewSnapshotRepositoryInterface persists the last consistent set of aggregate views
type ViewSnapshotRepositoryInterface interface {
	// ReplaceAll swaps the stored snapshot for records in a single transaction.
	ReplaceAll(ctx context.Context, records []models.ViewSnapshotRecord) error
	LoadAll(ctx context.Context) ([]models.ViewSnapshotRecord, error)
}
