package repositories

import (
	"context"
	"fmt"

	"ledger-analytics/internal/models"

	"gorm.io/gorm"
)

// LedgerRepository reads ledger entries owned by the bookkeeping service
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepositoryInterface {
	return &LedgerRepository{
		db: db,
	}
}

// GetEntries validates filters before touching the database.
func (r *LedgerRepository) GetEntries(ctx context.Context, filters models.LedgerFilters) ([]models.LedgerEntry, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Model(&models.LedgerEntry{})

	if filters.StartDate != nil {
		query = query.Where("occurred_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("occurred_at <= ?", *filters.EndDate)
	}
	if filters.Currency != "" {
		query = query.Where("currency = ?", filters.Currency)
	}
	if len(filters.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", filters.CategoryIDs)
	}

	var entries []models.LedgerEntry
	if err := query.Order("occurred_at ASC").Order("id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	return entries, nil
}

// GetCurrencies lists the distinct currencies present in the ledger
func (r *LedgerRepository) GetCurrencies(ctx context.Context) ([]string, error) {
	var currencies []string
	if err := r.db.WithContext(ctx).
		Model(&models.LedgerEntry{}).
		Distinct("currency").
		Order("currency ASC").
		Pluck("currency", &currencies).Error; err != nil {
		return nil, fmt.Errorf("failed to get ledger currencies: %w", err)
	}

	return currencies, nil
}

const ledgerBatchSize = 500

// LedgerWriter is used by the seed command only
type LedgerWriter struct {
	db *gorm.DB
}

func NewLedgerWriter(db *gorm.DB) LedgerWriterInterface {
	return &LedgerWriter{
		db: db,
	}
}

func (w *LedgerWriter) CreateBatch(ctx context.Context, entries []models.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := w.db.WithContext(ctx).CreateInBatches(entries, ledgerBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert ledger entries: %w", err)
	}
	return nil
}
