package repositories

import (
	"context"
	"fmt"

	"ledger-analytics/internal/models"

	"gorm.io/gorm"
)

type ViewSnapshotRepository struct {
	db *gorm.DB
}

func NewViewSnapshotRepository(db *gorm.DB) ViewSnapshotRepositoryInterface {
	return &ViewSnapshotRepository{
		db: db,
	}
}

// ReplaceAll deletes every stored view and inserts records. Either all records
// are stored or the previous snapshot is left untouched.
func (r *ViewSnapshotRepository) ReplaceAll(ctx context.Context, records []models.ViewSnapshotRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ViewSnapshotRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear view snapshots: %w", err)
		}

		for i := range records {
			if err := tx.Create(&records[i]).Error; err != nil {
				return fmt.Errorf("failed to store view snapshot %s: %w", records[i].Name, err)
			}
		}

		return nil
	})
}

func (r *ViewSnapshotRepository) LoadAll(ctx context.Context) ([]models.ViewSnapshotRecord, error) {
	var records []models.ViewSnapshotRecord
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load view snapshots: %w", err)
	}

	return records, nil
}
