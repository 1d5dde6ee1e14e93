package repositories

import (
	"context"
	"errors"
	"fmt"

	"ledger-analytics/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &GoalRepository{
		db: db,
	}
}

// GetByID returns ErrGoalNotFound when no goal has the id.
func (r *GoalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GoalDefinition, error) {
	var goal models.GoalDefinition
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal by ID: %w", err)
	}

	return &goal, nil
}

func (r *GoalRepository) List(ctx context.Context) ([]models.GoalDefinition, error) {
	var goals []models.GoalDefinition
	if err := r.db.WithContext(ctx).Order("target_date ASC").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	return goals, nil
}
