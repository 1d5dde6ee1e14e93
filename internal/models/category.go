package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategorySelfParent   = errors.New("category cannot be its own parent")
)

// Category groups ledger entries. ParentID links a sub-category to its parent.
type Category struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return c.Validate()
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrCategoryNameRequired
	}
	if c.ParentID != nil && *c.ParentID == c.ID {
		return ErrCategorySelfParent
	}
	return nil
}

func (c *Category) HasParent() bool {
	return c.ParentID != nil && *c.ParentID != uuid.Nil
}
