package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var ErrEmptySnapshotName = errors.New("snapshot view name is required")

// JSONPayload is a raw JSON document stored in a text/jsonb column
type JSONPayload []byte

// Value implements driver.Valuer interface
func (p JSONPayload) Value() (driver.Value, error) {
	if len(p) == 0 {
		return "[]", nil
	}
	if !json.Valid(p) {
		return nil, errors.New("payload is not valid JSON")
	}
	// Return string for SQLite compatibility
	return string(p), nil
}

func (p *JSONPayload) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = nil
	case []byte:
		*p = append((*p)[:0], v...)
	case string:
		*p = JSONPayload(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONPayload", value)
	}
	return nil
}

func (p JSONPayload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}

// ViewSnapshotRecord persists the last consistent version of one aggregate view
// so a restarted process can serve queries before its first refresh.
type ViewSnapshotRecord struct {
	Name        string      `gorm:"type:varchar(64);primary_key" json:"name"`
	Version     uint64      `gorm:"not null" json:"version"`
	LastUpdated time.Time   `gorm:"not null" json:"last_updated"`
	RowCount    int         `gorm:"not null" json:"row_count"`
	Payload     JSONPayload `gorm:"type:text" json:"payload"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
}

func (ViewSnapshotRecord) TableName() string {
	return "view_snapshots"
}

// BeforeCreate hook for ViewSnapshotRecord
func (r *ViewSnapshotRecord) BeforeCreate(tx *gorm.DB) error {
	if r.Name == "" {
		return ErrEmptySnapshotName
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	return nil
}

// NewViewSnapshotRecord serializes a view for persistence.
func NewViewSnapshotRecord(view AggregateView) (ViewSnapshotRecord, error) {
	rows := view.Rows
	if rows == nil {
		rows = []ViewRow{}
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return ViewSnapshotRecord{}, fmt.Errorf("failed to encode view %s: %w", view.Name, err)
	}
	return ViewSnapshotRecord{
		Name:        view.Name,
		Version:     view.Version,
		LastUpdated: view.LastUpdated,
		RowCount:    len(view.Rows),
		Payload:     payload,
	}, nil
}

// ToView decodes the record back into a typed view.
func (r ViewSnapshotRecord) ToView() (AggregateView, error) {
	rows, err := DecodeViewRows(r.Name, r.Payload)
	if err != nil {
		return AggregateView{}, err
	}
	return AggregateView{
		Name:        r.Name,
		Version:     r.Version,
		LastUpdated: r.LastUpdated,
		Rows:        rows,
	}, nil
}
