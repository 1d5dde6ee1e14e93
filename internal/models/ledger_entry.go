package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidCurrency    = errors.New("currency must be a 3-letter ISO 4217 code")
	ErrMissingOccurredAt  = errors.New("ledger entry date is required")
	ErrZeroLedgerAmount   = errors.New("ledger entry amount must not be zero")
	ErrDescriptionTooLong = errors.New("ledger entry description too long")
)

// LedgerEntry is a dated, signed monetary movement. Positive amounts are income,
// negative amounts are expenses. The analytics engine only reads these rows.
type LedgerEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OccurredAt  time.Time       `gorm:"not null;index" json:"occurred_at"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency    string          `gorm:"type:varchar(3);not null;index" json:"currency"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// BeforeCreate hook for LedgerEntry
func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.Currency = strings.ToUpper(e.Currency)
	return e.Validate()
}

func (e *LedgerEntry) Validate() error {
	if e.OccurredAt.IsZero() {
		return ErrMissingOccurredAt
	}
	if !IsValidCurrencyCode(e.Currency) {
		return ErrInvalidCurrency
	}
	if e.Amount.IsZero() {
		return ErrZeroLedgerAmount
	}
	if len(e.Description) > 500 {
		return ErrDescriptionTooLong
	}
	return nil
}

func (e *LedgerEntry) IsIncome() bool {
	return e.Amount.IsPositive()
}

func (e *LedgerEntry) IsExpense() bool {
	return e.Amount.IsNegative()
}

// Period returns the calendar month bucket of the entry
func (e *LedgerEntry) Period() Period {
	return PeriodOf(e.OccurredAt)
}

// AmountFloat returns the signed amount as a float64 for statistical work.
func (e *LedgerEntry) AmountFloat() float64 {
	return e.Amount.InexactFloat64()
}

// IsValidCurrencyCode reports whether code looks like an ISO 4217 alpha code.
func IsValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
