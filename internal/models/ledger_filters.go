package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidLedgerFilter = errors.New("invalid ledger filter")

// LedgerFilters is the complete set of criteria the ledger accessor accepts.
// Zero values mean "no constraint".
type LedgerFilters struct {
	StartDate   *time.Time
	EndDate     *time.Time
	Currency    string
	CategoryIDs []uuid.UUID
}

func (f LedgerFilters) Validate() error {
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
		return fmt.Errorf("%w: end date %s is before start date %s",
			ErrInvalidLedgerFilter, f.EndDate.Format(time.RFC3339), f.StartDate.Format(time.RFC3339))
	}
	if f.Currency != "" && !IsValidCurrencyCode(f.Currency) {
		return fmt.Errorf("%w: %v", ErrInvalidLedgerFilter, ErrInvalidCurrency)
	}
	for _, id := range f.CategoryIDs {
		if id == uuid.Nil {
			return fmt.Errorf("%w: nil category id", ErrInvalidLedgerFilter)
		}
	}
	return nil
}

// UpTo returns filters selecting every entry on or before asOf.
func UpTo(asOf time.Time) LedgerFilters {
	end := asOf
	return LedgerFilters{EndDate: &end}
}
