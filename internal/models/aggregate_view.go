package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	ViewMonthlySummary       = "monthly_summary"
	ViewCategorySummary      = "category_summary"
	ViewSubcategorySummary   = "subcategory_summary"
	ViewCategoryHierarchy    = "category_hierarchy"
	ViewCategoryAnomalies    = "category_anomalies"
	ViewCategoryCorrelations = "category_correlations"
)

var (
	ErrInvalidViewFilter = errors.New("invalid view filter")
	ErrUnknownViewName   = errors.New("unknown view name")
)

// AllViewNames lists the views in the order a refresh pass builds them.
func AllViewNames() []string {
	return []string{
		ViewMonthlySummary,
		ViewCategorySummary,
		ViewSubcategorySummary,
		ViewCategoryHierarchy,
		ViewCategoryAnomalies,
		ViewCategoryCorrelations,
	}
}

func IsValidViewName(name string) bool {
	for _, v := range AllViewNames() {
		if v == name {
			return true
		}
	}
	return false
}

// ViewRow is implemented by every row type stored in an aggregate view.
// Rows without a period or currency return the zero value.
type ViewRow interface {
	RowPeriod() Period
	RowCurrency() string
	RowCategories() []uuid.UUID
}

// AggregateView is an immutable, versioned snapshot of one view's rows.
type AggregateView struct {
	Name        string    `json:"name"`
	Version     uint64    `json:"version"`
	LastUpdated time.Time `json:"last_updated"`
	Rows        []ViewRow `json:"rows"`
}

type MonthlySummaryRow struct {
	Period           Period  `json:"period"`
	Currency         string  `json:"currency"`
	Income           float64 `json:"income"`
	Expenses         float64 `json:"expenses"`
	Net              float64 `json:"net"`
	TransactionCount int64   `json:"transaction_count"`
}

func (r MonthlySummaryRow) RowPeriod() Period          { return r.Period }
func (r MonthlySummaryRow) RowCurrency() string        { return r.Currency }
func (r MonthlySummaryRow) RowCategories() []uuid.UUID { return nil }

// ToPoint converts the row into a series point
func (r MonthlySummaryRow) ToPoint() TimeSeriesPoint {
	return TimeSeriesPoint{
		Period:   r.Period,
		Income:   r.Income,
		Expenses: r.Expenses,
		Net:      r.Net,
		Currency: r.Currency,
	}
}

type CategorySummaryRow struct {
	Period           Period    `json:"period"`
	Currency         string    `json:"currency"`
	CategoryID       uuid.UUID `json:"category_id"`
	TotalAmount      float64   `json:"total_amount"`
	TransactionCount int64     `json:"transaction_count"`
	AverageAmount    float64   `json:"average_amount"`
}

func (r CategorySummaryRow) RowPeriod() Period          { return r.Period }
func (r CategorySummaryRow) RowCurrency() string        { return r.Currency }
func (r CategorySummaryRow) RowCategories() []uuid.UUID { return []uuid.UUID{r.CategoryID} }

// SubcategorySummaryRow is the roll-up of all direct sub-categories into their parent.
type SubcategorySummaryRow struct {
	Period           Period    `json:"period"`
	Currency         string    `json:"currency"`
	ParentCategoryID uuid.UUID `json:"parent_category_id"`
	TotalAmount      float64   `json:"total_amount"`
	TransactionCount int64     `json:"transaction_count"`
	SubcategoryCount int       `json:"subcategory_count"`
}

func (r SubcategorySummaryRow) RowPeriod() Period          { return r.Period }
func (r SubcategorySummaryRow) RowCurrency() string        { return r.Currency }
func (r SubcategorySummaryRow) RowCategories() []uuid.UUID { return []uuid.UUID{r.ParentCategoryID} }

// CategoryHierarchyRow is one edge of the transitive closure, including depth 0 self rows.
type CategoryHierarchyRow struct {
	AncestorID   uuid.UUID `json:"ancestor_id"`
	DescendantID uuid.UUID `json:"descendant_id"`
	Depth        int       `json:"depth"`
}

func (r CategoryHierarchyRow) RowPeriod() Period   { return Period{} }
func (r CategoryHierarchyRow) RowCurrency() string { return "" }
func (r CategoryHierarchyRow) RowCategories() []uuid.UUID {
	return []uuid.UUID{r.AncestorID, r.DescendantID}
}

type CategoryAnomalyRow struct {
	Period       Period    `json:"period"`
	Currency     string    `json:"currency"`
	CategoryID   uuid.UUID `json:"category_id"`
	TotalAmount  float64   `json:"total_amount"`
	Mean         float64   `json:"mean"`
	StdDev       float64   `json:"std_dev"`
	DeviationPct float64   `json:"deviation_pct"`
}

func (r CategoryAnomalyRow) RowPeriod() Period          { return r.Period }
func (r CategoryAnomalyRow) RowCurrency() string        { return r.Currency }
func (r CategoryAnomalyRow) RowCategories() []uuid.UUID { return []uuid.UUID{r.CategoryID} }

// CategoryCorrelationRow stores each unordered pair once, Category1ID < Category2ID.
type CategoryCorrelationRow struct {
	Currency    string    `json:"currency"`
	Category1ID uuid.UUID `json:"category1_id"`
	Category2ID uuid.UUID `json:"category2_id"`
	Correlation float64   `json:"correlation"`
	SampleSize  int       `json:"sample_size"`
}

func (r CategoryCorrelationRow) RowPeriod() Period   { return Period{} }
func (r CategoryCorrelationRow) RowCurrency() string { return r.Currency }
func (r CategoryCorrelationRow) RowCategories() []uuid.UUID {
	return []uuid.UUID{r.Category1ID, r.Category2ID}
}

// ViewFilter narrows a query against a view. Every field is optional.
type ViewFilter struct {
	Currency   string
	FromPeriod *Period
	ToPeriod   *Period
	CategoryID *uuid.UUID
	Limit      int
}

func (f ViewFilter) Validate() error {
	if f.Currency != "" && !IsValidCurrencyCode(f.Currency) {
		return fmt.Errorf("%w: %v", ErrInvalidViewFilter, ErrInvalidCurrency)
	}
	if f.FromPeriod != nil && f.ToPeriod != nil && f.ToPeriod.Before(*f.FromPeriod) {
		return fmt.Errorf("%w: period range %s..%s is inverted", ErrInvalidViewFilter, f.FromPeriod, f.ToPeriod)
	}
	if f.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrInvalidViewFilter)
	}
	return nil
}

// Matches reports whether a row satisfies the filter. Period bounds only apply
// to rows that carry a period.
func (f ViewFilter) Matches(row ViewRow) bool {
	if f.Currency != "" {
		if c := row.RowCurrency(); c != "" && c != f.Currency {
			return false
		}
	}

	if p := row.RowPeriod(); !p.IsZero() {
		if f.FromPeriod != nil && p.Before(*f.FromPeriod) {
			return false
		}
		if f.ToPeriod != nil && p.After(*f.ToPeriod) {
			return false
		}
	}

	if f.CategoryID != nil {
		found := false
		for _, id := range row.RowCategories() {
			if id == *f.CategoryID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// DecodeViewRows restores the typed rows of a persisted view payload.
func DecodeViewRows(name string, payload []byte) ([]ViewRow, error) {
	switch name {
	case ViewMonthlySummary:
		return decodeRows[MonthlySummaryRow](payload)
	case ViewCategorySummary:
		return decodeRows[CategorySummaryRow](payload)
	case ViewSubcategorySummary:
		return decodeRows[SubcategorySummaryRow](payload)
	case ViewCategoryHierarchy:
		return decodeRows[CategoryHierarchyRow](payload)
	case ViewCategoryAnomalies:
		return decodeRows[CategoryAnomalyRow](payload)
	case ViewCategoryCorrelations:
		return decodeRows[CategoryCorrelationRow](payload)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownViewName, name)
	}
}

func decodeRows[T ViewRow](payload []byte) ([]ViewRow, error) {
	var typed []T
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &typed); err != nil {
			return nil, fmt.Errorf("failed to decode view rows: %w", err)
		}
	}
	rows := make([]ViewRow, len(typed))
	for i := range typed {
		rows[i] = typed[i]
	}
	return rows, nil
}

// ViewRefreshStat describes one view produced by a refresh pass
type ViewRefreshStat struct {
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	DurationMs int64  `json:"duration_ms"`
}

// RefreshReport is returned by every refresh attempt, successful or not.
type RefreshReport struct {
	AsOf                  time.Time         `json:"as_of"`
	Version               uint64            `json:"version"`
	PreviousVersion       uint64            `json:"previous_version"`
	Succeeded             bool              `json:"succeeded"`
	PreviousStateRetained bool              `json:"previous_state_retained"`
	FailedView            string            `json:"failed_view,omitempty"`
	Error                 string            `json:"error,omitempty"`
	LedgerRows            int               `json:"ledger_rows"`
	Views                 []ViewRefreshStat `json:"views"`
	DurationMs            int64             `json:"duration_ms"`
}
