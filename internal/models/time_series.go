package models

import "github.com/google/uuid"

// ModelKind discriminates the forecast model variants.
type ModelKind string

const (
	ModelLinear      ModelKind = "linear"
	ModelExponential ModelKind = "exponential"
	ModelSeasonal    ModelKind = "seasonal"
	ModelCategory    ModelKind = "category"
)

func (k ModelKind) IsValid() bool {
	switch k {
	case ModelLinear, ModelExponential, ModelSeasonal, ModelCategory:
		return true
	}
	return false
}

// Stream selects which numeric series of a TimeSeriesPoint is modelled.
type Stream string

const (
	StreamIncome   Stream = "income"
	StreamExpenses Stream = "expenses"
	StreamNet      Stream = "net"
)

func (s Stream) IsValid() bool {
	return s == StreamIncome || s == StreamExpenses || s == StreamNet
}

// TimeSeriesPoint is one month of income and expenses in a single currency.
// Expenses are carried as an absolute (non-negative) amount, so Net = Income - Expenses.
type TimeSeriesPoint struct {
	Period   Period  `json:"period"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
	Currency string  `json:"currency"`
}

// Value returns the selected stream of the point
func (p TimeSeriesPoint) Value(stream Stream) float64 {
	switch stream {
	case StreamIncome:
		return p.Income
	case StreamExpenses:
		return p.Expenses
	default:
		return p.Net
	}
}

// StreamValues extracts one stream from an ordered series.
func StreamValues(points []TimeSeriesPoint, stream Stream) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value(stream)
	}
	return values
}

type CategoryPoint struct {
	Period           Period  `json:"period"`
	TotalAmount      float64 `json:"total_amount"`
	TransactionCount int64   `json:"transaction_count"`
}

// CategorySeries holds one category's monthly totals in ascending period order.
type CategorySeries struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Currency   string          `json:"currency"`
	Points     []CategoryPoint `json:"points"`
}

func (s CategorySeries) Values() []float64 {
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.TotalAmount
	}
	return values
}
