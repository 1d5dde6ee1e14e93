package models

import (
	"time"

	"github.com/google/uuid"
)

type SectionStatus string

const (
	SectionAvailable   SectionStatus = "available"
	SectionPartial     SectionStatus = "partial"
	SectionUnavailable SectionStatus = "unavailable"
)

// Section wraps one upstream input of the insight payload. A missing input is
// kept as an unavailable section with a reason instead of being dropped.
type Section struct {
	Status SectionStatus `json:"status"`
	Reason string        `json:"reason,omitempty"`
	Data   interface{}   `json:"data,omitempty"`
}

func AvailableSection(data interface{}) Section {
	return Section{Status: SectionAvailable, Data: data}
}

func PartialSection(data interface{}, reason string) Section {
	return Section{Status: SectionPartial, Reason: reason, Data: data}
}

func UnavailableSection(reason string) Section {
	return Section{Status: SectionUnavailable, Reason: reason}
}

// ForecastResult is one model's forecast of one stream
type ForecastResult struct {
	Model       ModelKind            `json:"model"`
	Stream      Stream               `json:"stream"`
	Currency    string               `json:"currency"`
	StartPeriod Period               `json:"start_period"`
	Values      []float64            `json:"values"`
	Parameters  map[string]float64   `json:"parameters,omitempty"`
	PerCategory map[string][]float64 `json:"per_category,omitempty"`
	Unavailable []string             `json:"unavailable,omitempty"`
}

type CategoryTotal struct {
	CategoryID       uuid.UUID `json:"category_id"`
	Name             string    `json:"name,omitempty"`
	TotalAmount      float64   `json:"total_amount"`
	TransactionCount int64     `json:"transaction_count"`
}

// AggregatesSummary is the data of the aggregates section
type AggregatesSummary struct {
	Version        uint64                   `json:"version"`
	LastUpdated    time.Time                `json:"last_updated"`
	Monthly        []TimeSeriesPoint        `json:"monthly"`
	CategoryTotals []CategoryTotal          `json:"category_totals"`
	Anomalies      []CategoryAnomalyRow     `json:"anomalies"`
	Correlations   []CategoryCorrelationRow `json:"correlations"`
}

type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// ChartDescriptor tells the presentation layer what to draw, not how.
type ChartDescriptor struct {
	ID     string        `json:"id"`
	Type   string        `json:"type"`
	Title  string        `json:"title"`
	XAxis  []string      `json:"x_axis"`
	Series []ChartSeries `json:"series"`
}

// TableDescriptor carries display-ready cells.
type TableDescriptor struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// StructuredInsightPayload is the plain nested document handed to the
// narrative generator and the presentation layer.
type StructuredInsightPayload struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Currency    string            `json:"currency"`
	Aggregates  Section           `json:"aggregates"`
	Forecasts   Section           `json:"forecasts"`
	Risk        Section           `json:"risk"`
	Goals       Section           `json:"goals"`
	Scenarios   Section           `json:"scenarios"`
	Narrative   Section           `json:"narrative"`
	Charts      []ChartDescriptor `json:"charts"`
	Tables      []TableDescriptor `json:"tables"`
}

// GoalOutcome pairs a goal with its prediction or the reason none was produced
type GoalOutcome struct {
	Goal       Goal            `json:"goal"`
	Prediction *GoalPrediction `json:"prediction,omitempty"`
	Error      string          `json:"error,omitempty"`
}
