package dto

import (
	"time"

	"ledger-analytics/internal/models"
)

// ViewQueryParams filters the rows of one aggregate view
type ViewQueryParams struct {
	Currency   string `query:"currency" validate:"omitempty,currency"`
	From       string `query:"from" validate:"omitempty,period"`
	To         string `query:"to" validate:"omitempty,period"`
	CategoryID string `query:"category_id" validate:"omitempty,uuid"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// ViewResponse is one aggregate view after filtering
type ViewResponse struct {
	Name        string           `json:"name"`
	Version     uint64           `json:"version"`
	LastUpdated time.Time        `json:"last_updated"`
	Count       int              `json:"count"`
	Rows        []models.ViewRow `json:"rows"`
}

// ForecastQueryParams selects a model, a stream and a horizon. Empty values take service defaults.
type ForecastQueryParams struct {
	Model    string `query:"model" validate:"omitempty,model_kind"`
	Stream   string `query:"stream" validate:"omitempty,stream"`
	Currency string `query:"currency" validate:"omitempty,currency"`
	Horizon  int    `query:"horizon" validate:"omitempty,min=1"`
}

// ForecastListResponse carries every model's forecast and the models that could not run
type ForecastListResponse struct {
	Forecasts   []models.ForecastResult `json:"forecasts"`
	Unavailable []string                `json:"unavailable,omitempty"`
}

// CurrencyQueryParams is shared by the endpoints that only take a currency
type CurrencyQueryParams struct {
	Currency string `query:"currency" validate:"omitempty,currency"`
}

// RiskResponse is the risk of each stream of one currency
type RiskResponse struct {
	Currency string            `json:"currency"`
	Months   int               `json:"months"`
	Risk     models.StreamRisk `json:"risk"`
}

// GoalPredictionRequest describes an ad hoc goal to predict without storing it
type GoalPredictionRequest struct {
	Name          string    `json:"name" validate:"omitempty,max=100"`
	TargetAmount  float64   `json:"target_amount" validate:"positive_amount"`
	CurrentAmount float64   `json:"current_amount" validate:"gte=0"`
	TargetDate    time.Time `json:"target_date" validate:"required"`
	Currency      string    `json:"currency" validate:"omitempty,currency"`
}

// GoalOutcomesResponse lists the prediction of every stored goal
type GoalOutcomesResponse struct {
	Goals []models.GoalOutcome `json:"goals"`
}

// InsightQueryParams controls insight generation
type InsightQueryParams struct {
	Currency  string `query:"currency" validate:"omitempty,currency"`
	Narrative bool   `query:"narrative"`
}

// RefreshResponse reports the outcome of a manual refresh
type RefreshResponse struct {
	Report *models.RefreshReport `json:"report"`
}
