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
	ErrGoalNameRequired      = errors.New("goal name is required")
	ErrGoalTargetNotPositive = errors.New("goal target amount must be positive")
	ErrGoalCurrentNegative   = errors.New("goal current amount must not be negative")
	ErrGoalDateRequired      = errors.New("goal target date is required")
)

const (
	GoalStatusOnTrack  = "on_track"
	GoalStatusOffTrack = "off_track"
)

// GoalDefinition is a persisted savings goal owned by the goal store.
type GoalDefinition struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_amount"`
	TargetDate    time.Time       `gorm:"not null" json:"target_date"`
	Currency      string          `gorm:"type:varchar(3);not null" json:"currency"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (GoalDefinition) TableName() string {
	return "goals"
}

// BeforeCreate hook for GoalDefinition
func (g *GoalDefinition) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}
	g.Currency = strings.ToUpper(g.Currency)
	return g.Validate()
}

func (g *GoalDefinition) Validate() error {
	if g.Name == "" {
		return ErrGoalNameRequired
	}
	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}
	if g.CurrentAmount.IsNegative() {
		return ErrGoalCurrentNegative
	}
	if g.TargetDate.IsZero() {
		return ErrGoalDateRequired
	}
	if !IsValidCurrencyCode(g.Currency) {
		return ErrInvalidCurrency
	}
	return nil
}

// ToGoal converts the stored definition into the value the predictor works on.
func (g *GoalDefinition) ToGoal() Goal {
	return Goal{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.InexactFloat64(),
		CurrentAmount: g.CurrentAmount.InexactFloat64(),
		TargetDate:    g.TargetDate,
		Currency:      g.Currency,
	}
}

// Goal is the numeric view of a goal used for prediction.
type Goal struct {
	ID            uuid.UUID `json:"id,omitempty"`
	Name          string    `json:"name,omitempty"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	TargetDate    time.Time `json:"target_date"`
	Currency      string    `json:"currency,omitempty"`
}

func (g Goal) Shortfall() float64 {
	if g.CurrentAmount >= g.TargetAmount {
		return 0
	}
	return g.TargetAmount - g.CurrentAmount
}

// GoalPrediction is derived on demand and never persisted.
type GoalPrediction struct {
	GoalID            uuid.UUID   `json:"goal_id,omitempty"`
	PredictedAmount   float64     `json:"predicted_amount"`
	Confidence        float64     `json:"confidence"`
	MonthsRemaining   int         `json:"months_remaining"`
	MonthlyRequired   float64     `json:"monthly_required"`
	MonthlyPredicted  float64     `json:"monthly_predicted"`
	Status            string      `json:"status"`
	Expired           bool        `json:"expired"`
	ModelsUsed        []ModelKind `json:"models_used"`
	ModelsUnavailable []ModelKind `json:"models_unavailable,omitempty"`
}

func (p GoalPrediction) IsOnTrack() bool {
	return p.Status == GoalStatusOnTrack
}

// Partial reports whether at least one model was dropped from the ensemble.
func (p GoalPrediction) Partial() bool {
	return len(p.ModelsUnavailable) > 0
}
