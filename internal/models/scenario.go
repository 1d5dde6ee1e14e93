package models

type ScenarioLabel string

const (
	ScenarioOptimistic  ScenarioLabel = "optimistic"
	ScenarioRealistic   ScenarioLabel = "realistic"
	ScenarioPessimistic ScenarioLabel = "pessimistic"
)

type ScenarioPredictions struct {
	Income   []float64 `json:"income"`
	Expenses []float64 `json:"expenses"`
	Savings  []float64 `json:"savings"`
}

// ScenarioRiskFactors are stream risk scores scaled for the scenario, 0-100.
type ScenarioRiskFactors struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

type Scenario struct {
	Label       ScenarioLabel       `json:"label"`
	Factor      float64             `json:"factor"`
	StartPeriod Period              `json:"start_period"`
	Predictions ScenarioPredictions `json:"predictions"`
	RiskFactors ScenarioRiskFactors `json:"risk_factors"`
}

// ScenarioSet is the output of one scenario generation.
type ScenarioSet struct {
	Optimistic  Scenario    `json:"optimistic"`
	Realistic   Scenario    `json:"realistic"`
	Pessimistic Scenario    `json:"pessimistic"`
	Horizon     int         `json:"horizon"`
	ModelsUsed  []ModelKind `json:"models_used"`
	// Unavailable names streams or models that were left out, keyed by stream.
	Unavailable map[string][]ModelKind `json:"unavailable,omitempty"`
}

func (s ScenarioSet) All() []Scenario {
	return []Scenario{s.Optimistic, s.Realistic, s.Pessimistic}
}
