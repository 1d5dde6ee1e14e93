package models

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// RiskFactors are the inputs of a risk score. Volatility and RecentChangePct are
// percentages; TrendStrength is the slope relative to the mean magnitude.
type RiskFactors struct {
	Volatility      float64 `json:"volatility"`
	TrendStrength   float64 `json:"trend_strength"`
	RecentChangePct float64 `json:"recent_change_pct"`
	StdDev          float64 `json:"std_dev"`
	Mean            float64 `json:"mean"`
}

type RiskAssessment struct {
	Score   float64     `json:"score"`
	Level   RiskLevel   `json:"level"`
	Factors RiskFactors `json:"factors"`
}

// StreamAssessment is the risk of one stream, or the reason it could not be computed
type StreamAssessment struct {
	Assessment  *RiskAssessment `json:"assessment,omitempty"`
	Unavailable string          `json:"unavailable,omitempty"`
}

func (s StreamAssessment) Available() bool {
	return s.Assessment != nil
}

// StreamRisk groups the risk of the income, expense and savings streams.
type StreamRisk struct {
	Income   StreamAssessment `json:"income"`
	Expenses StreamAssessment `json:"expenses"`
	Savings  StreamAssessment `json:"savings"`
}

// AverageScore is the mean score of the available streams. ok is false when none is available.
func (r StreamRisk) AverageScore() (avg float64, ok bool) {
	var sum float64
	var n int
	for _, s := range []StreamAssessment{r.Income, r.Expenses, r.Savings} {
		if s.Available() {
			sum += s.Assessment.Score
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
