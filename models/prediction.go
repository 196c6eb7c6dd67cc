package models

// Risk levels reported by the prediction signal.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// MaintenancePrediction is the deterministic maintenance outlook for a
// customer's boiler.
type MaintenancePrediction struct {
	CustomerID         string   `json:"customer_id"`
	NextServiceOptimal string   `json:"next_service_optimal"`
	RiskLevel          string   `json:"risk_level"`
	RecommendedActions []string `json:"recommended_actions"`
	ConfidenceScore    float64  `json:"confidence_score"`
	EstimatedCost      int      `json:"estimated_cost"`
}

// FailurePrediction estimates the probability of a breakdown before the next
// scheduled service.
type FailurePrediction struct {
	CustomerID         string   `json:"customer_id"`
	FailureProbability float64  `json:"failure_probability"`
	RiskFactors        []string `json:"risk_factors"`
	PreventionScore    int      `json:"prevention_score"` // percent
}

// EfficiencyAnalysis describes the efficiency trajectory of an installation.
type EfficiencyAnalysis struct {
	CustomerID        string   `json:"customer_id"`
	CurrentEfficiency string   `json:"current_efficiency"`
	EfficiencyTrend   string   `json:"efficiency_trend"` // "improving", "stable" or "declining"
	Recommendations   []string `json:"recommendations"`
}

// PredictiveSchedule is the recommended next service derived from the
// prediction rules.
type PredictiveSchedule struct {
	CustomerID      string   `json:"customer_id"`
	NextServiceDate string   `json:"next_service_date"`
	ServiceType     string   `json:"service_type"`
	Priority        string   `json:"priority"`
	RequiredParts   []string `json:"required_parts"`
}
