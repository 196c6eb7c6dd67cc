package models

// ServiceRequest is a validated standard scheduling request. Location may be
// empty, in which case the orchestrator derives it from the customer address.
type ServiceRequest struct {
	CustomerID     string   `json:"customer_id" binding:"required"`
	ServiceDate    string   `json:"service_date" binding:"required"` // "YYYY-MM-DD"
	ServiceType    string   `json:"service_type"`
	Location       string   `json:"location"`
	RequiredSkills []string `json:"required_skills"`
	Notes          string   `json:"notes"`
}

// EmergencyRequest is a validated emergency scheduling request.
type EmergencyRequest struct {
	CustomerID       string `json:"customer_id" binding:"required"`
	IssueDescription string `json:"issue_description" binding:"required"`
	UrgencyLevel     string `json:"urgency_level"`
}

// ServiceRecommendation suggests technicians and fallback dates for a
// customer's next service, with deterministic cost estimates keyed by
// technician id.
type ServiceRecommendation struct {
	RecommendedTechnicians []Technician   `json:"recommended_technicians"`
	AlternativeDates       []string       `json:"alternative_dates"`
	EstimatedCosts         map[string]int `json:"estimated_costs"`
}
