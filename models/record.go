package models

// ServiceRecord is one entry of a customer's service history.
type ServiceRecord struct {
	Date       string `bson:"date" json:"date"`
	Type       string `bson:"type" json:"type"`
	Technician string `bson:"technician" json:"technician"`
	Notes      string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// MaintenanceRecord is the per-customer maintenance baseline consumed by the
// prediction rules.
type MaintenanceRecord struct {
	CustomerID     string          `bson:"customer_id" json:"customer_id"`
	LastService    string          `bson:"last_service" json:"last_service"` // "YYYY-MM-DD"
	NextService    string          `bson:"next_service" json:"next_service"`
	Status         string          `bson:"status" json:"status"` // "scheduled", "overdue" or "completed"
	RiskLevel      string          `bson:"risk_level" json:"risk_level"`
	ServiceHistory []ServiceRecord `bson:"service_history" json:"service_history"`
}
