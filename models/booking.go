package models

import "time"

// Booking statuses. Completed and cancelled are conventionally terminal.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Service types.
const (
	ServiceAnnual        = "annual_service"
	ServiceComprehensive = "comprehensive_service"
	ServiceEmergency     = "emergency_service"
	ServiceRepair        = "repair"
	ServiceInstallation  = "installation"
	ServiceInspection    = "inspection"
)

// Booking represents a committed service appointment.
type Booking struct {
	ID                string    `bson:"id" json:"booking_id"`
	CustomerID        string    `bson:"customer_id" json:"customer_id"`
	TechnicianID      string    `bson:"technician_id" json:"technician_id"`
	ServiceDate       string    `bson:"service_date" json:"service_date"` // "YYYY-MM-DD"
	ServiceTime       string    `bson:"service_time" json:"service_time"` // "HH:MM", or the emergency-only sentinel
	ServiceType       string    `bson:"service_type" json:"service_type"`
	EstimatedDuration int       `bson:"estimated_duration" json:"estimated_duration"` // hours
	Status            string    `bson:"status" json:"status"`
	Notes             string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
