package scheduling

import "boilertech/models"

// Rejection codes. A rejection is a domain outcome, not a failure: the
// orchestrator ran to completion and determined that no booking can be made.
const (
	NoSuitableDate        = "NO_SUITABLE_DATE"
	NoQualifiedTechnician = "NO_QUALIFIED_TECHNICIAN"
	NoEmergencySlot       = "NO_EMERGENCY_SLOT"
)

// Rejection explains why scheduling did not commit, with fallback dates where
// the cascade produced any.
type Rejection struct {
	Code             string   `json:"code"`
	Reason           string   `json:"reason"`
	AlternativeDates []string `json:"alternative_dates,omitempty"`
}

// CommittedBooking is the success arm of a scheduling decision.
type CommittedBooking struct {
	Booking          *models.Booking          `json:"booking"`
	Technician       models.TechnicianSummary `json:"technician"`
	NotificationSent bool                     `json:"notification_sent"`
	EstimatedArrival string                   `json:"estimated_arrival,omitempty"` // emergency callouts only
}

// SchedulingResult is a tagged outcome: exactly one of Committed or Rejected
// is set when the orchestrator returns without error.
type SchedulingResult struct {
	Committed *CommittedBooking `json:"committed,omitempty"`
	Rejected  *Rejection        `json:"rejected,omitempty"`
}

func commit(c *CommittedBooking) *SchedulingResult {
	return &SchedulingResult{Committed: c}
}

func reject(code, reason string, alternatives []string) *SchedulingResult {
	return &SchedulingResult{Rejected: &Rejection{Code: code, Reason: reason, AlternativeDates: alternatives}}
}
