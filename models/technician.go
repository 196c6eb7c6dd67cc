package models

// EmergencyOnly is the availability sentinel for days on which a technician
// takes emergency callouts only. It is returned as a pseudo-slot and is not
// a bookable clock time outside the emergency tier.
const EmergencyOnly = "emergency_only"

// DayWindow is one entry of a technician's weekly availability template:
// either a working interval [Start, End) in "HH:MM" or the emergency-only
// sentinel.
type DayWindow struct {
	Start         string `bson:"start,omitempty" json:"start,omitempty"`
	End           string `bson:"end,omitempty" json:"end,omitempty"`
	EmergencyOnly bool   `bson:"emergency_only,omitempty" json:"emergency_only,omitempty"`
}

// Technician represents a field engineer on the roster. Immutable during a
// scheduling decision; roster management happens out of band.
type Technician struct {
	ID              string               `bson:"id" json:"id"`
	Name            string               `bson:"name" json:"name"`
	Email           string               `bson:"email" json:"email"`
	Phone           string               `bson:"phone" json:"phone"`
	Skills          []string             `bson:"skills" json:"skills"`
	Availability    map[string]DayWindow `bson:"availability" json:"availability"` // keyed by lowercase weekday name
	Location        string               `bson:"location" json:"location"`         // free-text region
	ExperienceYears int                  `bson:"experience_years" json:"experience_years"`
	Rating          float64              `bson:"rating" json:"rating"` // 0-5
	Specializations []string             `bson:"specializations" json:"specializations"`
}

// TechnicianSummary is the reduced technician view attached to a committed
// scheduling result.
type TechnicianSummary struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Rating float64  `json:"rating"`
	Skills []string `json:"skills"`
}

// Summary reduces a technician to the fields reported with a booking.
func (t Technician) Summary() TechnicianSummary {
	return TechnicianSummary{ID: t.ID, Name: t.Name, Rating: t.Rating, Skills: t.Skills}
}

// Candidate is a technician who passed location, skill and availability
// filtering for a given date, together with the bookable slots of that date.
type Candidate struct {
	TechnicianID   string   `json:"technician_id"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"available_slots"`
	Location       string   `json:"location"`
	Skills         []string `json:"skills"`
	Rating         float64  `json:"rating"`
}

// TechnicianSchedule is a technician's day sheet.
type TechnicianSchedule struct {
	TechnicianID     string    `json:"technician_id"`
	Date             string    `json:"date"`
	Bookings         []Booking `json:"bookings"`
	AvailableHours   []string  `json:"available_hours"`
	TotalBookedHours int       `json:"total_booked_hours"`
}

// TechnicianPerformance carries deterministic performance metrics derived
// from the roster record.
type TechnicianPerformance struct {
	TechnicianID         string   `json:"technician_id"`
	TotalServices        int      `json:"total_services"`
	AverageRating        float64  `json:"average_rating"`
	CompletionRate       int      `json:"completion_rate"`       // percent
	CustomerSatisfaction int      `json:"customer_satisfaction"` // percent
	Specializations      []string `json:"specializations"`
}
