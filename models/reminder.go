package models

// ReminderPayload is the queued payload for a service reminder email.
type ReminderPayload struct {
	ReminderID  string `json:"reminderId"`
	BookingID   string `json:"bookingId"`
	CustomerID  string `json:"customerId"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	FireDate    string `json:"fireDate"`
	ServiceDate string `json:"serviceDate"`
}
