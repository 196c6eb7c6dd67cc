package notification

import (
	"context"
	"time"

	"boilertech/models"
)

// Delivery statuses.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// Result records the outcome of a single delivery attempt. Delivery is
// best-effort: failures are reported here, never as errors.
type Result struct {
	Success   bool      `json:"success"`
	MessageID string    `json:"message_id,omitempty"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
}

// NotificationService delivers customer-facing messages.
type NotificationService interface {
	// Notify sends an arbitrary message to a recipient.
	Notify(ctx context.Context, recipient, subject, body string) Result
	// SendBookingConfirmation notifies a customer of a committed booking.
	SendBookingConfirmation(ctx context.Context, customer *models.Customer, booking *models.Booking, technician *models.Technician) Result
	// SendMaintenanceReminder notifies a customer ahead of a service date.
	SendMaintenanceReminder(ctx context.Context, customer *models.Customer, serviceDate string) Result
	// SendEmergencyNotification notifies a customer of a dispatched emergency
	// callout with an arrival estimate.
	SendEmergencyNotification(ctx context.Context, customer *models.Customer, technician *models.Technician, estimatedArrival string) Result
}
