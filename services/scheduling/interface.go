package scheduling

import (
	"context"
	"time"

	bookingRepo "boilertech/database/repository/booking"
	customerRepo "boilertech/database/repository/customer"
	technicianRepo "boilertech/database/repository/technician"
	"boilertech/models"
	"boilertech/services"
	"boilertech/services/notification"

	"github.com/hibiken/asynq"
)

// SchedulingService is the booking orchestrator: it turns validated requests
// into committed bookings or typed rejections.
type SchedulingService interface {
	// ScheduleService runs the standard scheduling path: weather gate,
	// candidate matching, slot commit, confirmation.
	ScheduleService(ctx context.Context, req models.ServiceRequest) (*SchedulingResult, error)
	// ScheduleEmergency runs the emergency path: specialist lookup, then a
	// today/tomorrow cascade with a fixed four hour callout window.
	ScheduleEmergency(ctx context.Context, req models.EmergencyRequest) (*SchedulingResult, error)
	// Recommend suggests technicians, fallback dates and deterministic cost
	// estimates for a customer's next service.
	Recommend(ctx context.Context, customerID, serviceType string) (*models.ServiceRecommendation, error)
	// UpdateBookingStatus sets a booking's lifecycle status.
	UpdateBookingStatus(ctx context.Context, bookingID, status, notes string) (*models.Booking, error)
	// CancelBooking is UpdateBookingStatus to cancelled.
	CancelBooking(ctx context.Context, bookingID, reason string) (*models.Booking, error)
	// TechnicianSchedule builds a technician's day sheet.
	TechnicianSchedule(ctx context.Context, technicianID, date string) (*models.TechnicianSchedule, error)
	// TechnicianPerformance derives performance metrics from the roster record.
	TechnicianPerformance(ctx context.Context, technicianID string) (*models.TechnicianPerformance, error)
	// CustomerBookings lists a customer's bookings.
	CustomerBookings(ctx context.Context, customerID string) ([]models.Booking, error)
}

// DefaultSchedulingService wires the repositories and collaborating services
// behind the orchestrator.
type DefaultSchedulingService struct {
	CustomerRepo   customerRepo.CustomerRepository
	TechnicianRepo technicianRepo.TechnicianRepository
	BookingRepo    bookingRepo.BookingRepository

	Matching     services.MatchingService
	Weather      services.WeatherService
	Availability services.AvailabilityService
	Notifier     notification.NotificationService

	// ReminderQueue enqueues service reminders; nil disables them.
	ReminderQueue *asynq.Client

	// Now is the clock for date arithmetic. nil means time.Now.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
