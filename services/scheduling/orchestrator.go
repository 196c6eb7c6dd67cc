package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "boilertech/database/repository/booking"
	"boilertech/models"
	"boilertech/services"
	"boilertech/services/tasks"
	"boilertech/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultLocation is used when neither the request nor the customer address
// yields a region.
const DefaultLocation = "London"

// Estimated durations in hours per service type.
var durationByServiceType = map[string]int{
	models.ServiceAnnual:        2,
	models.ServiceComprehensive: 3,
	models.ServiceEmergency:     4,
	models.ServiceRepair:        2,
	models.ServiceInstallation:  4,
	models.ServiceInspection:    1,
}

// ScheduleService runs the standard scheduling path. Rejections are returned
// in the result; only infrastructure failures surface as errors.
func (s *DefaultSchedulingService) ScheduleService(ctx context.Context, req models.ServiceRequest) (*SchedulingResult, error) {
	customer, err := s.CustomerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, req.CustomerID)
	}

	location := req.Location
	if location == "" {
		location = extractLocation(customer.Address)
	}
	serviceType := req.ServiceType
	if serviceType == "" {
		serviceType = models.ServiceAnnual
	}

	// Weather gate runs first so unsuitable dates never reach the matcher.
	recommendation, err := s.Weather.Recommend(ctx, req.ServiceDate, location, services.DefaultFlexibilityDays)
	if err != nil {
		return nil, fmt.Errorf("weather check failed: %w", err)
	}
	if !recommendation.Suitable {
		return reject(NoSuitableDate, recommendation.Reason, recommendation.AlternativeDates), nil
	}

	candidates, err := s.Matching.FindAvailable(ctx, req.ServiceDate, location, req.RequiredSkills)
	if err != nil {
		return nil, fmt.Errorf("technician matching failed: %w", err)
	}
	if len(candidates) == 0 {
		return reject(NoQualifiedTechnician,
			"No qualified technicians available for the requested date", nil), nil
	}

	booking, err := s.commitFirstFree(ctx, candidates, func(candidate models.Candidate, slot string) *models.Booking {
		return &models.Booking{
			ID:                newBookingID(),
			CustomerID:        customer.ID,
			TechnicianID:      candidate.TechnicianID,
			ServiceDate:       req.ServiceDate,
			ServiceTime:       slot,
			ServiceType:       serviceType,
			EstimatedDuration: durationByServiceType[serviceType],
			Status:            models.StatusScheduled,
			Notes:             req.Notes,
			CreatedAt:         s.now(),
		}
	}, false)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return reject(NoQualifiedTechnician,
			"All matching technicians are fully booked on the requested date", nil), nil
	}

	technician, err := s.TechnicianRepo.GetByID(ctx, booking.TechnicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to load technician: %w", err)
	}
	if technician == nil {
		return nil, fmt.Errorf("%w: %s", ErrTechnicianNotFound, booking.TechnicianID)
	}

	notified := s.Notifier.SendBookingConfirmation(ctx, customer, booking, technician).Success
	s.enqueueReminder(customer, booking)

	utils.GetLogger().Info("booking committed",
		zap.String("bookingId", booking.ID),
		zap.String("customerId", customer.ID),
		zap.String("technicianId", technician.ID),
		zap.String("date", booking.ServiceDate),
		zap.String("time", booking.ServiceTime))

	return commit(&CommittedBooking{
		Booking:          booking,
		Technician:       technician.Summary(),
		NotificationSent: notified,
	}), nil
}

// commitFirstFree walks candidates in rank order and their slots in time
// order, attempting a conditional write for each. A slot lost to a concurrent
// booking advances to the next slot; any other store failure aborts.
// includeSentinel controls whether the emergency-only pseudo-slot is bookable.
func (s *DefaultSchedulingService) commitFirstFree(ctx context.Context, candidates []models.Candidate, build func(models.Candidate, string) *models.Booking, includeSentinel bool) (*models.Booking, error) {
	for _, candidate := range candidates {
		for _, slot := range candidate.AvailableSlots {
			if slot == models.EmergencyOnly && !includeSentinel {
				continue
			}
			booking := build(candidate, slot)
			err := s.BookingRepo.Create(ctx, booking)
			if err == nil {
				return booking, nil
			}
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				continue
			}
			return nil, fmt.Errorf("failed to commit booking: %w", err)
		}
	}
	return nil, nil
}

// enqueueReminder schedules a reminder email for 09:00 the day before the
// service. Enqueue failures are logged and swallowed; the booking stands.
func (s *DefaultSchedulingService) enqueueReminder(customer *models.Customer, booking *models.Booking) {
	if s.ReminderQueue == nil {
		return
	}

	serviceDate, err := time.Parse("2006-01-02", booking.ServiceDate)
	if err != nil {
		return
	}
	fireAt := serviceDate.AddDate(0, 0, -1).Add(9 * time.Hour)
	if !fireAt.After(s.now()) {
		return
	}

	payload := models.ReminderPayload{
		ReminderID: uuid.New().String(),
		BookingID:  booking.ID,
		CustomerID: customer.ID,
		Email:      customer.Email,
		Subject:    "Upcoming boiler service reminder",
		Body: fmt.Sprintf("Hello %s,\n\nYour boiler service is scheduled for %s at %s.\n\nBoilerTech Services",
			customer.Name, booking.ServiceDate, booking.ServiceTime),
		FireDate:    fireAt.Format(time.RFC3339),
		ServiceDate: booking.ServiceDate,
	}

	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Warn("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.ReminderQueue.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("failed to enqueue reminder",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}

// extractLocation derives a region from a free-text postal address. The
// second comma-separated component is taken as the town or city.
func extractLocation(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) >= 2 {
		if region := strings.TrimSpace(parts[1]); region != "" {
			return region
		}
	}
	return DefaultLocation
}

func newBookingID() string {
	return "BK-" + strings.ToUpper(uuid.New().String()[:8])
}
