package scheduling

import (
	"context"
	"fmt"

	"boilertech/models"
	"boilertech/utils"

	"go.uber.org/zap"
)

// ScheduleEmergency runs the emergency path: specialist lookup in the
// customer's area, then a today/tomorrow cascade over the specialists'
// availability. The emergency-only pseudo-slot is bookable at this tier.
func (s *DefaultSchedulingService) ScheduleEmergency(ctx context.Context, req models.EmergencyRequest) (*SchedulingResult, error) {
	customer, err := s.CustomerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, req.CustomerID)
	}

	location := extractLocation(customer.Address)

	specialists, err := s.Matching.EmergencyTechnicians(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("specialist lookup failed: %w", err)
	}
	if len(specialists) == 0 {
		return reject(NoQualifiedTechnician,
			"No emergency specialists available in your area", nil), nil
	}

	today := s.now().Format("2006-01-02")
	tomorrow := s.now().AddDate(0, 0, 1).Format("2006-01-02")

	for _, date := range []string{today, tomorrow} {
		candidates := s.emergencyCandidates(specialists, date)
		booking, err := s.commitFirstFree(ctx, candidates, func(candidate models.Candidate, slot string) *models.Booking {
			return &models.Booking{
				ID:                newBookingID(),
				CustomerID:        customer.ID,
				TechnicianID:      candidate.TechnicianID,
				ServiceDate:       date,
				ServiceTime:       slot,
				ServiceType:       models.ServiceEmergency,
				EstimatedDuration: durationByServiceType[models.ServiceEmergency],
				Status:            models.StatusScheduled,
				Notes:             req.IssueDescription,
				CreatedAt:         s.now(),
			}
		}, true)
		if err != nil {
			return nil, err
		}
		if booking == nil {
			continue
		}

		technician, err := s.TechnicianRepo.GetByID(ctx, booking.TechnicianID)
		if err != nil {
			return nil, fmt.Errorf("failed to load technician: %w", err)
		}
		if technician == nil {
			return nil, fmt.Errorf("%w: %s", ErrTechnicianNotFound, booking.TechnicianID)
		}

		arrival := fmt.Sprintf("%s at %s", booking.ServiceDate, booking.ServiceTime)
		notified := s.Notifier.SendEmergencyNotification(ctx, customer, technician, arrival).Success

		utils.GetLogger().Info("emergency booking committed",
			zap.String("bookingId", booking.ID),
			zap.String("customerId", customer.ID),
			zap.String("technicianId", technician.ID),
			zap.String("arrival", arrival),
			zap.String("urgency", req.UrgencyLevel))

		return commit(&CommittedBooking{
			Booking:          booking,
			Technician:       technician.Summary(),
			NotificationSent: notified,
			EstimatedArrival: arrival,
		}), nil
	}

	return reject(NoEmergencySlot,
		"No emergency slots available today or tomorrow", nil), nil
}

// emergencyCandidates projects specialists onto a date using their general
// availability template. Specialists arrive rating-sorted from the matcher
// and keep that order.
func (s *DefaultSchedulingService) emergencyCandidates(specialists []models.Technician, date string) []models.Candidate {
	var candidates []models.Candidate
	for _, tech := range specialists {
		slots := s.Availability.SlotsFor(tech, date)
		if len(slots) == 0 {
			continue
		}
		candidates = append(candidates, models.Candidate{
			TechnicianID:   tech.ID,
			Date:           date,
			AvailableSlots: slots,
			Location:       tech.Location,
			Skills:         tech.Skills,
			Rating:         tech.Rating,
		})
	}
	return candidates
}
