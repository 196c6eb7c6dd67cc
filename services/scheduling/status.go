package scheduling

import (
	"context"
	"fmt"

	"boilertech/models"
	"boilertech/utils"

	"go.uber.org/zap"
)

// UpdateBookingStatus sets a booking's lifecycle status. Transitions are
// unconditional: any known status may replace any other, and repeating a
// status is a no-op rewrite.
func (s *DefaultSchedulingService) UpdateBookingStatus(ctx context.Context, bookingID, status, notes string) (*models.Booking, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	booking, err := s.BookingRepo.UpdateStatus(ctx, bookingID, status, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	utils.GetLogger().Info("booking status updated",
		zap.String("bookingId", bookingID),
		zap.String("status", status))
	return booking, nil
}

// CancelBooking cancels a booking, recording the reason in its notes.
func (s *DefaultSchedulingService) CancelBooking(ctx context.Context, bookingID, reason string) (*models.Booking, error) {
	return s.UpdateBookingStatus(ctx, bookingID, models.StatusCancelled, reason)
}

// CustomerBookings lists a customer's bookings.
func (s *DefaultSchedulingService) CustomerBookings(ctx context.Context, customerID string) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
