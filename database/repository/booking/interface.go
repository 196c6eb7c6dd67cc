package bookingRepo

import (
	"context"
	"errors"

	"boilertech/models"
)

// ErrSlotTaken is returned by Create when an active booking already holds the
// (technician, date, time) triple.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository defines the booking store. Create is a conditional write:
// it commits only if the target slot is still free.
type BookingRepository interface {
	// Create inserts a new booking, failing with ErrSlotTaken when the slot
	// is already held by a scheduled or in-progress booking.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by id. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByCustomer retrieves all bookings for a customer.
	GetByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	// GetByTechnicianDate retrieves a technician's bookings on a date.
	GetByTechnicianDate(ctx context.Context, technicianID, date string) ([]models.Booking, error)
	// UpdateStatus sets the status (and optional notes) of a booking.
	// Returns (nil, nil) when the booking does not exist.
	UpdateStatus(ctx context.Context, id, status, notes string) (*models.Booking, error)
}
