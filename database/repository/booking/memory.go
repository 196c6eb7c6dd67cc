package bookingRepo

import (
	"context"
	"sync"

	"boilertech/models"
)

// MemoryBookingRepo is an in-memory BookingRepository used by tests and local
// demo runs. It enforces the same slot-uniqueness rule as the Mongo
// implementation.
type MemoryBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

// NewMemoryBookingRepo creates an empty in-memory booking store.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{}
}

func (r *MemoryBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.TechnicianID == booking.TechnicianID &&
			b.ServiceDate == booking.ServiceDate &&
			b.ServiceTime == booking.ServiceTime &&
			(b.Status == models.StatusScheduled || b.Status == models.StatusInProgress) {
			return ErrSlotTaken
		}
	}
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *MemoryBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			booking := b
			return &booking, nil
		}
	}
	return nil, nil
}

func (r *MemoryBookingRepo) GetByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) GetByTechnicianDate(ctx context.Context, technicianID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.TechnicianID == technicianID && b.ServiceDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) UpdateStatus(ctx context.Context, id, status, notes string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			if notes != "" {
				r.bookings[i].Notes = notes
			}
			booking := r.bookings[i]
			return &booking, nil
		}
	}
	return nil, nil
}
