package bookingRepo

import (
	"context"
	"testing"

	"boilertech/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRejectsHeldSlot(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	first := &models.Booking{
		ID: "BK-1", CustomerID: "cust-1", TechnicianID: "T1",
		ServiceDate: "2025-03-10", ServiceTime: "09:00",
		Status: models.StatusScheduled,
	}
	require.NoError(t, repo.Create(ctx, first))

	// Same slot, different customer.
	second := &models.Booking{
		ID: "BK-2", CustomerID: "cust-2", TechnicianID: "T1",
		ServiceDate: "2025-03-10", ServiceTime: "09:00",
		Status: models.StatusScheduled,
	}
	assert.ErrorIs(t, repo.Create(ctx, second), ErrSlotTaken)

	// Another hour is fine.
	second.ServiceTime = "10:00"
	assert.NoError(t, repo.Create(ctx, second))

	// Another technician at the same hour is fine too.
	third := &models.Booking{
		ID: "BK-3", CustomerID: "cust-3", TechnicianID: "T2",
		ServiceDate: "2025-03-10", ServiceTime: "09:00",
		Status: models.StatusScheduled,
	}
	assert.NoError(t, repo.Create(ctx, third))
}

func TestCreateAllowsSlotAfterCancellation(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	booking := &models.Booking{
		ID: "BK-1", CustomerID: "cust-1", TechnicianID: "T1",
		ServiceDate: "2025-03-10", ServiceTime: "09:00",
		Status: models.StatusScheduled,
	}
	require.NoError(t, repo.Create(ctx, booking))

	// Cancelled bookings release the slot.
	_, err := repo.UpdateStatus(ctx, "BK-1", models.StatusCancelled, "customer away")
	require.NoError(t, err)

	replacement := &models.Booking{
		ID: "BK-2", CustomerID: "cust-2", TechnicianID: "T1",
		ServiceDate: "2025-03-10", ServiceTime: "09:00",
		Status: models.StatusScheduled,
	}
	assert.NoError(t, repo.Create(ctx, replacement))
}

func TestUpdateStatusAbsentBooking(t *testing.T) {
	repo := NewMemoryBookingRepo()

	booking, err := repo.UpdateStatus(context.Background(), "BK-404", models.StatusCompleted, "")
	require.NoError(t, err)
	assert.Nil(t, booking)
}
