package scheduling

import (
	"context"
	"testing"

	"boilertech/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The clock in these tests is pinned to Monday 2025-03-10 08:00.

func TestScheduleEmergencyBooksToday(t *testing.T) {
	f := newFixture(t, londonTechnicians(), nil)

	result, err := f.svc.ScheduleEmergency(context.Background(), models.EmergencyRequest{
		CustomerID:       "cust-1",
		IssueDescription: "No heating, boiler leaking",
		UrgencyLevel:     "high",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Committed)

	booking := result.Committed.Booking
	assert.Equal(t, "T1", booking.TechnicianID)
	assert.Equal(t, "2025-03-10", booking.ServiceDate)
	assert.Equal(t, "09:00", booking.ServiceTime)
	assert.Equal(t, models.ServiceEmergency, booking.ServiceType)
	assert.Equal(t, 4, booking.EstimatedDuration)
	assert.Equal(t, "No heating, boiler leaking", booking.Notes)

	assert.Equal(t, "2025-03-10 at 09:00", result.Committed.EstimatedArrival)
	assert.Equal(t, 1, f.notifier.emergencies)
	assert.Equal(t, "2025-03-10 at 09:00", f.notifier.lastArrival)
}

func TestScheduleEmergencyFallsBackToTomorrow(t *testing.T) {
	// The specialist only works Tuesdays, so today (Monday) yields nothing.
	techs := []models.Technician{{
		ID: "T5", Name: "Aisha", Location: "London",
		Availability:    map[string]models.DayWindow{"tuesday": {Start: "08:00", End: "10:00"}},
		Rating:          4.6,
		Specializations: []string{"emergency repairs"},
	}}
	f := newFixture(t, techs, nil)

	result, err := f.svc.ScheduleEmergency(context.Background(), models.EmergencyRequest{
		CustomerID:       "cust-1",
		IssueDescription: "Pilot light out",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Committed)
	assert.Equal(t, "2025-03-11", result.Committed.Booking.ServiceDate)
	assert.Equal(t, "08:00", result.Committed.Booking.ServiceTime)
	assert.Equal(t, "2025-03-11 at 08:00", result.Committed.EstimatedArrival)
}

func TestScheduleEmergencyBooksTheSentinelSlot(t *testing.T) {
	// Monday is emergency-only cover for this specialist. The sentinel is a
	// bookable pseudo-slot at the emergency tier.
	techs := []models.Technician{{
		ID: "T6", Name: "Marcus", Location: "London",
		Availability:    map[string]models.DayWindow{"monday": {EmergencyOnly: true}},
		Rating:          4.9,
		Specializations: []string{"emergency repairs"},
	}}
	f := newFixture(t, techs, nil)

	result, err := f.svc.ScheduleEmergency(context.Background(), models.EmergencyRequest{
		CustomerID:       "cust-1",
		IssueDescription: "Carbon monoxide alarm triggered",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Committed)
	assert.Equal(t, models.EmergencyOnly, result.Committed.Booking.ServiceTime)
}

func TestScheduleEmergencyNoSpecialists(t *testing.T) {
	techs := []models.Technician{{
		ID: "T2", Name: "Sarah", Location: "London",
		Availability:    weekdayWindow("09:00", "17:00"),
		Rating:          4.2,
		Specializations: []string{"annual servicing"},
	}}
	f := newFixture(t, techs, nil)

	result, err := f.svc.ScheduleEmergency(context.Background(), models.EmergencyRequest{
		CustomerID:       "cust-1",
		IssueDescription: "Strange noise",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Rejected)
	assert.Equal(t, NoQualifiedTechnician, result.Rejected.Code)
}

func TestScheduleEmergencyNoSlotEitherDay(t *testing.T) {
	// Weekend-only specialist: neither Monday nor Tuesday has cover.
	techs := []models.Technician{{
		ID: "T7", Name: "Ben", Location: "London",
		Availability:    map[string]models.DayWindow{"saturday": {Start: "08:00", End: "12:00"}},
		Rating:          4.4,
		Specializations: []string{"emergency repairs"},
	}}
	f := newFixture(t, techs, nil)

	result, err := f.svc.ScheduleEmergency(context.Background(), models.EmergencyRequest{
		CustomerID:       "cust-1",
		IssueDescription: "Radiators cold",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Rejected)
	assert.Equal(t, NoEmergencySlot, result.Rejected.Code)
}

func TestScheduleEmergencyPrefersHighestRatedSpecialist(t *testing.T) {
	techs := append(londonTechnicians(), models.Technician{
		ID: "T8", Name: "Grace", Location: "London",
		Availability:    weekdayWindow("08:00", "18:00"),
		Rating:          4.95,
		Specializations: []string{"emergency repairs"},
	})
	f := newFixture(t, techs, nil)

	result, err := f.svc.ScheduleEmergency(context.Background(), models.EmergencyRequest{
		CustomerID:       "cust-1",
		IssueDescription: "Boiler lockout",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Committed)
	assert.Equal(t, "T8", result.Committed.Booking.TechnicianID)
}
