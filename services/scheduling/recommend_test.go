package scheduling

import (
	"context"
	"testing"

	"boilertech/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendSuggestsTechniciansAndCosts(t *testing.T) {
	// 2025-03-17, a week after the pinned clock, is a Monday.
	f := newFixture(t, londonTechnicians(), []models.Forecast{
		suitableForecast("2025-03-12"),
		suitableForecast("2025-03-14"),
	})

	rec, err := f.svc.Recommend(context.Background(), "cust-1", models.ServiceAnnual)
	require.NoError(t, err)
	require.Len(t, rec.RecommendedTechnicians, 2)

	assert.Equal(t, "T1", rec.RecommendedTechnicians[0].ID)
	assert.Equal(t, "T2", rec.RecommendedTechnicians[1].ID)

	// 120 * (1 + (4.8-4.5)*0.1) = 123, 120 * (1 + (4.2-4.5)*0.1) = 116.
	assert.Equal(t, 123, rec.EstimatedCosts["T1"])
	assert.Equal(t, 116, rec.EstimatedCosts["T2"])

	assert.ElementsMatch(t, []string{"2025-03-12", "2025-03-14"}, rec.AlternativeDates)
}

func TestRecommendUnknownCustomer(t *testing.T) {
	f := newFixture(t, londonTechnicians(), nil)

	_, err := f.svc.Recommend(context.Background(), "ghost", "")
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestEstimateServiceCost(t *testing.T) {
	tests := []struct {
		serviceType string
		rating      float64
		want        int
	}{
		{models.ServiceAnnual, 4.5, 120},
		{models.ServiceEmergency, 4.5, 200},
		{models.ServiceRepair, 5.0, 157},
		{models.ServiceInstallation, 4.0, 285},
		{models.ServiceInspection, 4.5, 80},
		{"unknown", 4.5, 120},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, estimateServiceCost(tc.serviceType, tc.rating), tc.serviceType)
	}
}

func TestTechnicianSchedule(t *testing.T) {
	f := newFixture(t, londonTechnicians(), nil)

	require.NoError(t, f.bookings.Create(context.Background(), &models.Booking{
		ID: "BK-1", CustomerID: "cust-1", TechnicianID: "T1",
		ServiceDate: "2025-03-10", ServiceTime: "09:00",
		EstimatedDuration: 2, Status: models.StatusScheduled,
	}))

	schedule, err := f.svc.TechnicianSchedule(context.Background(), "T1", "2025-03-10")
	require.NoError(t, err)

	assert.Len(t, schedule.Bookings, 1)
	assert.Equal(t, []string{"10:00"}, schedule.AvailableHours)
	assert.Equal(t, 2, schedule.TotalBookedHours)
}

func TestTechnicianScheduleUnknownTechnician(t *testing.T) {
	f := newFixture(t, londonTechnicians(), nil)

	_, err := f.svc.TechnicianSchedule(context.Background(), "ghost", "2025-03-10")
	require.ErrorIs(t, err, ErrTechnicianNotFound)
}

func TestTechnicianPerformanceIsDeterministic(t *testing.T) {
	techs := []models.Technician{{
		ID: "T1", Name: "James", Location: "London",
		ExperienceYears: 12, Rating: 4.8,
		Specializations: []string{"emergency repairs"},
	}}
	f := newFixture(t, techs, nil)

	first, err := f.svc.TechnicianPerformance(context.Background(), "T1")
	require.NoError(t, err)
	second, err := f.svc.TechnicianPerformance(context.Background(), "T1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 12*85, first.TotalServices)
	assert.Equal(t, 4.8, first.AverageRating)
	assert.Equal(t, 97, first.CompletionRate)
	assert.Equal(t, 96, first.CustomerSatisfaction)
}
