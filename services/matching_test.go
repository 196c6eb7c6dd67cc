package services

import (
	"context"
	"testing"

	technicianRepo "boilertech/database/repository/technician"
	"boilertech/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayWindow(start, end string) map[string]models.DayWindow {
	return map[string]models.DayWindow{
		"monday":    {Start: start, End: end},
		"tuesday":   {Start: start, End: end},
		"wednesday": {Start: start, End: end},
		"thursday":  {Start: start, End: end},
		"friday":    {Start: start, End: end},
	}
}

func londonRoster() *technicianRepo.MemoryTechnicianRepo {
	return technicianRepo.NewMemoryTechnicianRepo(
		models.Technician{
			ID: "T1", Name: "James", Location: "London",
			Skills:          []string{"Worcester Bosch", "Vaillant"},
			Availability:    weekdayWindow("09:00", "11:00"),
			Rating:          4.8,
			Specializations: []string{"emergency repairs"},
		},
		models.Technician{
			ID: "T2", Name: "Sarah", Location: "London",
			Skills:          []string{"Worcester Bosch"},
			Availability:    weekdayWindow("09:00", "10:00"),
			Rating:          4.2,
			Specializations: []string{"annual servicing"},
		},
		models.Technician{
			ID: "T3", Name: "David", Location: "Manchester",
			Skills:          []string{"Worcester Bosch"},
			Availability:    weekdayWindow("08:00", "16:00"),
			Rating:          4.9,
			Specializations: []string{"repair"},
		},
	)
}

func TestFindAvailableFiltersAndRanks(t *testing.T) {
	svc := &DefaultMatchingService{
		TechnicianRepo: londonRoster(),
		Availability:   &DefaultAvailabilityService{},
	}

	// 2025-03-10 is a Monday.
	candidates, err := svc.FindAvailable(context.Background(), "2025-03-10", "London", []string{"Worcester Bosch"})
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// Best-rated first; the Manchester technician never qualifies.
	assert.Equal(t, "T1", candidates[0].TechnicianID)
	assert.Equal(t, []string{"09:00", "10:00"}, candidates[0].AvailableSlots)
	assert.Equal(t, "T2", candidates[1].TechnicianID)
	assert.Equal(t, []string{"09:00"}, candidates[1].AvailableSlots)
}

func TestFindAvailableSkillMatchingIsSubstringAndCaseInsensitive(t *testing.T) {
	svc := &DefaultMatchingService{
		TechnicianRepo: londonRoster(),
		Availability:   &DefaultAvailabilityService{},
	}

	candidates, err := svc.FindAvailable(context.Background(), "2025-03-10", "london", []string{"worcester"})
	require.NoError(t, err)
	assert.Len(t, candidates, 2)

	candidates, err = svc.FindAvailable(context.Background(), "2025-03-10", "London", []string{"Vaillant"})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "T1", candidates[0].TechnicianID)
}

func TestFindAvailableEmptyResultIsNotAnError(t *testing.T) {
	svc := &DefaultMatchingService{
		TechnicianRepo: londonRoster(),
		Availability:   &DefaultAvailabilityService{},
	}

	// Sunday: nobody on the roster works weekends.
	candidates, err := svc.FindAvailable(context.Background(), "2025-03-09", "London", nil)
	require.NoError(t, err)
	assert.Empty(t, candidates)

	candidates, err = svc.FindAvailable(context.Background(), "2025-03-10", "Bristol", nil)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

// countingTechnicianRepo tracks how often the roster is actually read.
type countingTechnicianRepo struct {
	technicianRepo.TechnicianRepository
	getAllCalls int
}

func (r *countingTechnicianRepo) GetAll(ctx context.Context) ([]models.Technician, error) {
	r.getAllCalls++
	return r.TechnicianRepository.GetAll(ctx)
}

func TestFindAvailableServesRepeatedQueriesFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	counting := &countingTechnicianRepo{TechnicianRepository: londonRoster()}
	svc := &DefaultMatchingService{
		TechnicianRepo: counting,
		Availability:   &DefaultAvailabilityService{},
		CacheClient:    cache,
	}

	first, err := svc.FindAvailable(context.Background(), "2025-03-10", "London", []string{"Worcester Bosch"})
	require.NoError(t, err)
	second, err := svc.FindAvailable(context.Background(), "2025-03-10", "London", []string{"Worcester Bosch"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, counting.getAllCalls)

	// A different query misses the cache.
	_, err = svc.FindAvailable(context.Background(), "2025-03-11", "London", []string{"Worcester Bosch"})
	require.NoError(t, err)
	assert.Equal(t, 2, counting.getAllCalls)
}

func TestEmergencyTechnicians(t *testing.T) {
	svc := &DefaultMatchingService{
		TechnicianRepo: londonRoster(),
		Availability:   &DefaultAvailabilityService{},
	}

	specialists, err := svc.EmergencyTechnicians(context.Background(), "London")
	require.NoError(t, err)
	require.Len(t, specialists, 1)
	assert.Equal(t, "T1", specialists[0].ID)

	// "repair" in a specialization qualifies too.
	specialists, err = svc.EmergencyTechnicians(context.Background(), "Manchester")
	require.NoError(t, err)
	require.Len(t, specialists, 1)
	assert.Equal(t, "T3", specialists[0].ID)
}

func TestFindBestTechnician(t *testing.T) {
	svc := &DefaultMatchingService{
		TechnicianRepo: londonRoster(),
		Availability:   &DefaultAvailabilityService{},
	}

	best, err := svc.FindBestTechnician(context.Background(), "2025-03-10", "London", nil)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "T1", best.ID)

	best, err = svc.FindBestTechnician(context.Background(), "2025-03-09", "London", nil)
	require.NoError(t, err)
	assert.Nil(t, best)
}
