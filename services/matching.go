package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	technicianRepo "boilertech/database/repository/technician"
	"boilertech/models"

	"github.com/go-redis/redis/v8"
)

// matchCacheTTL bounds staleness of cached candidate lists.
const matchCacheTTL = 5 * time.Minute

// MatchingService defines methods to find and rank technicians for a
// service request.
type MatchingService interface {
	// FindAvailable returns the candidates for a date/location/skill query,
	// best-rated first. An empty result is a normal outcome, not an error.
	FindAvailable(ctx context.Context, date, location string, requiredSkills []string) ([]models.Candidate, error)
	// EmergencyTechnicians returns the emergency/repair specialists serving
	// a location, best-rated first.
	EmergencyTechnicians(ctx context.Context, location string) ([]models.Technician, error)
	// FindBestTechnician returns the highest-ranked available technician,
	// or (nil, nil) when none qualifies.
	FindBestTechnician(ctx context.Context, date, location string, requiredSkills []string) (*models.Technician, error)
}

// DefaultMatchingService is our robust implementation.
type DefaultMatchingService struct {
	TechnicianRepo technicianRepo.TechnicianRepository
	Availability   AvailabilityService
	CacheClient    *redis.Client // optional; nil disables result caching
}

// FindAvailable narrows the roster to technicians serving the location and
// possessing every required skill, attaches their slots for the date, and
// ranks them by rating. Results are served from cache when possible.
func (s *DefaultMatchingService) FindAvailable(ctx context.Context, date, location string, requiredSkills []string) ([]models.Candidate, error) {
	cacheKey, err := matchCacheKey(date, location, requiredSkills)
	if err == nil && s.CacheClient != nil {
		cached, cerr := s.CacheClient.Get(ctx, cacheKey).Result()
		if cerr == nil && cached != "" {
			var candidates []models.Candidate
			if jerr := json.Unmarshal([]byte(cached), &candidates); jerr == nil {
				return candidates, nil
			}
			// If unmarshal fails, we fall through to re-computation.
		}
	}

	technicians, err := s.TechnicianRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve technicians: %w", err)
	}

	var candidates []models.Candidate
	for _, tech := range technicians {
		if !strings.Contains(strings.ToLower(tech.Location), strings.ToLower(location)) {
			continue
		}
		if !hasAllSkills(tech.Skills, requiredSkills) {
			continue
		}
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

	// Rank by rating descending. Equal ratings keep filter-pass order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rating > candidates[j].Rating
	})

	if s.CacheClient != nil {
		if data, jerr := json.Marshal(candidates); jerr == nil {
			s.CacheClient.Set(ctx, cacheKey, data, matchCacheTTL)
		}
	}

	return candidates, nil
}

// EmergencyTechnicians filters the roster for the location to those whose
// specializations carry an emergency or repair marker.
func (s *DefaultMatchingService) EmergencyTechnicians(ctx context.Context, location string) ([]models.Technician, error) {
	technicians, err := s.TechnicianRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve technicians: %w", err)
	}

	var specialists []models.Technician
	for _, tech := range technicians {
		if !strings.Contains(strings.ToLower(tech.Location), strings.ToLower(location)) {
			continue
		}
		if hasEmergencySpecialization(tech.Specializations) {
			specialists = append(specialists, tech)
		}
	}

	sort.SliceStable(specialists, func(i, j int) bool {
		return specialists[i].Rating > specialists[j].Rating
	})
	return specialists, nil
}

// FindBestTechnician resolves the rank-0 candidate back into its full roster
// record.
func (s *DefaultMatchingService) FindBestTechnician(ctx context.Context, date, location string, requiredSkills []string) (*models.Technician, error) {
	candidates, err := s.FindAvailable(ctx, date, location, requiredSkills)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return s.TechnicianRepo.GetByID(ctx, candidates[0].TechnicianID)
}

// hasAllSkills reports whether every required skill is satisfied by at least
// one technician skill, by case-insensitive substring. An empty requirement
// list passes trivially.
func hasAllSkills(skills, required []string) bool {
	for _, req := range required {
		found := false
		for _, skill := range skills {
			if strings.Contains(strings.ToLower(skill), strings.ToLower(req)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func hasEmergencySpecialization(specializations []string) bool {
	for _, spec := range specializations {
		lower := strings.ToLower(spec)
		if strings.Contains(lower, "emergency") || strings.Contains(lower, "repair") {
			return true
		}
	}
	return false
}

// matchCacheKey derives a cache key from the JSON representation of the query.
func matchCacheKey(date, location string, requiredSkills []string) (string, error) {
	query := struct {
		Date     string   `json:"date"`
		Location string   `json:"location"`
		Skills   []string `json:"skills"`
	}{date, strings.ToLower(location), requiredSkills}

	data, err := json.Marshal(query)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("match:%x", data), nil
}
