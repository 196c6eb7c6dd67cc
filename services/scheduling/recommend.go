package scheduling

import (
	"context"
	"fmt"

	"boilertech/models"
)

// Base service costs in pounds, adjusted per technician by rating.
var baseCostByServiceType = map[string]int{
	models.ServiceAnnual:        120,
	models.ServiceComprehensive: 160,
	models.ServiceEmergency:     200,
	models.ServiceRepair:        150,
	models.ServiceInstallation:  300,
	models.ServiceInspection:    80,
}

// Recommend suggests up to three technicians for a customer's next service a
// week out, with weather-ranked fallback dates and per-technician cost
// estimates.
func (s *DefaultSchedulingService) Recommend(ctx context.Context, customerID, serviceType string) (*models.ServiceRecommendation, error) {
	customer, err := s.CustomerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, customerID)
	}

	if serviceType == "" {
		serviceType = models.ServiceAnnual
	}
	location := extractLocation(customer.Address)
	targetDate := s.now().AddDate(0, 0, 7).Format("2006-01-02")

	candidates, err := s.Matching.FindAvailable(ctx, targetDate, location, nil)
	if err != nil {
		return nil, fmt.Errorf("technician matching failed: %w", err)
	}

	recommendation := &models.ServiceRecommendation{
		RecommendedTechnicians: []models.Technician{},
		AlternativeDates:       []string{},
		EstimatedCosts:         map[string]int{},
	}

	for _, candidate := range candidates {
		if len(recommendation.RecommendedTechnicians) == 3 {
			break
		}
		technician, err := s.TechnicianRepo.GetByID(ctx, candidate.TechnicianID)
		if err != nil {
			return nil, fmt.Errorf("failed to load technician: %w", err)
		}
		if technician == nil {
			continue
		}
		recommendation.RecommendedTechnicians = append(recommendation.RecommendedTechnicians, *technician)
		recommendation.EstimatedCosts[technician.ID] = estimateServiceCost(serviceType, technician.Rating)
	}

	alternatives, err := s.Weather.OptimalDates(ctx, location, 7)
	if err != nil {
		return nil, fmt.Errorf("weather lookup failed: %w", err)
	}
	recommendation.AlternativeDates = alternatives

	return recommendation, nil
}

// estimateServiceCost scales the base cost by the technician's rating. A 4.5
// rating is the neutral point; each half star above or below moves the price
// by five percent.
func estimateServiceCost(serviceType string, rating float64) int {
	base, ok := baseCostByServiceType[serviceType]
	if !ok {
		base = baseCostByServiceType[models.ServiceAnnual]
	}
	return int(float64(base) * (1 + (rating-4.5)*0.1))
}

// TechnicianSchedule builds a technician's day sheet: committed bookings,
// remaining free hours and total committed hours.
func (s *DefaultSchedulingService) TechnicianSchedule(ctx context.Context, technicianID, date string) (*models.TechnicianSchedule, error) {
	technician, err := s.TechnicianRepo.GetByID(ctx, technicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to load technician: %w", err)
	}
	if technician == nil {
		return nil, fmt.Errorf("%w: %s", ErrTechnicianNotFound, technicianID)
	}

	bookings, err := s.BookingRepo.GetByTechnicianDate(ctx, technicianID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	booked := make(map[string]bool, len(bookings))
	totalHours := 0
	for _, b := range bookings {
		booked[b.ServiceTime] = true
		totalHours += b.EstimatedDuration
	}

	available := []string{}
	for _, slot := range s.Availability.SlotsFor(*technician, date) {
		if slot == models.EmergencyOnly || booked[slot] {
			continue
		}
		available = append(available, slot)
	}

	return &models.TechnicianSchedule{
		TechnicianID:     technicianID,
		Date:             date,
		Bookings:         bookings,
		AvailableHours:   available,
		TotalBookedHours: totalHours,
	}, nil
}

// TechnicianPerformance derives metrics from the roster record alone, so the
// same roster always reports the same numbers.
func (s *DefaultSchedulingService) TechnicianPerformance(ctx context.Context, technicianID string) (*models.TechnicianPerformance, error) {
	technician, err := s.TechnicianRepo.GetByID(ctx, technicianID)
	if err != nil {
		return nil, fmt.Errorf("failed to load technician: %w", err)
	}
	if technician == nil {
		return nil, fmt.Errorf("%w: %s", ErrTechnicianNotFound, technicianID)
	}

	completion := 85 + technician.ExperienceYears
	if completion > 99 {
		completion = 99
	}

	return &models.TechnicianPerformance{
		TechnicianID:         technicianID,
		TotalServices:        technician.ExperienceYears * 85,
		AverageRating:        technician.Rating,
		CompletionRate:       completion,
		CustomerSatisfaction: int(technician.Rating * 20),
		Specializations:      technician.Specializations,
	}, nil
}
