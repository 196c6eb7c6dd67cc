package intelligence

import (
	"context"
	"fmt"
	"time"

	customerRepo "boilertech/database/repository/customer"
	recordsRepo "boilertech/database/repository/records"
	"boilertech/models"
)

// Fixed rule tables keyed by risk level. Keeping them as package data makes
// the prediction outputs reproducible across restarts.
var (
	confidenceByRisk = map[string]float64{
		models.RiskLow:    0.92,
		models.RiskMedium: 0.86,
		models.RiskHigh:   0.80,
	}

	costByRisk = map[string]int{
		models.RiskLow:    120,
		models.RiskMedium: 180,
		models.RiskHigh:   260,
	}

	failureProbabilityByRisk = map[string]float64{
		models.RiskLow:    0.05,
		models.RiskMedium: 0.15,
		models.RiskHigh:   0.35,
	}

	actionsByRisk = map[string][]string{
		models.RiskLow: {
			"Continue annual service schedule",
			"Monitor boiler pressure monthly",
		},
		models.RiskMedium: {
			"Book annual service within 30 days",
			"Check radiator performance",
			"Bleed radiators if cold spots appear",
		},
		models.RiskHigh: {
			"Book comprehensive service immediately",
			"Inspect heat exchanger for scale build-up",
			"Test carbon monoxide alarm",
			"Consider replacement quote if unit is over 12 years old",
		},
	}

	riskFactorCatalogue = []string{
		"Service overdue",
		"Elevated risk classification",
		"Boiler age above average",
		"Hard water area scale exposure",
		"Sparse service history",
	}

	serviceTypeByRisk = map[string]string{
		models.RiskLow:    models.ServiceInspection,
		models.RiskMedium: models.ServiceAnnual,
		models.RiskHigh:   models.ServiceComprehensive,
	}

	partsByRisk = map[string][]string{
		models.RiskLow:    {},
		models.RiskMedium: {"inhibitor fluid", "pump seal kit"},
		models.RiskHigh:   {"heat exchanger gasket", "ignition electrode", "expansion vessel"},
	}
)

// RuleBasedPredictionService derives predictions from the customer's
// maintenance record and boiler age with fixed rule tables.
type RuleBasedPredictionService struct {
	RecordRepo   recordsRepo.RecordRepository
	CustomerRepo customerRepo.CustomerRepository

	// Now is the clock used for overdue and age calculations.
	Now func() time.Time
}

func (s *RuleBasedPredictionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// effectiveRisk escalates the recorded risk level one step when the next
// service date has already passed.
func (s *RuleBasedPredictionService) effectiveRisk(record *models.MaintenanceRecord) string {
	risk := record.RiskLevel
	if _, ok := confidenceByRisk[risk]; !ok {
		risk = models.RiskMedium
	}
	next, err := time.Parse("2006-01-02", record.NextService)
	if err != nil {
		return risk
	}
	if next.Before(s.now().Truncate(24 * time.Hour)) {
		switch risk {
		case models.RiskLow:
			return models.RiskMedium
		case models.RiskMedium:
			return models.RiskHigh
		}
	}
	return risk
}

func (s *RuleBasedPredictionService) record(ctx context.Context, customerID string) (*models.MaintenanceRecord, error) {
	record, err := s.RecordRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load maintenance record: %w", err)
	}
	return record, nil
}

// boilerAgeYears returns whole years since installation, or 0 when the
// customer or install date is unknown.
func (s *RuleBasedPredictionService) boilerAgeYears(ctx context.Context, customerID string) int {
	customer, err := s.CustomerRepo.GetByID(ctx, customerID)
	if err != nil || customer == nil {
		return 0
	}
	installed, err := time.Parse("2006-01-02", customer.InstallDate)
	if err != nil {
		return 0
	}
	years := int(s.now().Sub(installed).Hours() / (24 * 365.25))
	if years < 0 {
		return 0
	}
	return years
}

func (s *RuleBasedPredictionService) MaintenancePrediction(ctx context.Context, customerID string) (*models.MaintenancePrediction, error) {
	record, err := s.record(ctx, customerID)
	if err != nil || record == nil {
		return nil, err
	}

	risk := s.effectiveRisk(record)
	optimal := record.NextService
	if risk == models.RiskHigh {
		optimal = s.now().AddDate(0, 0, 7).Format("2006-01-02")
	}

	return &models.MaintenancePrediction{
		CustomerID:         customerID,
		NextServiceOptimal: optimal,
		RiskLevel:          risk,
		RecommendedActions: actionsByRisk[risk],
		ConfidenceScore:    confidenceByRisk[risk],
		EstimatedCost:      costByRisk[risk],
	}, nil
}

func (s *RuleBasedPredictionService) FailurePrediction(ctx context.Context, customerID string) (*models.FailurePrediction, error) {
	record, err := s.record(ctx, customerID)
	if err != nil || record == nil {
		return nil, err
	}

	risk := s.effectiveRisk(record)
	probability := failureProbabilityByRisk[risk]

	factors := []string{}
	if risk != record.RiskLevel || record.Status == "overdue" {
		factors = append(factors, riskFactorCatalogue[0])
	}
	if risk == models.RiskHigh {
		factors = append(factors, riskFactorCatalogue[1])
	}

	age := s.boilerAgeYears(ctx, customerID)
	if age >= 10 {
		probability += 0.10
		factors = append(factors, riskFactorCatalogue[2])
	} else if age >= 5 {
		probability += 0.05
	}
	if len(record.ServiceHistory) < 2 {
		factors = append(factors, riskFactorCatalogue[4])
	}
	if probability > 0.95 {
		probability = 0.95
	}

	return &models.FailurePrediction{
		CustomerID:         customerID,
		FailureProbability: probability,
		RiskFactors:        factors,
		PreventionScore:    int((1 - probability) * 100),
	}, nil
}

func (s *RuleBasedPredictionService) EfficiencyAnalysis(ctx context.Context, customerID string) (*models.EfficiencyAnalysis, error) {
	record, err := s.record(ctx, customerID)
	if err != nil || record == nil {
		return nil, err
	}

	risk := s.effectiveRisk(record)
	age := s.boilerAgeYears(ctx, customerID)

	efficiency := 94 - age
	if risk == models.RiskHigh {
		efficiency -= 5
	}
	if efficiency < 70 {
		efficiency = 70
	}

	trend := "stable"
	if risk == models.RiskHigh || age >= 10 {
		trend = "declining"
	} else if risk == models.RiskLow && age < 5 {
		trend = "improving"
	}

	recommendations := []string{"Keep the annual service schedule"}
	if trend == "declining" {
		recommendations = append(recommendations,
			"Power flush the central heating system",
			"Upgrade thermostat controls for better modulation")
	}

	return &models.EfficiencyAnalysis{
		CustomerID:        customerID,
		CurrentEfficiency: fmt.Sprintf("%d%%", efficiency),
		EfficiencyTrend:   trend,
		Recommendations:   recommendations,
	}, nil
}

func (s *RuleBasedPredictionService) PredictiveSchedule(ctx context.Context, customerID string) (*models.PredictiveSchedule, error) {
	record, err := s.record(ctx, customerID)
	if err != nil || record == nil {
		return nil, err
	}

	risk := s.effectiveRisk(record)
	nextDate := record.NextService
	if risk == models.RiskHigh {
		nextDate = s.now().AddDate(0, 0, 7).Format("2006-01-02")
	}
	if nextDate == "" {
		nextDate = s.now().AddDate(0, 0, 30).Format("2006-01-02")
	}

	return &models.PredictiveSchedule{
		CustomerID:      customerID,
		NextServiceDate: nextDate,
		ServiceType:     serviceTypeByRisk[risk],
		Priority:        risk,
		RequiredParts:   partsByRisk[risk],
	}, nil
}
