package intelligence

import (
	"context"
	"testing"
	"time"

	customerRepo "boilertech/database/repository/customer"
	recordsRepo "boilertech/database/repository/records"
	"boilertech/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(record models.MaintenanceRecord, customer models.Customer) *RuleBasedPredictionService {
	return &RuleBasedPredictionService{
		RecordRepo:   recordsRepo.NewMemoryRecordRepo(record),
		CustomerRepo: customerRepo.NewMemoryCustomerRepo(customer),
		Now:          func() time.Time { return time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC) },
	}
}

func lowRiskRecord() models.MaintenanceRecord {
	return models.MaintenanceRecord{
		CustomerID:  "cust-1",
		LastService: "2024-06-15",
		NextService: "2025-06-15",
		Status:      "scheduled",
		RiskLevel:   models.RiskLow,
		ServiceHistory: []models.ServiceRecord{
			{Date: "2024-06-15", Type: models.ServiceAnnual, Technician: "tech-001"},
			{Date: "2023-06-10", Type: models.ServiceAnnual, Technician: "tech-001"},
		},
	}
}

func newBoilerCustomer() models.Customer {
	return models.Customer{
		ID:          "cust-1",
		Name:        "Margaret Price",
		Address:     "14 Elm Grove, London, SW4 7BT",
		InstallDate: "2022-06-15",
	}
}

func TestMaintenancePredictionLowRisk(t *testing.T) {
	svc := newService(lowRiskRecord(), newBoilerCustomer())

	pred, err := svc.MaintenancePrediction(context.Background(), "cust-1")
	require.NoError(t, err)
	require.NotNil(t, pred)

	assert.Equal(t, models.RiskLow, pred.RiskLevel)
	assert.Equal(t, "2025-06-15", pred.NextServiceOptimal)
	assert.Equal(t, 0.92, pred.ConfidenceScore)
	assert.Equal(t, 120, pred.EstimatedCost)
	assert.NotEmpty(t, pred.RecommendedActions)
}

func TestMaintenancePredictionEscalatesWhenOverdue(t *testing.T) {
	record := lowRiskRecord()
	record.NextService = "2025-02-01"
	record.Status = "overdue"
	svc := newService(record, newBoilerCustomer())

	pred, err := svc.MaintenancePrediction(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, models.RiskMedium, pred.RiskLevel)
	assert.Equal(t, 180, pred.EstimatedCost)
}

func TestMaintenancePredictionHighRiskPullsServiceForward(t *testing.T) {
	record := lowRiskRecord()
	record.RiskLevel = models.RiskMedium
	record.NextService = "2025-02-01"
	svc := newService(record, newBoilerCustomer())

	pred, err := svc.MaintenancePrediction(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, models.RiskHigh, pred.RiskLevel)
	// High risk overrides the recorded date with one week out.
	assert.Equal(t, "2025-03-17", pred.NextServiceOptimal)
}

func TestMaintenancePredictionAbsentRecord(t *testing.T) {
	svc := &RuleBasedPredictionService{
		RecordRepo:   recordsRepo.NewMemoryRecordRepo(),
		CustomerRepo: customerRepo.NewMemoryCustomerRepo(),
	}

	pred, err := svc.MaintenancePrediction(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, pred)
}

func TestFailurePredictionAgeRaisesProbability(t *testing.T) {
	young := newBoilerCustomer()
	svc := newService(lowRiskRecord(), young)

	pred, err := svc.FailurePrediction(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.InDelta(t, 0.05, pred.FailureProbability, 1e-9)
	assert.Equal(t, 94, pred.PreventionScore)

	old := newBoilerCustomer()
	old.InstallDate = "2010-06-15"
	svc = newService(lowRiskRecord(), old)

	pred, err = svc.FailurePrediction(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.InDelta(t, 0.15, pred.FailureProbability, 1e-9)
	assert.Contains(t, pred.RiskFactors, "Boiler age above average")
}

func TestFailurePredictionIsDeterministic(t *testing.T) {
	svc := newService(lowRiskRecord(), newBoilerCustomer())

	first, err := svc.FailurePrediction(context.Background(), "cust-1")
	require.NoError(t, err)
	second, err := svc.FailurePrediction(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEfficiencyAnalysis(t *testing.T) {
	svc := newService(lowRiskRecord(), newBoilerCustomer())

	analysis, err := svc.EfficiencyAnalysis(context.Background(), "cust-1")
	require.NoError(t, err)
	// Installed 2022, so two full years of age.
	assert.Equal(t, "92%", analysis.CurrentEfficiency)
	assert.Equal(t, "improving", analysis.EfficiencyTrend)

	old := newBoilerCustomer()
	old.InstallDate = "2010-06-15"
	record := lowRiskRecord()
	record.RiskLevel = models.RiskHigh
	svc = newService(record, old)

	analysis, err = svc.EfficiencyAnalysis(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "declining", analysis.EfficiencyTrend)
	assert.Contains(t, analysis.Recommendations, "Power flush the central heating system")
}

func TestPredictiveSchedule(t *testing.T) {
	tests := []struct {
		name     string
		risk     string
		wantType string
		wantDate string
	}{
		{"low risk inspects on schedule", models.RiskLow, models.ServiceInspection, "2025-06-15"},
		{"medium risk gets annual service", models.RiskMedium, models.ServiceAnnual, "2025-06-15"},
		{"high risk gets comprehensive service within a week", models.RiskHigh, models.ServiceComprehensive, "2025-03-17"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record := lowRiskRecord()
			record.RiskLevel = tc.risk
			svc := newService(record, newBoilerCustomer())

			schedule, err := svc.PredictiveSchedule(context.Background(), "cust-1")
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, schedule.ServiceType)
			assert.Equal(t, tc.wantDate, schedule.NextServiceDate)
			assert.Equal(t, tc.risk, schedule.Priority)
		})
	}
}
