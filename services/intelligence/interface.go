package intelligence

import (
	"context"

	"boilertech/models"
)

// PredictionService is the maintenance prediction signal consumed by the
// scheduling subsystem. Implementations must be deterministic: same inputs,
// same predictions.
type PredictionService interface {
	// MaintenancePrediction returns the maintenance outlook for a customer,
	// or (nil, nil) when no maintenance record exists.
	MaintenancePrediction(ctx context.Context, customerID string) (*models.MaintenancePrediction, error)
	// FailurePrediction estimates breakdown probability before next service.
	FailurePrediction(ctx context.Context, customerID string) (*models.FailurePrediction, error)
	// EfficiencyAnalysis describes the installation's efficiency trajectory.
	EfficiencyAnalysis(ctx context.Context, customerID string) (*models.EfficiencyAnalysis, error)
	// PredictiveSchedule derives the recommended next service.
	PredictiveSchedule(ctx context.Context, customerID string) (*models.PredictiveSchedule, error)
}
