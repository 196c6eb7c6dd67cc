package recordsRepo

import (
	"context"

	"boilertech/models"
)

// RecordRepository defines access to per-customer maintenance records.
type RecordRepository interface {
	// GetByCustomer retrieves the maintenance record for a customer.
	// Returns (nil, nil) when absent.
	GetByCustomer(ctx context.Context, customerID string) (*models.MaintenanceRecord, error)
	// Upsert stores the maintenance record for its customer.
	Upsert(ctx context.Context, record *models.MaintenanceRecord) error
}
