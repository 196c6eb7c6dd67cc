package technicianRepo

import (
	"context"

	"boilertech/models"
)

// TechnicianRepository defines read access to the technician roster. The
// scheduling subsystem never mutates it.
type TechnicianRepository interface {
	// GetAll retrieves the full roster.
	GetAll(ctx context.Context) ([]models.Technician, error)
	// GetByID retrieves a technician by id. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Technician, error)
}
