package customerRepo

import (
	"context"

	"boilertech/models"
)

// CustomerRepository defines access to customer records.
type CustomerRepository interface {
	// GetAll retrieves all customers.
	GetAll(ctx context.Context) ([]models.Customer, error)
	// GetByID retrieves a customer by id. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	// GetByEmail retrieves a customer by email. Returns (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	// Create inserts a new customer record.
	Create(ctx context.Context, customer *models.Customer) error
	// Update replaces an existing customer record.
	Update(ctx context.Context, customer *models.Customer) error
}
