package customerRepo

import (
	"context"
	"strings"
	"sync"

	"boilertech/models"
)

// MemoryCustomerRepo is an in-memory CustomerRepository used by tests and
// local demo runs.
type MemoryCustomerRepo struct {
	mu        sync.RWMutex
	customers []models.Customer
}

// NewMemoryCustomerRepo creates an in-memory store seeded with the given
// customers.
func NewMemoryCustomerRepo(customers ...models.Customer) *MemoryCustomerRepo {
	return &MemoryCustomerRepo{customers: customers}
}

func (r *MemoryCustomerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

func (r *MemoryCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.ID == id {
			customer := c
			return &customer, nil
		}
	}
	return nil, nil
}

func (r *MemoryCustomerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if strings.EqualFold(c.Email, email) {
			customer := c
			return &customer, nil
		}
	}
	return nil, nil
}

func (r *MemoryCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = append(r.customers, *customer)
	return nil
}

func (r *MemoryCustomerRepo) Update(ctx context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.customers {
		if r.customers[i].ID == customer.ID {
			r.customers[i] = *customer
			return nil
		}
	}
	return nil
}
