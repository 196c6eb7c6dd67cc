package technicianRepo

import (
	"context"
	"sync"

	"boilertech/models"
)

// MemoryTechnicianRepo is an in-memory TechnicianRepository used by tests and
// local demo runs.
type MemoryTechnicianRepo struct {
	mu          sync.RWMutex
	technicians []models.Technician
}

// NewMemoryTechnicianRepo creates an in-memory roster seeded with the given
// technicians.
func NewMemoryTechnicianRepo(technicians ...models.Technician) *MemoryTechnicianRepo {
	return &MemoryTechnicianRepo{technicians: technicians}
}

func (r *MemoryTechnicianRepo) GetAll(ctx context.Context) ([]models.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Technician, len(r.technicians))
	copy(out, r.technicians)
	return out, nil
}

func (r *MemoryTechnicianRepo) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.technicians {
		if t.ID == id {
			tech := t
			return &tech, nil
		}
	}
	return nil, nil
}

// Put adds or replaces a technician.
func (r *MemoryTechnicianRepo) Put(t models.Technician) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.technicians {
		if r.technicians[i].ID == t.ID {
			r.technicians[i] = t
			return
		}
	}
	r.technicians = append(r.technicians, t)
}
