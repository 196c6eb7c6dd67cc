package recordsRepo

import (
	"context"
	"sync"

	"boilertech/models"
)

// MemoryRecordRepo is an in-memory RecordRepository used by tests and local
// demo runs.
type MemoryRecordRepo struct {
	mu      sync.RWMutex
	records map[string]models.MaintenanceRecord
}

// NewMemoryRecordRepo creates an in-memory store seeded with the given
// records.
func NewMemoryRecordRepo(records ...models.MaintenanceRecord) *MemoryRecordRepo {
	m := make(map[string]models.MaintenanceRecord, len(records))
	for _, rec := range records {
		m[rec.CustomerID] = rec
	}
	return &MemoryRecordRepo{records: m}
}

func (r *MemoryRecordRepo) GetByCustomer(ctx context.Context, customerID string) (*models.MaintenanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if rec, ok := r.records[customerID]; ok {
		record := rec
		return &record, nil
	}
	return nil, nil
}

func (r *MemoryRecordRepo) Upsert(ctx context.Context, record *models.MaintenanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.CustomerID] = *record
	return nil
}
