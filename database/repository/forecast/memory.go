package forecastRepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"boilertech/models"
)

// MemoryForecastRepo is an in-memory ForecastRepository used by tests and
// local demo runs.
type MemoryForecastRepo struct {
	mu        sync.RWMutex
	forecasts []models.Forecast
}

// NewMemoryForecastRepo creates an in-memory store seeded with the given
// forecasts.
func NewMemoryForecastRepo(forecasts ...models.Forecast) *MemoryForecastRepo {
	return &MemoryForecastRepo{forecasts: forecasts}
}

func (r *MemoryForecastRepo) GetByDateLocation(ctx context.Context, date, location string) (*models.Forecast, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.forecasts {
		if f.Date == date && strings.EqualFold(f.Location, location) {
			forecast := f
			return &forecast, nil
		}
	}
	return nil, nil
}

func (r *MemoryForecastRepo) GetRange(ctx context.Context, start, end, location string) ([]models.Forecast, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Forecast
	for _, f := range r.forecasts {
		// ISO dates compare correctly as strings.
		if f.Date >= start && f.Date <= end && strings.EqualFold(f.Location, location) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *MemoryForecastRepo) GetByLocation(ctx context.Context, location string) ([]models.Forecast, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Forecast
	for _, f := range r.forecasts {
		if strings.EqualFold(f.Location, location) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// Put adds or replaces the forecast for its (date, location) pair.
func (r *MemoryForecastRepo) Put(f models.Forecast) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.forecasts {
		if r.forecasts[i].Date == f.Date && strings.EqualFold(r.forecasts[i].Location, f.Location) {
			r.forecasts[i] = f
			return
		}
	}
	r.forecasts = append(r.forecasts, f)
}
