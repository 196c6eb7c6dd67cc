package forecastRepo

import (
	"context"

	"boilertech/models"
)

// ForecastRepository defines read access to the environmental signal.
type ForecastRepository interface {
	// GetByDateLocation retrieves the forecast for a (date, location) pair.
	// Returns (nil, nil) when no data exists -- callers must fail closed.
	GetByDateLocation(ctx context.Context, date, location string) (*models.Forecast, error)
	// GetRange retrieves the forecasts for a location within [start, end],
	// both inclusive, in "YYYY-MM-DD" form.
	GetRange(ctx context.Context, start, end, location string) ([]models.Forecast, error)
	// GetByLocation retrieves all forecasts for a location.
	GetByLocation(ctx context.Context, location string) ([]models.Forecast, error)
}
