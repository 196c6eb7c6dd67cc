package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	forecastRepo "boilertech/database/repository/forecast"
	"boilertech/models"
)

// DefaultFlexibilityDays is the alternative-date search radius used when the
// caller does not specify one.
const DefaultFlexibilityDays = 7

// WeatherService is the environmental suitability gate for service dates.
type WeatherService interface {
	// Forecast returns the forecast for a (date, location) pair, or
	// (nil, nil) when no data exists.
	Forecast(ctx context.Context, date, location string) (*models.Forecast, error)
	// Suitable reports whether the date is usable for outdoor service work.
	// Missing data means not suitable.
	Suitable(ctx context.Context, date, location string) (bool, error)
	// Recommend produces the suitability verdict for a date. On rejection it
	// carries the usable dates within [date-flexibilityDays, date+flexibilityDays],
	// chronologically ordered.
	Recommend(ctx context.Context, date, location string, flexibilityDays int) (*models.WeatherRecommendation, error)
	// OptimalDates returns up to five upcoming suitable dates for the
	// location, best weather first.
	OptimalDates(ctx context.Context, location string, days int) ([]string, error)
	// Alerts returns hazard alerts derived from the location's forecasts.
	Alerts(ctx context.Context, location string) ([]models.WeatherAlert, error)
	// Summary aggregates the next `days` of forecasts for planning.
	Summary(ctx context.Context, location string, days int) (*models.WeatherSummary, error)
}

// DefaultWeatherService is a concrete implementation backed by the forecast
// store.
type DefaultWeatherService struct {
	ForecastRepo forecastRepo.ForecastRepository
	Now          func() time.Time // nil means time.Now
}

func (s *DefaultWeatherService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultWeatherService) Forecast(ctx context.Context, date, location string) (*models.Forecast, error) {
	return s.ForecastRepo.GetByDateLocation(ctx, date, location)
}

func (s *DefaultWeatherService) Suitable(ctx context.Context, date, location string) (bool, error) {
	forecast, err := s.ForecastRepo.GetByDateLocation(ctx, date, location)
	if err != nil {
		return false, err
	}
	// Fail closed: no data means not suitable.
	if forecast == nil {
		return false, nil
	}
	return forecast.Suitable, nil
}

func (s *DefaultWeatherService) Recommend(ctx context.Context, date, location string, flexibilityDays int) (*models.WeatherRecommendation, error) {
	if flexibilityDays <= 0 {
		flexibilityDays = DefaultFlexibilityDays
	}

	forecast, err := s.ForecastRepo.GetByDateLocation(ctx, date, location)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate weather for %s: %w", date, err)
	}

	if forecast == nil {
		return &models.WeatherRecommendation{
			Date:     date,
			Suitable: false,
			Reason:   "No weather data available for this date",
		}, nil
	}

	if forecast.Suitable {
		return &models.WeatherRecommendation{
			Date:     date,
			Suitable: true,
			Reason:   fmt.Sprintf("Weather is suitable: %s, %.0f°C", forecast.Conditions, forecast.Temperature.Current),
		}, nil
	}

	alternatives, err := s.findSuitableDates(ctx, date, location, flexibilityDays)
	if err != nil {
		return nil, err
	}

	return &models.WeatherRecommendation{
		Date:             date,
		Suitable:         false,
		Reason:           fmt.Sprintf("Weather unsuitable: %s, %.0f%% chance of rain", forecast.Conditions, forecast.PrecipitationChance),
		AlternativeDates: alternatives,
	}, nil
}

// findSuitableDates scans [date-flex, date+flex] and returns the suitable
// dates sorted chronologically. The primary date is picked fail-closed; the
// alternates are picked by calendar order rather than weather quality, which
// keeps the fallback predictable for customers.
func (s *DefaultWeatherService) findSuitableDates(ctx context.Context, date, location string, flexibilityDays int) ([]string, error) {
	preferred, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid service date %q: %w", date, err)
	}
	start := preferred.AddDate(0, 0, -flexibilityDays).Format("2006-01-02")
	end := preferred.AddDate(0, 0, flexibilityDays).Format("2006-01-02")

	forecasts, err := s.ForecastRepo.GetRange(ctx, start, end, location)
	if err != nil {
		return nil, fmt.Errorf("failed to scan alternative dates: %w", err)
	}

	var dates []string
	for _, f := range forecasts {
		if f.Suitable {
			dates = append(dates, f.Date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

func (s *DefaultWeatherService) OptimalDates(ctx context.Context, location string, days int) ([]string, error) {
	if days <= 0 {
		days = 30
	}
	today := s.now()
	start := today.Format("2006-01-02")
	end := today.AddDate(0, 0, days).Format("2006-01-02")

	forecasts, err := s.ForecastRepo.GetRange(ctx, start, end, location)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast range: %w", err)
	}

	var suitable []models.Forecast
	for _, f := range forecasts {
		if f.Suitable {
			suitable = append(suitable, f)
		}
	}
	sort.SliceStable(suitable, func(i, j int) bool {
		return weatherScore(suitable[i]) > weatherScore(suitable[j])
	})

	dates := make([]string, 0, 5)
	for _, f := range suitable {
		dates = append(dates, f.Date)
		if len(dates) == 5 {
			break
		}
	}
	return dates, nil
}

func (s *DefaultWeatherService) Alerts(ctx context.Context, location string) ([]models.WeatherAlert, error) {
	forecasts, err := s.ForecastRepo.GetByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecasts for %s: %w", location, err)
	}

	var alerts []models.WeatherAlert
	for _, f := range forecasts {
		if f.PrecipitationChance > 80 {
			alerts = append(alerts, models.WeatherAlert{
				Type:    "warning",
				Message: fmt.Sprintf("Heavy rain expected on %s", f.Date),
				Date:    f.Date,
			})
		}
		if f.WindSpeed > 30 {
			alerts = append(alerts, models.WeatherAlert{
				Type:    "alert",
				Message: fmt.Sprintf("High winds expected on %s", f.Date),
				Date:    f.Date,
			})
		}
		if f.Temperature.Current < 5 {
			alerts = append(alerts, models.WeatherAlert{
				Type:    "info",
				Message: fmt.Sprintf("Cold weather on %s - consider indoor work", f.Date),
				Date:    f.Date,
			})
		}
	}
	return alerts, nil
}

func (s *DefaultWeatherService) Summary(ctx context.Context, location string, days int) (*models.WeatherSummary, error) {
	if days <= 0 {
		days = 7
	}
	today := s.now()
	start := today.Format("2006-01-02")
	end := today.AddDate(0, 0, days).Format("2006-01-02")

	forecasts, err := s.ForecastRepo.GetRange(ctx, start, end, location)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast range: %w", err)
	}

	summary := &models.WeatherSummary{}
	var tempTotal float64
	for _, f := range forecasts {
		if f.Suitable {
			summary.SuitableDays++
		} else {
			summary.UnsuitableDays++
		}
		if f.PrecipitationChance > 50 {
			summary.RainDays++
		}
		tempTotal += f.Temperature.Current
	}
	if len(forecasts) > 0 {
		summary.AverageTemperature = int(tempTotal/float64(len(forecasts)) + 0.5)
	}

	if summary.SuitableDays == 0 {
		summary.Recommendations = append(summary.Recommendations, "No suitable weather days in the forecast period")
	} else if summary.SuitableDays < days/2 {
		summary.Recommendations = append(summary.Recommendations, "Limited suitable weather days - consider flexible scheduling")
	}
	if summary.RainDays > days/2 {
		summary.Recommendations = append(summary.Recommendations, "High chance of rain - prioritize indoor work")
	}
	if len(forecasts) > 0 && summary.AverageTemperature < 10 {
		summary.Recommendations = append(summary.Recommendations, "Cold weather expected - ensure proper heating for work areas")
	}
	return summary, nil
}

// weatherScore ranks suitable days: mild temperature, dry and calm wins.
func weatherScore(f models.Forecast) int {
	score := 0

	temp := f.Temperature.Current
	switch {
	case temp >= 15 && temp <= 25:
		score += 30
	case temp >= 10 && temp <= 30:
		score += 20
	case temp >= 5 && temp <= 35:
		score += 10
	}

	switch {
	case f.PrecipitationChance < 10:
		score += 40
	case f.PrecipitationChance < 30:
		score += 20
	case f.PrecipitationChance < 50:
		score += 10
	}

	switch {
	case f.WindSpeed < 10:
		score += 30
	case f.WindSpeed < 20:
		score += 15
	case f.WindSpeed < 30:
		score += 5
	}

	return score
}
