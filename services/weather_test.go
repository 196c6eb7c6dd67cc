package services

import (
	"context"
	"testing"
	"time"

	forecastRepo "boilertech/database/repository/forecast"
	"boilertech/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forecast(date string, suitable bool) models.Forecast {
	f := models.Forecast{
		Date:                date,
		Location:            "london",
		Temperature:         models.Temperature{Min: 6, Max: 14, Current: 11},
		Conditions:          "partly cloudy",
		PrecipitationChance: 15,
		WindSpeed:           10,
		Suitable:            suitable,
	}
	if !suitable {
		f.Conditions = "heavy rain"
		f.PrecipitationChance = 85
	}
	return f
}

func TestRecommendSuitableDate(t *testing.T) {
	repo := forecastRepo.NewMemoryForecastRepo(forecast("2025-03-10", true))
	svc := &DefaultWeatherService{ForecastRepo: repo}

	rec, err := svc.Recommend(context.Background(), "2025-03-10", "London", 7)
	require.NoError(t, err)
	assert.True(t, rec.Suitable)
	assert.Equal(t, "Weather is suitable: partly cloudy, 11°C", rec.Reason)
	assert.Empty(t, rec.AlternativeDates)
}

func TestRecommendUnsuitableDateCarriesAlternatives(t *testing.T) {
	repo := forecastRepo.NewMemoryForecastRepo(
		forecast("2025-03-08", true),
		forecast("2025-03-10", false),
		forecast("2025-03-12", true),
		forecast("2025-03-11", true),
		// Outside the flexibility window.
		forecast("2025-03-25", true),
	)
	svc := &DefaultWeatherService{ForecastRepo: repo}

	rec, err := svc.Recommend(context.Background(), "2025-03-10", "London", 7)
	require.NoError(t, err)
	assert.False(t, rec.Suitable)
	assert.Equal(t, "Weather unsuitable: heavy rain, 85% chance of rain", rec.Reason)
	assert.Equal(t, []string{"2025-03-08", "2025-03-11", "2025-03-12"}, rec.AlternativeDates)
}

func TestRecommendFailsClosedOnMissingData(t *testing.T) {
	svc := &DefaultWeatherService{ForecastRepo: forecastRepo.NewMemoryForecastRepo()}

	rec, err := svc.Recommend(context.Background(), "2025-03-10", "London", 7)
	require.NoError(t, err)
	assert.False(t, rec.Suitable)
	assert.Equal(t, "No weather data available for this date", rec.Reason)
}

func TestSuitableFailsClosedOnMissingData(t *testing.T) {
	svc := &DefaultWeatherService{ForecastRepo: forecastRepo.NewMemoryForecastRepo()}

	ok, err := svc.Suitable(context.Background(), "2025-03-10", "London")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOptimalDatesRanksByWeatherQuality(t *testing.T) {
	calm := forecast("2025-03-11", true)
	calm.Temperature.Current = 18
	calm.PrecipitationChance = 5
	calm.WindSpeed = 5

	middling := forecast("2025-03-12", true)
	middling.Temperature.Current = 11
	middling.PrecipitationChance = 25
	middling.WindSpeed = 15

	repo := forecastRepo.NewMemoryForecastRepo(
		middling,
		calm,
		forecast("2025-03-13", false),
	)
	svc := &DefaultWeatherService{
		ForecastRepo: repo,
		Now:          func() time.Time { return time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC) },
	}

	dates, err := svc.OptimalDates(context.Background(), "London", 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-11", "2025-03-12"}, dates)
}

func TestAlertsThresholds(t *testing.T) {
	rainy := forecast("2025-03-10", false)
	rainy.PrecipitationChance = 90
	rainy.WindSpeed = 35

	cold := forecast("2025-03-11", true)
	cold.Temperature.Current = 2

	repo := forecastRepo.NewMemoryForecastRepo(rainy, cold)
	svc := &DefaultWeatherService{ForecastRepo: repo}

	alerts, err := svc.Alerts(context.Background(), "London")
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, "warning", alerts[0].Type)
	assert.Equal(t, "alert", alerts[1].Type)
	assert.Equal(t, "info", alerts[2].Type)
}

func TestSummaryAggregatesForecastWindow(t *testing.T) {
	repo := forecastRepo.NewMemoryForecastRepo(
		forecast("2025-03-10", true),
		forecast("2025-03-11", false),
		forecast("2025-03-12", false),
		forecast("2025-03-13", false),
	)
	svc := &DefaultWeatherService{
		ForecastRepo: repo,
		Now:          func() time.Time { return time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC) },
	}

	summary, err := svc.Summary(context.Background(), "London", 7)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SuitableDays)
	assert.Equal(t, 3, summary.UnsuitableDays)
	assert.Equal(t, 3, summary.RainDays)
	assert.Contains(t, summary.Recommendations, "Limited suitable weather days - consider flexible scheduling")
}
