package handlers

import (
	"net/http"
	"strconv"

	"boilertech/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WeatherHandler exposes the forecast-backed suitability endpoints.
type WeatherHandler struct {
	Weather services.WeatherService
}

func NewWeatherHandler(weather services.WeatherService) *WeatherHandler {
	return &WeatherHandler{Weather: weather}
}

// RecommendHandler reports whether a date suits outdoor work, with fallback
// dates when it does not.
func (h *WeatherHandler) RecommendHandler(c *gin.Context) {
	location := c.Param("location")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	flex := services.DefaultFlexibilityDays
	if raw := c.Query("flexibility_days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			flex = parsed
		}
	}

	recommendation, err := h.Weather.Recommend(c.Request.Context(), date, location, flex)
	if err != nil {
		getLogger(c).Error("weather recommendation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "weather lookup failed"})
		return
	}

	c.JSON(http.StatusOK, recommendation)
}

// AlertsHandler lists active weather alerts for a location.
func (h *WeatherHandler) AlertsHandler(c *gin.Context) {
	location := c.Param("location")

	alerts, err := h.Weather.Alerts(c.Request.Context(), location)
	if err != nil {
		getLogger(c).Error("weather alerts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "weather lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": location, "alerts": alerts})
}

// SummaryHandler reports the forecast outlook for the coming days.
func (h *WeatherHandler) SummaryHandler(c *gin.Context) {
	location := c.Param("location")

	days := 7
	if raw := c.Query("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	summary, err := h.Weather.Summary(c.Request.Context(), location, days)
	if err != nil {
		getLogger(c).Error("weather summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "weather lookup failed"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
