package handlers

import (
	"errors"
	"net/http"
	"strings"

	customerRepo "boilertech/database/repository/customer"
	"boilertech/models"
	"boilertech/services"
	"boilertech/services/intelligence"
	"boilertech/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaintenanceHandler exposes the scheduling and prediction endpoints.
type MaintenanceHandler struct {
	Scheduler   scheduling.SchedulingService
	Predictions intelligence.PredictionService
	Weather     services.WeatherService
	Customers   customerRepo.CustomerRepository
}

func NewMaintenanceHandler(scheduler scheduling.SchedulingService, predictions intelligence.PredictionService, weather services.WeatherService, customers customerRepo.CustomerRepository) *MaintenanceHandler {
	return &MaintenanceHandler{Scheduler: scheduler, Predictions: predictions, Weather: weather, Customers: customers}
}

// ScheduleHandler runs the standard scheduling path.
func (h *MaintenanceHandler) ScheduleHandler(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Scheduler.ScheduleService(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, scheduling.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		getLogger(c).Error("scheduling failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scheduling failed"})
		return
	}

	if result.Rejected != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             result.Rejected.Reason,
			"code":              result.Rejected.Code,
			"alternative_dates": result.Rejected.AlternativeDates,
		})
		return
	}

	c.JSON(http.StatusCreated, result.Committed)
}

// EmergencyHandler runs the emergency scheduling path.
func (h *MaintenanceHandler) EmergencyHandler(c *gin.Context) {
	var req models.EmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Scheduler.ScheduleEmergency(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, scheduling.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		getLogger(c).Error("emergency scheduling failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "emergency scheduling failed"})
		return
	}

	if result.Rejected != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": result.Rejected.Reason,
			"code":  result.Rejected.Code,
		})
		return
	}

	c.JSON(http.StatusCreated, result.Committed)
}

// RecommendHandler suggests technicians and dates for a customer's next
// service.
func (h *MaintenanceHandler) RecommendHandler(c *gin.Context) {
	customerID := c.Param("customerId")
	serviceType := c.Query("service_type")

	recommendation, err := h.Scheduler.Recommend(c.Request.Context(), customerID, serviceType)
	if err != nil {
		if errors.Is(err, scheduling.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		getLogger(c).Error("recommendation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recommendation failed"})
		return
	}

	c.JSON(http.StatusOK, recommendation)
}

// OverviewHandler merges the customer profile, the prediction outputs and a
// weather recommendation for the predicted service date.
func (h *MaintenanceHandler) OverviewHandler(c *gin.Context) {
	customerID := c.Param("customerId")
	ctx := c.Request.Context()

	customer, err := h.Customers.GetByID(ctx, customerID)
	if err != nil {
		getLogger(c).Error("customer lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "customer lookup failed"})
		return
	}
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}

	maintenance, err := h.Predictions.MaintenancePrediction(ctx, customerID)
	if err != nil {
		getLogger(c).Error("prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}
	if maintenance == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no maintenance record for customer"})
		return
	}

	failure, err := h.Predictions.FailurePrediction(ctx, customerID)
	if err != nil {
		getLogger(c).Error("prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}
	efficiency, err := h.Predictions.EfficiencyAnalysis(ctx, customerID)
	if err != nil {
		getLogger(c).Error("prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}
	schedule, err := h.Predictions.PredictiveSchedule(ctx, customerID)
	if err != nil {
		getLogger(c).Error("prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}

	weather, err := h.Weather.Recommend(ctx, maintenance.NextServiceOptimal, addressRegion(customer.Address), services.DefaultFlexibilityDays)
	if err != nil {
		getLogger(c).Error("weather recommendation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "weather recommendation failed"})
		return
	}

	recommendations := append([]string{}, maintenance.RecommendedActions...)
	recommendations = append(recommendations, efficiency.Recommendations...)

	c.JSON(http.StatusOK, gin.H{
		"customer":        customer,
		"maintenance":     maintenance,
		"failure":         failure,
		"efficiency":      efficiency,
		"schedule":        schedule,
		"weather":         weather,
		"recommendations": recommendations,
	})
}

// DetailedScheduleHandler returns the scheduling deep-dive for a customer:
// weather-optimal dates, active alerts and the technician recommendation.
func (h *MaintenanceHandler) DetailedScheduleHandler(c *gin.Context) {
	customerID := c.Param("customerId")
	serviceType := c.Query("service_type")
	ctx := c.Request.Context()

	recommendation, err := h.Scheduler.Recommend(ctx, customerID, serviceType)
	if err != nil {
		if errors.Is(err, scheduling.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		getLogger(c).Error("recommendation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recommendation failed"})
		return
	}

	customer, err := h.Customers.GetByID(ctx, customerID)
	if err != nil || customer == nil {
		if err != nil {
			getLogger(c).Error("customer lookup failed", zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "customer lookup failed"})
		return
	}
	location := addressRegion(customer.Address)

	optimalDates, err := h.Weather.OptimalDates(ctx, location, 14)
	if err != nil {
		getLogger(c).Error("optimal date lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "optimal date lookup failed"})
		return
	}
	alerts, err := h.Weather.Alerts(ctx, location)
	if err != nil {
		getLogger(c).Error("alert lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "alert lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer_id":    customerID,
		"location":       location,
		"optimal_dates":  optimalDates,
		"alerts":         alerts,
		"recommendation": recommendation,
	})
}

// addressRegion pulls the region out of a free-text postal address. The
// region is the second comma-separated part when present.
func addressRegion(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) >= 2 {
		if region := strings.TrimSpace(parts[1]); region != "" {
			return region
		}
	}
	return scheduling.DefaultLocation
}

// UpdateStatusHandler sets a booking's lifecycle status.
func (h *MaintenanceHandler) UpdateStatusHandler(c *gin.Context) {
	bookingID := c.Param("bookingId")
	var input struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Scheduler.UpdateBookingStatus(c.Request.Context(), bookingID, input.Status, input.Notes)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, scheduling.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		default:
			getLogger(c).Error("status update failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "status update failed"})
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CancelBookingHandler cancels a booking.
func (h *MaintenanceHandler) CancelBookingHandler(c *gin.Context) {
	bookingID := c.Param("bookingId")
	reason := c.Query("reason")

	booking, err := h.Scheduler.CancelBooking(c.Request.Context(), bookingID, reason)
	if err != nil {
		if errors.Is(err, scheduling.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		getLogger(c).Error("cancellation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cancellation failed"})
		return
	}

	c.JSON(http.StatusOK, booking)
}
