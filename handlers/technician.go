package handlers

import (
	"errors"
	"net/http"

	technicianRepo "boilertech/database/repository/technician"
	"boilertech/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TechnicianHandler exposes roster and day-sheet endpoints.
type TechnicianHandler struct {
	Repo      technicianRepo.TechnicianRepository
	Scheduler scheduling.SchedulingService
}

func NewTechnicianHandler(repo technicianRepo.TechnicianRepository, scheduler scheduling.SchedulingService) *TechnicianHandler {
	return &TechnicianHandler{Repo: repo, Scheduler: scheduler}
}

func (h *TechnicianHandler) ListHandler(c *gin.Context) {
	technicians, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		getLogger(c).Error("technician listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list technicians"})
		return
	}
	c.JSON(http.StatusOK, technicians)
}

func (h *TechnicianHandler) GetHandler(c *gin.Context) {
	technician, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		getLogger(c).Error("technician lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load technician"})
		return
	}
	if technician == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "technician not found"})
		return
	}
	c.JSON(http.StatusOK, technician)
}

// ScheduleHandler returns a technician's day sheet for a date.
func (h *TechnicianHandler) ScheduleHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	schedule, err := h.Scheduler.TechnicianSchedule(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		if errors.Is(err, scheduling.ErrTechnicianNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "technician not found"})
			return
		}
		getLogger(c).Error("schedule lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build schedule"})
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// PerformanceHandler returns roster-derived performance metrics.
func (h *TechnicianHandler) PerformanceHandler(c *gin.Context) {
	performance, err := h.Scheduler.TechnicianPerformance(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, scheduling.ErrTechnicianNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "technician not found"})
			return
		}
		getLogger(c).Error("performance lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to derive performance"})
		return
	}
	c.JSON(http.StatusOK, performance)
}
