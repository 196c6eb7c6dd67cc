package handlers

import (
	"net/http"

	customerRepo "boilertech/database/repository/customer"
	"boilertech/models"
	"boilertech/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerHandler exposes customer management endpoints.
type CustomerHandler struct {
	Repo      customerRepo.CustomerRepository
	Scheduler scheduling.SchedulingService
}

func NewCustomerHandler(repo customerRepo.CustomerRepository, scheduler scheduling.SchedulingService) *CustomerHandler {
	return &CustomerHandler{Repo: repo, Scheduler: scheduler}
}

func (h *CustomerHandler) ListHandler(c *gin.Context) {
	customers, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		getLogger(c).Error("customer listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) GetHandler(c *gin.Context) {
	customer, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		getLogger(c).Error("customer lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customer"})
		return
	}
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) CreateHandler(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}

	if err := h.Repo.Create(c.Request.Context(), &customer); err != nil {
		getLogger(c).Error("customer creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) UpdateHandler(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	customer.ID = c.Param("id")

	existing, err := h.Repo.GetByID(c.Request.Context(), customer.ID)
	if err != nil {
		getLogger(c).Error("customer lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customer"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}

	if err := h.Repo.Update(c.Request.Context(), &customer); err != nil {
		getLogger(c).Error("customer update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update customer"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// BookingsHandler lists a customer's bookings.
func (h *CustomerHandler) BookingsHandler(c *gin.Context) {
	bookings, err := h.Scheduler.CustomerBookings(c.Request.Context(), c.Param("id"))
	if err != nil {
		getLogger(c).Error("booking listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}
