package routes

import (
	"net/http"
	"time"

	"boilertech/handlers"
	"boilertech/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers wired in main.
type HandlerBundle struct {
	Maintenance *handlers.MaintenanceHandler
	Weather     *handlers.WeatherHandler
	Customers   *handlers.CustomerHandler
	Technicians *handlers.TechnicianHandler
}

// RegisterMaintenanceRoutes registers the scheduling and prediction endpoints.
func RegisterMaintenanceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/maintenance")
	{
		api.Use(middleware.APIKeyAuthMiddleware())
		api.POST("/schedule", hb.Maintenance.ScheduleHandler)
		api.POST("/emergency", hb.Maintenance.EmergencyHandler)
		api.GET("/recommend/:customerId", hb.Maintenance.RecommendHandler)
		api.GET("/overview/:customerId", hb.Maintenance.OverviewHandler)
		api.GET("/schedule/:customerId", hb.Maintenance.DetailedScheduleHandler)
		api.PATCH("/bookings/:bookingId/status", hb.Maintenance.UpdateStatusHandler)
		api.DELETE("/bookings/:bookingId", hb.Maintenance.CancelBookingHandler)
	}
}

// RegisterWeatherRoutes registers the forecast suitability endpoints.
func RegisterWeatherRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/weather")
	{
		api.Use(middleware.APIKeyAuthMiddleware())
		api.GET("/recommend/:location", hb.Weather.RecommendHandler)
		api.GET("/alerts/:location", hb.Weather.AlertsHandler)
		api.GET("/summary/:location", hb.Weather.SummaryHandler)
	}
}

// RegisterCustomerRoutes registers customer management endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.Use(middleware.APIKeyAuthMiddleware())
		api.GET("", hb.Customers.ListHandler)
		api.POST("", hb.Customers.CreateHandler)
		api.GET("/:id", hb.Customers.GetHandler)
		api.PUT("/:id", hb.Customers.UpdateHandler)
		api.GET("/:id/bookings", hb.Customers.BookingsHandler)
	}
}

// RegisterTechnicianRoutes registers roster endpoints.
func RegisterTechnicianRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/technicians")
	{
		api.Use(middleware.APIKeyAuthMiddleware())
		api.GET("", hb.Technicians.ListHandler)
		api.GET("/:id", hb.Technicians.GetHandler)
		api.GET("/:id/schedule", hb.Technicians.ScheduleHandler)
		api.GET("/:id/performance", hb.Technicians.PerformanceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "BoilerTech scheduling service"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterMaintenanceRoutes(r, hb)
	RegisterWeatherRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterTechnicianRoutes(r, hb)
	RegisterHealthRoute(r)
}
