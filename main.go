package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boilertech/config"
	"boilertech/cron"
	"boilertech/database"
	bookingRepoPkg "boilertech/database/repository/booking"
	customerRepoPkg "boilertech/database/repository/customer"
	forecastRepoPkg "boilertech/database/repository/forecast"
	recordsRepoPkg "boilertech/database/repository/records"
	technicianRepoPkg "boilertech/database/repository/technician"
	"boilertech/handlers"
	"boilertech/middleware"
	"boilertech/routes"
	"boilertech/services"
	"boilertech/services/intelligence"
	"boilertech/services/notification"
	"boilertech/services/scheduling"
	"boilertech/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	technicianRepo := technicianRepoPkg.NewMongoTechnicianRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	forecastRepo := forecastRepoPkg.NewMongoForecastRepo()
	recordRepo := recordsRepoPkg.NewMongoRecordRepo()

	// services.
	availabilitySvc := &services.DefaultAvailabilityService{}
	matchingSvc := &services.DefaultMatchingService{
		TechnicianRepo: technicianRepo,
		Availability:   availabilitySvc,
		CacheClient:    utils.GetCacheClient(),
	}
	weatherSvc := &services.DefaultWeatherService{
		ForecastRepo: forecastRepo,
	}

	notifierSvc, err := notification.NewEmailService(context.Background(),
		config.AppConfig.AWSRegion, config.AppConfig.EmailFrom)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize email service: %v", err)
	}

	reminderQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderQueue.Close()
	cron.InitReminderWorker(notifierSvc)

	schedulingSvc := &scheduling.DefaultSchedulingService{
		CustomerRepo:   customerRepo,
		TechnicianRepo: technicianRepo,
		BookingRepo:    bookingRepo,
		Matching:       matchingSvc,
		Weather:        weatherSvc,
		Availability:   availabilitySvc,
		Notifier:       notifierSvc,
		ReminderQueue:  reminderQueue,
	}
	predictionSvc := &intelligence.RuleBasedPredictionService{
		RecordRepo:   recordRepo,
		CustomerRepo: customerRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Maintenance: handlers.NewMaintenanceHandler(schedulingSvc, predictionSvc, weatherSvc, customerRepo),
		Weather:     handlers.NewWeatherHandler(weatherSvc),
		Customers:   handlers.NewCustomerHandler(customerRepo, schedulingSvc),
		Technicians: handlers.NewTechnicianHandler(technicianRepo, schedulingSvc),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
