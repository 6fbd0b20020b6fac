package routes

import (
	"WardShift/cache"
	"WardShift/config"
	"WardShift/controllers"
	"WardShift/handlers"
	"WardShift/middlewares"
	"WardShift/repositories"
	"WardShift/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	taskRepo := repositories.NewTaskRepository(cache)
	logRepo := repositories.NewActivityLogRepository(cache)
	patientRepo := repositories.NewPatientRepository(cache, taskRepo, logRepo)
	shiftRepo := repositories.NewShiftRepository(cache)
	bedRepo := repositories.NewBedRepository(cache)
	userRepo := repositories.NewUserRepository(db, cache)

	userService := services.NewUserService(userRepo)
	patientService := services.NewPatientService(patientRepo, taskRepo, logRepo)
	taskService := services.NewTaskService(taskRepo, logRepo)
	shiftService := services.NewShiftService(shiftRepo, logRepo)
	bedService := services.NewBedService(bedRepo, logRepo)
	reportService := services.NewReportService(shiftRepo, patientRepo)

	authHandler := handlers.NewAuthHandler(userService)
	patientHandler := handlers.NewPatientHandler(patientService, userService)
	taskHandler := handlers.NewTaskHandler(taskService, userService)
	shiftHandler := handlers.NewShiftHandler(shiftService, userService)
	bedHandler := handlers.NewBedHandler(bedService, userService)
	activityHandler := handlers.NewActivityHandler(logRepo)
	reportHandler := handlers.NewReportHandler(reportService)
	referenceHandler := handlers.NewReferenceHandler()

	// Ward routes require an authenticated staff member
	ward := router.Group("", middlewares.TokenAuthMiddleware())

	// Register routes
	controllers.SetupWardRoutes(
		ward,
		shiftHandler,
		patientHandler,
		taskHandler,
		bedHandler,
		activityHandler,
		reportHandler,
		referenceHandler,
	)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
