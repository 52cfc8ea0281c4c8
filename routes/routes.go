package routes

import (
	"CarePortal/cache"
	"CarePortal/config"
	"CarePortal/controllers"
	"CarePortal/handlers"
	"CarePortal/middlewares"
	"CarePortal/repositories"
	"CarePortal/services"
	"CarePortal/sessions"
	"CarePortal/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB, mailer utils.Mailer) (http.Handler, error) {
	tokens, err := utils.NewTokenManager(config.SymmetricKey, config.SessionMaxAge)
	if err != nil {
		return nil, fmt.Errorf("failed to create session token manager: %w", err)
	}
	secureCookie := !config.IsDev()

	// Initialize repositories, services, and handlers
	userRepo := repositories.NewUserRepository(db)
	patientRepo := repositories.NewPatientRepository(db)
	doctorRepo := repositories.NewDoctorRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)
	medicalRecordRepo := repositories.NewMedicalRecordRepository(db)
	prescriptionRepo := repositories.NewPrescriptionRepository(db)
	dashboardRepo := repositories.NewDashboardRepository(db)

	authService := services.NewAuthService(userRepo)
	sessionService := services.NewSessionService(
		sessions.NewRedisStore(cache, config.SessionIdleTimeout),
		tokens,
		authService,
		config.RoleRecheckInterval,
	)
	notifier := services.NewNotifier(mailer)

	authHandler := handlers.NewAuthHandler(authService, sessionService, secureCookie)
	dashboardHandler := handlers.NewDashboardHandler(services.NewDashboardService(dashboardRepo, doctorRepo, patientRepo), sessionService, secureCookie)
	appointmentHandler := handlers.NewAppointmentHandler(services.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo, notifier))
	doctorHandler := handlers.NewDoctorHandler(services.NewDoctorService(doctorRepo, userRepo))
	patientHandler := handlers.NewPatientHandler(services.NewPatientService(patientRepo, userRepo))
	medicalRecordHandler := handlers.NewMedicalRecordHandler(services.NewMedicalRecordService(medicalRecordRepo, appointmentRepo, patientRepo, doctorRepo))
	prescriptionHandler := handlers.NewPrescriptionHandler(services.NewPrescriptionService(prescriptionRepo, medicalRecordRepo, patientRepo, doctorRepo))

	router := gin.New()
	router.Use(middlewares.RecoveryMiddleware())
	router.Use(middlewares.LoggingMiddleware())

	if len(config.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     config.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: config.RateLimitRPS,
		Burst:             config.RateLimitBurst,
	}))

	router.Use(middlewares.SessionMiddleware(sessionService, secureCookie))

	loginLimiter := middlewares.NewClientRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: config.LoginRateLimitRPS,
		Burst:             config.LoginRateLimitBurst,
	})

	controllers.SetupRootRoute(router)
	controllers.NewAuthController(authHandler, loginLimiter).RegisterRoutes(router)
	controllers.SetupDashboardRoutes(router, dashboardHandler)
	controllers.SetupClinicRoutes(router, appointmentHandler, doctorHandler, patientHandler, medicalRecordHandler, prescriptionHandler)

	return router, nil
}
