package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clinisalud/portal-backend/config"
	deliveryHttp "github.com/clinisalud/portal-backend/internal/delivery/http"
	"github.com/clinisalud/portal-backend/internal/delivery/http/handler"
	"github.com/clinisalud/portal-backend/internal/delivery/http/middleware"
	"github.com/clinisalud/portal-backend/internal/infrastructure/cache"
	"github.com/clinisalud/portal-backend/internal/infrastructure/database"
	"github.com/clinisalud/portal-backend/internal/repository"
	"github.com/clinisalud/portal-backend/internal/usecase"
	"github.com/clinisalud/portal-backend/pkg/jwt"
	"github.com/clinisalud/portal-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	personRepo := repository.NewPersonRepository()
	patientRepo := repository.NewPatientRepository()
	specialtyRepo := repository.NewSpecialtyRepository()
	specialistRepo := repository.NewSpecialistRepository()
	workScheduleRepo := repository.NewWorkScheduleRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	statusChangeRepo := repository.NewStatusChangeRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, personRepo, patientRepo, jwtService, redisClient)
	profileUsecase := usecase.NewProfileUsecase(db, log, userRepo, personRepo, patientRepo)
	directoryUsecase := usecase.NewDirectoryUsecase(db, log, specialtyRepo, specialistRepo)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, specialistRepo, workScheduleRepo)
	slotUsecase := usecase.NewSlotUsecase(db, log, specialistRepo, workScheduleRepo, cfg.Booking.SlotStepMinutes)
	bookingUsecase := usecase.NewBookingUsecase(db, log, appointmentRepo, statusChangeRepo, workScheduleRepo, specialtyRepo, specialistRepo, personRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	directoryHandler := handler.NewDirectoryHandler(directoryUsecase)
	scheduleHandler := handler.NewScheduleHandler(availabilityUsecase, slotUsecase)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, profileHandler, directoryHandler, scheduleHandler, bookingHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
