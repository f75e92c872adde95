package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medhub/config"
	"medhub/cron"
	"medhub/database"
	appointmentRepoPkg "medhub/database/repository/appointment"
	availabilityRepoPkg "medhub/database/repository/availability"
	doctorRepoPkg "medhub/database/repository/doctor"
	patientRepoPkg "medhub/database/repository/patient"
	prescriptionRepoPkg "medhub/database/repository/prescription"
	"medhub/handlers"
	"medhub/routes"
	"medhub/services/appointment"
	"medhub/services/auth"
	"medhub/services/availability"
	"medhub/services/doctor"
	"medhub/services/notification"
	"medhub/services/patient"
	"medhub/services/prescription"
	"medhub/services/tasks"
	"medhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	patientRepo := patientRepoPkg.NewMongoPatientRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	prescriptionRepo := prescriptionRepoPkg.NewMongoPrescriptionRepo()

	// reminder queue client.
	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()

	// services.
	authService := &auth.DefaultAuthService{
		Doctors:  doctorRepo,
		Patients: patientRepo,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo: doctorRepo,
	}
	patientService := &patient.DefaultPatientService{
		Repo: patientRepo,
	}
	availabilityService := &availability.DefaultAvailabilityService{
		Repo:         availabilityRepo,
		Appointments: appointmentRepo,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:         appointmentRepo,
		Availability: availabilityRepo,
		Doctors:      doctorRepo,
		Patients:     patientRepo,
		Reminders:    &tasks.DefaultReminderScheduler{Client: reminderClient},
	}
	prescriptionService := &prescription.DefaultPrescriptionService{
		Repo: prescriptionRepo,
	}

	notificationService, err := notification.NewDefaultNotificationService(patientRepo, doctorRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		DoctorRepo:  doctorRepo,
		PatientRepo: patientRepo,

		Auth:          authService,
		Doctors:       doctorService,
		Patients:      patientService,
		Availability:  availabilityService,
		Appointments:  appointmentService,
		Prescriptions: prescriptionService,
	}

	// Register routes with the assembled handler bundle.
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
