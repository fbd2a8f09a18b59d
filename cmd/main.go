package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/glamtime/SalonBookingService/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/glamtime/SalonBookingService/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/glamtime/SalonBookingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/glamtime/SalonBookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/glamtime/SalonBookingService/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/glamtime/SalonBookingService/internal/api/handlers/get_client_appointments"
	getOperatorHandler "github.com/glamtime/SalonBookingService/internal/api/handlers/get_operator"
	getScheduleHandler "github.com/glamtime/SalonBookingService/internal/api/handlers/get_schedule"
	getServiceHandler "github.com/glamtime/SalonBookingService/internal/api/handlers/get_service"
	listOperatorsHandler "github.com/glamtime/SalonBookingService/internal/api/handlers/list_operators"
	listServicesHandler "github.com/glamtime/SalonBookingService/internal/api/handlers/list_services"
	rescheduleAppointmentHandler "github.com/glamtime/SalonBookingService/internal/api/handlers/reschedule_appointment"
	"github.com/glamtime/SalonBookingService/internal/api/middleware"
	"github.com/glamtime/SalonBookingService/internal/auth"
	"github.com/glamtime/SalonBookingService/internal/config"
	appointmentRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/appointment"
	operatorRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/operator"
	serviceRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/service"
	userRepo "github.com/glamtime/SalonBookingService/internal/infra/storage/user"
	appointmentsService "github.com/glamtime/SalonBookingService/internal/service/appointments"
	catalogService "github.com/glamtime/SalonBookingService/internal/service/catalog"
	createAppointmentUC "github.com/glamtime/SalonBookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/glamtime/SalonBookingService/internal/usecase/get_available_slots"
	rescheduleAppointmentUC "github.com/glamtime/SalonBookingService/internal/usecase/reschedule_appointment"
	"github.com/glamtime/SalonBookingService/pkg/dbmetrics"
	"github.com/glamtime/SalonBookingService/pkg/logger"
	"github.com/glamtime/SalonBookingService/pkg/metrics"
	"github.com/glamtime/SalonBookingService/pkg/simpletxmanager"
	"github.com/glamtime/SalonBookingService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SalonBookingService...")
	log.Info("Configuration loaded from config.toml")

	hours, err := cfg.Schedule.BusinessHours()
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}
	log.Info("Business hours: %s-%s, break %s-%s",
		hours.OpenTime, hours.CloseTime, hours.BreakStart, hours.BreakEnd)

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Transaction manager interface shared by the booking usecases.
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		appointmentRepository *appointmentRepo.Repository
		serviceRepository     *serviceRepo.Repository
		operatorRepository    *operatorRepo.Repository
		userRepository        *userRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		operatorRepository = operatorRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		operatorRepository = operatorRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	authorizer := auth.NewAuthorizer(userRepository, log)

	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		authorizer,
		log,
	)
	catalogSvc := catalogService.NewService(
		serviceRepository,
		operatorRepository,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		operatorRepository,
		hours,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		operatorRepository,
		userRepository,
		authorizer,
		txMgr,
		hours,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		operatorRepository,
		authorizer,
		txMgr,
		hours,
		log,
	)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	listOperators := listOperatorsHandler.NewHandler(catalogSvc, log)
	getOperator := getOperatorHandler.NewHandler(catalogSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(appointmentsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes (no authentication)
	api.HandleFunc("/salon/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/operators", listOperators.Handle).Methods(http.MethodGet)
	api.HandleFunc("/operators/{operatorId}", getOperator.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
