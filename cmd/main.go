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

	changeAppointmentStatusHandler "github.com/chris030500/Barberia/internal/api/handlers/change_appointment_status"
	createAppointmentHandler "github.com/chris030500/Barberia/internal/api/handlers/create_appointment"
	createBlockHandler "github.com/chris030500/Barberia/internal/api/handlers/create_block"
	deleteAppointmentHandler "github.com/chris030500/Barberia/internal/api/handlers/delete_appointment"
	deleteBlockHandler "github.com/chris030500/Barberia/internal/api/handlers/delete_block"
	getAppointmentHandler "github.com/chris030500/Barberia/internal/api/handlers/get_appointment"
	getAvailabilitySummaryHandler "github.com/chris030500/Barberia/internal/api/handlers/get_availability_summary"
	getAvailableSlotsHandler "github.com/chris030500/Barberia/internal/api/handlers/get_available_slots"
	getBarberHandler "github.com/chris030500/Barberia/internal/api/handlers/get_barber"
	getWeeklyScheduleHandler "github.com/chris030500/Barberia/internal/api/handlers/get_weekly_schedule"
	listAppointmentsHandler "github.com/chris030500/Barberia/internal/api/handlers/list_appointments"
	listBarbersHandler "github.com/chris030500/Barberia/internal/api/handlers/list_barbers"
	listBlocksHandler "github.com/chris030500/Barberia/internal/api/handlers/list_blocks"
	listServicesHandler "github.com/chris030500/Barberia/internal/api/handlers/list_services"
	replaceWeeklyScheduleHandler "github.com/chris030500/Barberia/internal/api/handlers/replace_weekly_schedule"
	updateAppointmentHandler "github.com/chris030500/Barberia/internal/api/handlers/update_appointment"
	updateBlockHandler "github.com/chris030500/Barberia/internal/api/handlers/update_block"
	"github.com/chris030500/Barberia/internal/api/middleware"
	"github.com/chris030500/Barberia/internal/config"
	appointmentRepo "github.com/chris030500/Barberia/internal/infra/storage/appointment"
	barberRepo "github.com/chris030500/Barberia/internal/infra/storage/barber"
	blockRepo "github.com/chris030500/Barberia/internal/infra/storage/block"
	catalogRepo "github.com/chris030500/Barberia/internal/infra/storage/catalog"
	scheduleRepo "github.com/chris030500/Barberia/internal/infra/storage/schedule"
	appointmentsService "github.com/chris030500/Barberia/internal/service/appointments"
	availabilityService "github.com/chris030500/Barberia/internal/service/availability"
	blocksService "github.com/chris030500/Barberia/internal/service/blocks"
	catalogService "github.com/chris030500/Barberia/internal/service/catalog"
	scheduleService "github.com/chris030500/Barberia/internal/service/schedule"
	createAppointmentUC "github.com/chris030500/Barberia/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/chris030500/Barberia/internal/usecase/get_available_slots"
	updateAppointmentUC "github.com/chris030500/Barberia/internal/usecase/update_appointment"
	"github.com/chris030500/Barberia/pkg/dbmetrics"
	"github.com/chris030500/Barberia/pkg/logger"
	"github.com/chris030500/Barberia/pkg/metrics"
	"github.com/chris030500/Barberia/pkg/simpletxmanager"
	"github.com/chris030500/Barberia/pkg/txmanager"
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

	log.Info("Starting Barberia backend...")
	log.Info("Configuration loaded from config.toml")

	loc, err := cfg.Agenda.Location()
	if err != nil {
		log.Fatal("Failed to resolve agenda timezone: %v", err)
	}
	log.Info("Agenda timezone: %s", cfg.Agenda.Timezone)

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

	// Repositories and transaction manager, instrumented when metrics are on
	var (
		appointmentRepository *appointmentRepo.Repository
		blockRepository       *blockRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		barberRepository      *barberRepo.Repository
		catalogRepository     *catalogRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		barberRepository = barberRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		barberRepository = barberRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		barberRepository,
		catalogRepository,
		scheduleRepository,
		blockRepository,
		appointmentRepository,
		getAvailableSlotsUC.Settings{
			Location:         loc,
			SlotSizeMin:      cfg.Agenda.SlotSizeMin,
			BufferBetweenMin: cfg.Agenda.BufferBetweenMin,
			MinAdvanceMin:    cfg.Agenda.MinAdvanceMin,
			MaxAdvanceDays:   cfg.Agenda.MaxAdvanceDays,
		},
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		barberRepository,
		catalogRepository,
		appointmentRepository,
		txMgr,
		log,
	)

	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		catalogRepository,
		appointmentRepository,
		txMgr,
		log,
	)

	// Services
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)
	blocksSvc := blocksService.NewService(blockRepository, appointmentRepository, barberRepository, txMgr, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, barberRepository, txMgr, log)
	catalogSvc := catalogService.NewService(barberRepository, catalogRepository, log)
	availabilitySvc := availabilityService.NewService(
		getAvailableSlotsUseCase,
		barberRepository,
		catalogRepository,
		scheduleRepository,
		blockRepository,
		appointmentRepository,
		cfg.Agenda.MaxAdvanceDays,
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	changeAppointmentStatus := changeAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	getWeeklySchedule := getWeeklyScheduleHandler.NewHandler(scheduleSvc, log)
	replaceWeeklySchedule := replaceWeeklyScheduleHandler.NewHandler(scheduleSvc, log)
	listBlocks := listBlocksHandler.NewHandler(blocksSvc, log)
	createBlock := createBlockHandler.NewHandler(blocksSvc, log)
	updateBlock := updateBlockHandler.NewHandler(blocksSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(blocksSvc, log)
	getAvailabilitySummary := getAvailabilitySummaryHandler.NewHandler(availabilitySvc, log)
	listBarbers := listBarbersHandler.NewHandler(catalogSvc, log)
	getBarber := getBarberHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Catalog
	api.HandleFunc("/barberos", listBarbers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barberos/{barberoId}", getBarber.Handle).Methods(http.MethodGet)
	api.HandleFunc("/servicios", listServices.Handle).Methods(http.MethodGet)

	// Availability
	api.HandleFunc("/barberos/{barberoId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barberos/{barberoId}/disponibilidad", getAvailabilitySummary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barberos/{barberoId}/horario-semanal", getWeeklySchedule.Handle).Methods(http.MethodGet)

	// Clients book without an account
	api.HandleFunc("/citas", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Citas management
	protected.HandleFunc("/citas", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/citas/{citaId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/citas/{citaId}", updateAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/citas/{citaId}/estado", changeAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/citas/{citaId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// Horario semanal
	protected.HandleFunc("/barberos/{barberoId}/horario-semanal", replaceWeeklySchedule.Handle).Methods(http.MethodPut)

	// Bloqueos
	protected.HandleFunc("/barberos/{barberoId}/bloqueos", listBlocks.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barberos/{barberoId}/bloqueos", createBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bloqueos/{bloqueoId}", updateBlock.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bloqueos/{bloqueoId}", deleteBlock.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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
