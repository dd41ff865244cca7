package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-BookingFront/internal/api/handlers/create_booking"
	createScheduleHandler "github.com/m04kA/SMC-BookingFront/internal/api/handlers/create_schedule"
	createServiceHandler "github.com/m04kA/SMC-BookingFront/internal/api/handlers/create_service"
	getStateHandler "github.com/m04kA/SMC-BookingFront/internal/api/handlers/get_state"
	refreshSlotsHandler "github.com/m04kA/SMC-BookingFront/internal/api/handlers/refresh_slots"
	scheduleDraftHandler "github.com/m04kA/SMC-BookingFront/internal/api/handlers/schedule_draft"
	updateSelectionHandler "github.com/m04kA/SMC-BookingFront/internal/api/handlers/update_selection"
	"github.com/m04kA/SMC-BookingFront/internal/api/middleware"
	"github.com/m04kA/SMC-BookingFront/internal/config"
	"github.com/m04kA/SMC-BookingFront/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BookingFront/internal/integrations/backendapi"
	"github.com/m04kA/SMC-BookingFront/internal/service/catalog"
	"github.com/m04kA/SMC-BookingFront/internal/session"
	createBookingUC "github.com/m04kA/SMC-BookingFront/internal/usecase/create_booking"
	createScheduleUC "github.com/m04kA/SMC-BookingFront/internal/usecase/create_schedule"
	createServiceUC "github.com/m04kA/SMC-BookingFront/internal/usecase/create_service"
	getSlotsUC "github.com/m04kA/SMC-BookingFront/internal/usecase/get_slots"
	loadCatalogUC "github.com/m04kA/SMC-BookingFront/internal/usecase/load_catalog"
	"github.com/m04kA/SMC-BookingFront/pkg/logger"
	"github.com/m04kA/SMC-BookingFront/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BookingFront...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент бэкенда
	backendClient := backendapi.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
	)
	log.Info("Backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Инициализируем коллекции каталога и машину состояний выбора
	serviceCollection := memory.NewServiceCollection()
	bookingCollection := memory.NewBookingCollection()
	sessionMachine := session.NewMachine()

	// Инициализируем сервисы
	catalogSvc := catalog.NewService(serviceCollection, bookingCollection, log)

	// Инициализируем use cases
	loadCatalogUseCase := loadCatalogUC.NewUseCase(backendClient, serviceCollection, bookingCollection, log)
	getSlotsUseCase := getSlotsUC.NewUseCase(sessionMachine, backendClient, log)
	createServiceUseCase := createServiceUC.NewUseCase(sessionMachine, backendClient, serviceCollection, log)
	createScheduleUseCase := createScheduleUC.NewUseCase(sessionMachine, backendClient, log)
	createBookingUseCase := createBookingUC.NewUseCase(sessionMachine, backendClient, bookingCollection, log)

	// Начальная загрузка каталога: услуги и сегодняшние бронирования.
	// Частичная неудача не фатальна: сервис стартует с тем, что удалось получить.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), time.Duration(cfg.Backend.Timeout)*time.Second)
	if result, err := loadCatalogUseCase.Execute(loadCtx); err != nil {
		log.Warn("Initial catalog load incomplete: %v", err)
	} else {
		log.Info("Initial catalog load complete: %d services, %d bookings", result.Services, result.Bookings)
	}
	cancelLoad()

	// Инициализируем handlers
	getState := getStateHandler.NewHandler(sessionMachine, catalogSvc, log)
	updateSelection := updateSelectionHandler.NewHandler(sessionMachine, log)
	scheduleDraft := scheduleDraftHandler.NewHandler(sessionMachine, log)
	refreshSlots := refreshSlotsHandler.NewHandler(getSlotsUseCase, log)
	createService := createServiceHandler.NewHandler(createServiceUseCase, log)
	createSchedule := createScheduleHandler.NewHandler(createScheduleUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Снимок состояния для поверхностей интерфейса
	api.HandleFunc("/state", getState.Handle).Methods(http.MethodGet)

	// Переходы выбора: услуга, дата, слот, модальное окно
	api.HandleFunc("/selection", updateSelection.Handle).Methods(http.MethodPut)

	// Черновик окон расписания
	api.HandleFunc("/schedule/windows", scheduleDraft.HandleAdd).Methods(http.MethodPost)
	api.HandleFunc("/schedule/windows/{index}", scheduleDraft.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/schedule/windows/{index}", scheduleDraft.HandleRemove).Methods(http.MethodDelete)

	// Запрос доступных слотов для текущего выбора
	api.HandleFunc("/slots/refresh", refreshSlots.Handle).Methods(http.MethodPost)

	// Три потока записи
	api.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
