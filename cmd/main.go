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

	findFreeRoomsHandler "github.com/m04kA/SMC-RoomFinderService/internal/api/handlers/find_free_rooms"
	getBuildingsHandler "github.com/m04kA/SMC-RoomFinderService/internal/api/handlers/get_buildings"
	"github.com/m04kA/SMC-RoomFinderService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomFinderService/internal/config"
	"github.com/m04kA/SMC-RoomFinderService/internal/infra/catalog"
	"github.com/m04kA/SMC-RoomFinderService/internal/infra/schedulecache"
	timetableClient "github.com/m04kA/SMC-RoomFinderService/internal/integrations/timetable"
	findFreeRoomsUC "github.com/m04kA/SMC-RoomFinderService/internal/usecase/find_free_rooms"
	getBuildingsUC "github.com/m04kA/SMC-RoomFinderService/internal/usecase/get_buildings"
	"github.com/m04kA/SMC-RoomFinderService/pkg/logger"
	"github.com/m04kA/SMC-RoomFinderService/pkg/metrics"
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

	log.Info("Starting SMC-RoomFinderService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем каталог комнат - без каталога сервис работать не может
	roomCatalog, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		log.Fatal("Failed to load room catalog: %v", err)
	}
	log.Info("Room catalog loaded from %s (%d rooms, %d buildings)",
		cfg.Catalog.File, roomCatalog.Len(), len(roomCatalog.BuildingNames()))

	// Инициализируем клиента сервиса расписаний
	client := timetableClient.NewClient(
		cfg.Timetable.URL,
		time.Duration(cfg.Timetable.Timeout)*time.Second,
		log,
	)
	log.Info("Timetable client initialized (url=%s, timeout=%ds)",
		cfg.Timetable.URL, cfg.Timetable.Timeout)

	// Кеш расписаний живет все время жизни процесса
	scheduleCache := schedulecache.New()

	// Метрики resolver-а: настоящие или заглушка
	var resolverMetrics findFreeRoomsUC.Metrics = findFreeRoomsUC.NoopMetrics{}
	if cfg.Metrics.Enabled {
		resolverMetrics = metricsCollector
	}

	// Инициализируем use cases
	findFreeRoomsUseCase := findFreeRoomsUC.NewUseCase(
		roomCatalog,
		scheduleCache,
		client,
		resolverMetrics,
		cfg.Resolver.MaxConcurrentFetches,
		time.Duration(cfg.Resolver.PacingDelayMs)*time.Millisecond,
		log,
	)
	getBuildingsUseCase := getBuildingsUC.NewUseCase(roomCatalog, log)

	// Инициализируем handlers
	findFreeRooms := findFreeRoomsHandler.NewHandler(findFreeRoomsUseCase, log)
	getBuildings := getBuildingsHandler.NewHandler(getBuildingsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.AccessLog(log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Поиск свободных комнат здания на запрошенное окно времени
	api.HandleFunc("/free-rooms", findFreeRooms.Handle).Methods(http.MethodPost)

	// Список зданий каталога
	api.HandleFunc("/buildings", getBuildings.Handle).Methods(http.MethodGet)

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
