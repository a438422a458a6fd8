package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-LabBookingService/internal/api"
	bookingReportHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/booking_report"
	decideBookingHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/decide_booking"
	equipmentStatsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/equipment_stats"
	getAvailabilityHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/get_booking"
	getEquipmentHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/get_equipment"
	listBookingsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/list_bookings"
	listEquipmentHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/list_equipment"
	listSupervisorsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/list_supervisors"
	manageSettingsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/manage_settings"
	requestBookingHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/request_booking"
	updateEquipmentStatusHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/update_equipment_status"
	"github.com/m04kA/SMC-LabBookingService/internal/config"
	"github.com/m04kA/SMC-LabBookingService/internal/infra/seed"
	bookingRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/booking"
	directoryRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/directory"
	rulesRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/rules"
	"github.com/m04kA/SMC-LabBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-LabBookingService/internal/service/bookings"
	equipmentService "github.com/m04kA/SMC-LabBookingService/internal/service/equipment"
	reportsService "github.com/m04kA/SMC-LabBookingService/internal/service/reports"
	settingsService "github.com/m04kA/SMC-LabBookingService/internal/service/settings"
	supervisorsService "github.com/m04kA/SMC-LabBookingService/internal/service/supervisors"
	decideBookingUC "github.com/m04kA/SMC-LabBookingService/internal/usecase/decide_booking"
	getAvailabilityUC "github.com/m04kA/SMC-LabBookingService/internal/usecase/get_availability"
	requestBookingUC "github.com/m04kA/SMC-LabBookingService/internal/usecase/request_booking"
	"github.com/m04kA/SMC-LabBookingService/internal/worker/completion"
	"github.com/m04kA/SMC-LabBookingService/pkg/keylock"
	"github.com/m04kA/SMC-LabBookingService/pkg/logger"
	"github.com/m04kA/SMC-LabBookingService/pkg/metrics"
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// labClock текущее время в часовом поясе лаборатории
type labClock struct {
	loc *time.Location
}

func (c labClock) Now() time.Time {
	return time.Now().In(c.loc)
}

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

	log.Info("Starting SMC-LabBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики. Если выключены, счетчики пишутся в приватный registry и не публикуются
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		metricsCollector = metrics.NewWithRegisterer(cfg.Metrics.ServiceName, prometheus.NewRegistry())
	}

	clock := labClock{loc: cfg.Location()}
	ctx := context.Background()

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepositoryWithClock(clock.Now)
	directoryRepository := directoryRepo.NewRepository()
	rulesRepository := rulesRepo.NewRepository()

	// Загружаем справочники и каталог слотов
	seedData, err := config.LoadSeed(cfg.Seed.Path)
	if err != nil {
		log.Fatal("Failed to load seed data: %v", err)
	}
	catalog, err := seed.Load(ctx, seedData, directoryRepository, rulesRepository, log)
	if err != nil {
		log.Fatal("Failed to apply seed data: %v", err)
	}

	// Инициализируем блокировки слотов
	var locker keylock.Locker
	switch cfg.Lock.Backend {
	case config.LockBackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Address, err)
		}
		locker = keylock.NewRedisLocker(redisClient, cfg.LockTTL(), cfg.LockRetry())
		log.Info("Redis slot locker initialized (addr=%s, db=%d)", cfg.Redis.Address, cfg.Redis.DB)
	default:
		locker = keylock.NewLocalLocker()
		log.Info("In-process slot locker initialized")
	}
	locker = keylock.WithWaitTimeout(locker, cfg.LockTimeout())

	// Инициализируем сервисы
	resolver := availability.NewResolver(
		rulesRepository,
		catalog,
		directoryRepository,
		bookingRepository,
		types.TimeString(cfg.Policy.HalfDayCutoff),
		metricsCollector,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		directoryRepository,
		catalog,
		metricsCollector,
		clock,
		log,
	)
	equipmentSvc := equipmentService.NewService(directoryRepository, log)
	settingsSvc := settingsService.NewService(rulesRepository, log)
	reportsSvc := reportsService.NewService(bookingRepository, directoryRepository, log)
	supervisorsSvc := supervisorsService.NewService(directoryRepository, log)

	// Инициализируем use cases
	requestBookingUseCase := requestBookingUC.NewUseCase(
		bookingRepository,
		resolver,
		directoryRepository,
		locker,
		metricsCollector,
		clock,
		log,
	)
	decideBookingUseCase := decideBookingUC.NewUseCase(
		bookingRepository,
		locker,
		metricsCollector,
		clock,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(resolver, directoryRepository, log)

	// Инициализируем handlers и роутер
	handlers := api.Handlers{
		RequestBooking:        requestBookingHandler.NewHandler(requestBookingUseCase, log),
		DecideBooking:         decideBookingHandler.NewHandler(decideBookingUseCase, log),
		GetBooking:            getBookingHandler.NewHandler(bookingSvc, log),
		ListBookings:          listBookingsHandler.NewHandler(bookingSvc, log),
		GetAvailability:       getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log),
		ListEquipment:         listEquipmentHandler.NewHandler(equipmentSvc, log),
		EquipmentStats:        equipmentStatsHandler.NewHandler(equipmentSvc, log),
		GetEquipment:          getEquipmentHandler.NewHandler(equipmentSvc, log),
		UpdateEquipmentStatus: updateEquipmentStatusHandler.NewHandler(equipmentSvc, log),
		Settings:              manageSettingsHandler.NewHandler(settingsSvc, log),
		BookingReport:         bookingReportHandler.NewHandler(reportsSvc, log),
		ListSupervisors:       listSupervisorsHandler.NewHandler(supervisorsSvc, log),
	}

	metricsOpts := api.MetricsOptions{Path: cfg.Metrics.Path}
	if cfg.Metrics.Enabled {
		metricsOpts.Collector = metricsCollector
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r := api.NewRouter(handlers, metricsOpts)

	// Запускаем фоновое завершение прошедших бронирований
	var completionWorker *completion.Worker
	if cfg.Completion.Enabled {
		completionWorker = completion.NewWorker(bookingSvc, cfg.CompletionInterval(), clock, log)
		completionWorker.Start(ctx)
		log.Info("Completion worker started (interval=%s)", cfg.CompletionInterval())
	}

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

	if completionWorker != nil {
		completionWorker.Stop()
		log.Info("Completion worker stopped")
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
