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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createSlotHandler "github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers/create_slot"
	decrementHandler "github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers/decrement_inventory"
	decrementLockedHandler "github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers/decrement_inventory_locked"
	deleteSlotHandler "github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers/delete_slot"
	detectConflictsHandler "github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers/detect_conflicts"
	getSlotHandler "github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers/get_slot"
	incrementHandler "github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers/increment_inventory"
	removeItemHandler "github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers/remove_item"
	rescheduleItemHandler "github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers/reschedule_item"
	resolveConflictHandler "github.com/5n10sndkts-eng/Pulau-sub002/internal/api/handlers/resolve_conflict"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/api/middleware"
	"github.com/5n10sndkts-eng/Pulau-sub002/internal/config"
	auditRepo "github.com/5n10sndkts-eng/Pulau-sub002/internal/infra/storage/audit"
	bookingRepo "github.com/5n10sndkts-eng/Pulau-sub002/internal/infra/storage/booking"
	slotRepo "github.com/5n10sndkts-eng/Pulau-sub002/internal/infra/storage/slot"
	tripItemRepo "github.com/5n10sndkts-eng/Pulau-sub002/internal/infra/storage/tripitem"
	experienceCatalogClient "github.com/5n10sndkts-eng/Pulau-sub002/internal/integrations/experiencecatalog"
	auditService "github.com/5n10sndkts-eng/Pulau-sub002/internal/service/audit"
	inventoryService "github.com/5n10sndkts-eng/Pulau-sub002/internal/service/inventory"
	reconcilerService "github.com/5n10sndkts-eng/Pulau-sub002/internal/service/reconciler"
	tripsService "github.com/5n10sndkts-eng/Pulau-sub002/internal/service/trips"
	detectConflictsUC "github.com/5n10sndkts-eng/Pulau-sub002/internal/usecase/detect_conflicts"
	resolveConflictUC "github.com/5n10sndkts-eng/Pulau-sub002/internal/usecase/resolve_conflict"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/dbmetrics"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/logger"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/metrics"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/simpletxmanager"
	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/txmanager"
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

	log.Info("Starting Pulau booking core...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента каталога впечатлений
	catalogClient := experienceCatalogClient.NewClient(
		cfg.ExperienceService.URL,
		time.Duration(cfg.ExperienceService.Timeout)*time.Second,
		log,
	)
	log.Info("Experience catalog client initialized (url=%s timeout=%ds)",
		cfg.ExperienceService.URL, cfg.ExperienceService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository     *slotRepo.Repository
		tripItemRepository *tripItemRepo.Repository
		bookingRepository  *bookingRepo.Repository
		auditRepository    *auditRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисе инвентаря)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Интерфейсные переменные метрик остаются nil при выключенных метриках:
	// типизированный nil-указатель в интерфейсе обошел бы проверки у потребителей
	var (
		inventoryMetrics  inventoryService.Metrics
		auditMetrics      auditService.Metrics
		reconcilerMetrics reconcilerService.Metrics
	)

	if cfg.Metrics.Enabled {
		inventoryMetrics = metricsCollector
		auditMetrics = metricsCollector
		reconcilerMetrics = metricsCollector

		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		tripItemRepository = tripItemRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		auditRepository = auditRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		tripItemRepository = tripItemRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		auditRepository = auditRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем фоновый писатель audit-журнала
	auditRecorder := auditService.NewRecorder(auditRepository, cfg.Audit.QueueSize, log, auditMetrics)
	log.Info("Audit recorder started (queue_size=%d)", cfg.Audit.QueueSize)

	// Инициализируем сервисы
	inventorySvc := inventoryService.NewService(
		slotRepository,
		bookingRepository,
		auditRecorder,
		txMgr,
		log,
		inventoryMetrics,
	)
	tripsSvc := tripsService.NewService(
		tripItemRepository,
		catalogClient,
		log,
	)

	// Инициализируем use cases
	detectConflictsUseCase := detectConflictsUC.NewUseCase(
		tripItemRepository,
		catalogClient,
		log,
	)
	resolveConflictUseCase := resolveConflictUC.NewUseCase(
		tripItemRepository,
		catalogClient,
		log,
	)

	// Инициализируем фоновую сверку инварианта вместимости
	var reconciler *reconcilerService.Reconciler
	if cfg.Reconciler.Enabled {
		reconciler, err = reconcilerService.New(slotRepository, cfg.Reconciler.Schedule, log, reconcilerMetrics)
		if err != nil {
			log.Fatal("Failed to initialize reconciler: %v", err)
		}
		reconciler.Start()
		log.Info("Reconciler enabled (schedule=%q)", cfg.Reconciler.Schedule)
	}

	// Инициализируем handlers
	createSlot := createSlotHandler.NewHandler(inventorySvc, log)
	getSlot := getSlotHandler.NewHandler(inventorySvc, log)
	decrement := decrementHandler.NewHandler(inventorySvc, log)
	decrementLocked := decrementLockedHandler.NewHandler(inventorySvc, log)
	increment := incrementHandler.NewHandler(inventorySvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(inventorySvc, log)
	detectConflicts := detectConflictsHandler.NewHandler(detectConflictsUseCase, log)
	resolveConflict := resolveConflictHandler.NewHandler(resolveConflictUseCase, log)
	rescheduleItem := rescheduleItemHandler.NewHandler(tripsSvc, log)
	removeItem := removeItemHandler.NewHandler(tripsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сверочное чтение состояния слота
	api.HandleFunc("/slots/{slotId}", getSlot.Handle).Methods(http.MethodGet)

	// Поиск конфликтов расписания на дату
	api.HandleFunc("/trips/{tripId}/conflicts", detectConflicts.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Инвентарь слотов ---
	// Создание слота (вендор)
	protected.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)

	// Атомарный декремент доступных мест
	protected.HandleFunc("/slots/{slotId}/decrement", decrement.Handle).Methods(http.MethodPost)

	// Декремент с метаданными слота (критический путь чекаута)
	protected.HandleFunc("/slots/{slotId}/decrement-locked", decrementLocked.Handle).Methods(http.MethodPost)

	// Возврат мест с капом по вместимости
	protected.HandleFunc("/slots/{slotId}/increment", increment.Handle).Methods(http.MethodPost)

	// Удаление слота без активных бронирований
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Разрешение конфликтов маршрута ---
	// Варианты разрешения конфликта пары позиций
	protected.HandleFunc("/trips/{tripId}/conflicts/resolve", resolveConflict.Handle).Methods(http.MethodPost)

	// Перенос позиции на новое время
	protected.HandleFunc("/trips/{tripId}/items/{itemId}/reschedule", rescheduleItem.Handle).Methods(http.MethodPost)

	// Удаление позиции из маршрута
	protected.HandleFunc("/trips/{tripId}/items/{itemId}", removeItem.Handle).Methods(http.MethodDelete)

	// CORS для фронтенда платформы
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "X-User-ID"}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	// Останавливаем фоновую сверку
	if reconciler != nil {
		reconciler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дописываем очередь audit-журнала
	auditRecorder.Close()

	log.Info("Server stopped gracefully")
}
