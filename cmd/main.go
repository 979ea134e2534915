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

	approveBookingHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/approve_booking"
	cancelBookingHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/create_booking"
	createRoomHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/create_room"
	deleteRoomHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/delete_room"
	getBookingHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/get_booking"
	getDailyOverviewHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/get_daily_overview"
	getHistoryHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/get_history"
	getRoomHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/get_room"
	getRoomAvailabilityHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/get_room_availability"
	listBookingsHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/list_bookings"
	listRoomsHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/list_rooms"
	rejectBookingHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/reject_booking"
	updateBookingHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/update_booking"
	updateRoomHandler "github.com/apiarm/MRB-BookingService/internal/api/handlers/update_room"
	"github.com/apiarm/MRB-BookingService/internal/api/middleware"
	"github.com/apiarm/MRB-BookingService/internal/config"
	bookingRepo "github.com/apiarm/MRB-BookingService/internal/infra/storage/booking"
	historyRepo "github.com/apiarm/MRB-BookingService/internal/infra/storage/history"
	roomRepo "github.com/apiarm/MRB-BookingService/internal/infra/storage/room"
	"github.com/apiarm/MRB-BookingService/internal/integrations/telegram"
	bookingsService "github.com/apiarm/MRB-BookingService/internal/service/bookings"
	historyService "github.com/apiarm/MRB-BookingService/internal/service/history"
	roomsService "github.com/apiarm/MRB-BookingService/internal/service/rooms"
	createBookingUC "github.com/apiarm/MRB-BookingService/internal/usecase/create_booking"
	getDailyOverviewUC "github.com/apiarm/MRB-BookingService/internal/usecase/get_daily_overview"
	getRoomAvailabilityUC "github.com/apiarm/MRB-BookingService/internal/usecase/get_room_availability"
	"github.com/apiarm/MRB-BookingService/pkg/dbmetrics"
	"github.com/apiarm/MRB-BookingService/pkg/logger"
	"github.com/apiarm/MRB-BookingService/pkg/metrics"
	"github.com/apiarm/MRB-BookingService/pkg/simpletxmanager"
	"github.com/apiarm/MRB-BookingService/pkg/txmanager"
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

	log.Info("Starting MRB-BookingService...")
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

	// Инициализируем telegram-уведомления (если включены)
	var (
		createNotifier createBookingUC.Notifier
		reviewNotifier bookingsService.Notifier
	)
	if cfg.Telegram.Enabled {
		notifier, err := telegram.NewNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID, log)
		if err != nil {
			log.Fatal("Failed to initialize telegram notifier: %v", err)
		}
		createNotifier = notifier
		reviewNotifier = notifier
		log.Info("Telegram notifications enabled (chat_id=%d)", cfg.Telegram.ChatID)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		roomRepository    *roomRepo.Repository
		historyRepository *historyRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		historyRepository = historyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		historyRepository = historyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		historyRepository,
		txMgr,
		reviewNotifier,
		log,
	)
	roomSvc := roomsService.NewService(roomRepository, log)
	historySvc := historyService.NewService(historyRepository, bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		txMgr,
		createNotifier,
		log,
	)
	getRoomAvailabilityUseCase := getRoomAvailabilityUC.NewUseCase(
		bookingRepository,
		roomRepository,
		log,
	)
	getDailyOverviewUseCase := getDailyOverviewUC.NewUseCase(
		bookingRepository,
		roomRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	approveBooking := approveBookingHandler.NewHandler(bookingSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	getRoomAvailability := getRoomAvailabilityHandler.NewHandler(getRoomAvailabilityUseCase, log)
	getDailyOverview := getDailyOverviewHandler.NewHandler(getDailyOverviewUseCase, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)
	getHistory := getHistoryHandler.NewHandler(historySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Комнаты ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

	// Календарь доступности комнаты
	api.HandleFunc("/rooms/{roomId}/availability", getRoomAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание заявки на бронирование
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список заявок
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Заявка по ID или публичному коду
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Обзор дня: расписание и статистика
	api.HandleFunc("/overview/daily", getDailyOverview.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Решения по заявкам ---
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/reject", rejectBooking.Handle).Methods(http.MethodPost)

	// --- Управление комнатами ---
	protected.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)

	// --- Журнал решений ---
	protected.HandleFunc("/history", getHistory.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/history/summary", getHistory.HandleSummary).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/history", getHistory.HandleBookingHistory).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
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
