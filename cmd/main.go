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
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/TennisCourtBooking/internal/api/handlers"
	createReservationHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/create_reservation"
	exportReservationsHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/export_reservations"
	getAnalyticsHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/get_analytics"
	getAvailabilityHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/get_availability"
	getMyReservationsHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/get_my_reservations"
	listCourtsHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/list_courts"
	listNotificationsHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/list_notifications"
	listReservationsHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/list_reservations"
	listUsersHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/list_users"
	loginHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/login"
	markNotificationReadHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/mark_notification_read"
	paymentWebhookHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/payment_webhook"
	sendNotificationHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/send_notification"
	toggleCourtMaintenanceHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/toggle_court_maintenance"
	updateUserTiersHandler "github.com/m04kA/TennisCourtBooking/internal/api/handlers/update_user_tiers"
	"github.com/m04kA/TennisCourtBooking/internal/api/middleware"
	"github.com/m04kA/TennisCourtBooking/internal/config"
	"github.com/m04kA/TennisCourtBooking/internal/domain"
	"github.com/m04kA/TennisCourtBooking/internal/infra/export"
	"github.com/m04kA/TennisCourtBooking/internal/infra/loginlimit"
	"github.com/m04kA/TennisCourtBooking/internal/infra/seed"
	"github.com/m04kA/TennisCourtBooking/internal/infra/storage/court"
	"github.com/m04kA/TennisCourtBooking/internal/infra/storage/migrations"
	"github.com/m04kA/TennisCourtBooking/internal/infra/storage/notification"
	"github.com/m04kA/TennisCourtBooking/internal/infra/storage/reservation"
	"github.com/m04kA/TennisCourtBooking/internal/infra/storage/user"
	"github.com/m04kA/TennisCourtBooking/internal/integrations/payments"
	"github.com/m04kA/TennisCourtBooking/internal/scheduler"
	analyticsService "github.com/m04kA/TennisCourtBooking/internal/service/analytics"
	courtsService "github.com/m04kA/TennisCourtBooking/internal/service/courts"
	notificationsService "github.com/m04kA/TennisCourtBooking/internal/service/notifications"
	reservationsService "github.com/m04kA/TennisCourtBooking/internal/service/reservations"
	usersService "github.com/m04kA/TennisCourtBooking/internal/service/users"
	createReservationUC "github.com/m04kA/TennisCourtBooking/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/TennisCourtBooking/internal/usecase/get_availability"
	loginUC "github.com/m04kA/TennisCourtBooking/internal/usecase/login"
	"github.com/m04kA/TennisCourtBooking/pkg/dbmetrics"
	"github.com/m04kA/TennisCourtBooking/pkg/logger"
	"github.com/m04kA/TennisCourtBooking/pkg/metrics"
	"github.com/m04kA/TennisCourtBooking/pkg/tokens"
	"github.com/m04kA/TennisCourtBooking/pkg/txmanager"
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

	log.Info("Starting TennisCourtBooking...")
	log.Info("Configuration loaded from config.toml (payments.mode=%s)", cfg.Payments.PaymentMode())

	// Метрики. nil-коллектор безопасен: все методы становятся no-op.
	var metricsCollector *metrics.Metrics
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Миграции
	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, dirty, err := migrations.Version(db)
		if err != nil {
			log.Fatal("Failed to read migration version: %v", err)
		}
		log.Info("Migrations applied (version=%d, dirty=%t)", version, dirty)
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	courtRepository := court.NewRepository(wrappedDB)
	reservationRepository := reservation.NewRepository(wrappedDB)
	userRepository := user.NewRepository(wrappedDB)
	notificationRepository := notification.NewRepository(wrappedDB)

	// Начальные данные
	if cfg.Seed.Enabled {
		data, err := seed.Load(cfg.Seed.File)
		if err != nil {
			log.Fatal("Failed to load seed file: %v", err)
		}
		if err := seed.Apply(context.Background(), data, courtRepository, userRepository, log); err != nil {
			log.Fatal("Failed to apply seed: %v", err)
		}
	}

	// Ограничитель попыток входа
	var limiter loginUC.AttemptLimiter
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		limiter = loginlimit.NewRedisLimiter(redisClient, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow())
		log.Info("Login limiter: redis (addr=%s)", cfg.Redis.Addr)
	} else {
		limiter = loginlimit.NewMemoryLimiter(cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow())
		log.Info("Login limiter: in-memory")
	}

	// Платежный шлюз
	var paymentClient createReservationUC.PaymentClient
	if cfg.Payments.GatewayURL != "" {
		paymentClient = payments.NewClient(
			cfg.Payments.GatewayURL,
			cfg.Payments.GatewayAPIKey,
			time.Duration(cfg.Payments.GatewayTimeout)*time.Second,
			log,
		)
		log.Info("Payment gateway client initialized (url=%s timeout=%ds)",
			cfg.Payments.GatewayURL, cfg.Payments.GatewayTimeout)
	} else {
		paymentClient = payments.NewStubClient(log)
		log.Warn("Payment gateway URL is empty, using stub client")
	}

	tokenIssuer := tokens.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		export.NewXLSXExporter(),
		txMgr,
		metricsCollector,
		log,
	)
	courtSvc := courtsService.NewService(courtRepository, log)
	userSvc := usersService.NewService(userRepository, log)
	notificationSvc := notificationsService.NewService(notificationRepository, log)
	analyticsSvc := analyticsService.NewService(reservationRepository, userRepository, txMgr, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		courtRepository,
		reservationRepository,
		paymentClient,
		txMgr,
		cfg.Booking.Rules(),
		cfg.Payments.PaymentMode(),
		metricsCollector,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(courtRepository, reservationRepository, log)
	loginUseCase := loginUC.NewUseCase(userRepository, tokenIssuer, limiter, metricsCollector, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(loginUseCase, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getMyReservations := getMyReservationsHandler.NewHandler(reservationSvc, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(reservationSvc, cfg.Payments.WebhookSecret, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	exportReservations := exportReservationsHandler.NewHandler(reservationSvc, log)
	toggleCourtMaintenance := toggleCourtMaintenanceHandler.NewHandler(courtSvc, log)
	listUsers := listUsersHandler.NewHandler(userSvc, log)
	updateUserTiers := updateUserTiersHandler.NewHandler(userSvc, log)
	sendNotification := sendNotificationHandler.NewHandler(notificationSvc, log)
	getAnalytics := getAnalyticsHandler.NewHandler(analyticsSvc, log)

	if cfg.Payments.WebhookSecret == "" {
		log.Warn("Payment webhook secret is empty, signatures are not verified")
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recovery(log), middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Проверка работоспособности
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{
			"message": "Tennis Court Booking API",
			"status":  "running",
		})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Уведомления платежного шлюза (проверка подписи внутри handler)
	api.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenIssuer, userRepository, log))

	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/my", getMyReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (только персонал)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(tokenIssuer, userRepository, log), middleware.RequireStaff(log))

	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/export", exportReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/courts/{courtId}/maintenance", toggleCourtMaintenance.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId}", updateUserTiers.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/notifications", sendNotification.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/analytics", getAnalytics.Handle).Methods(http.MethodGet)

	// Фоновая отмена неоплаченных бронирований
	var sched *scheduler.Scheduler
	if cfg.Payments.PaymentMode() == domain.PaymentModeHold {
		sched, err = scheduler.New(log)
		if err != nil {
			log.Fatal("Failed to create scheduler: %v", err)
		}
		if err := scheduler.RegisterHoldExpiry(sched, reservationSvc, cfg.Payments.HoldTTL(), cfg.Payments.SweepInterval()); err != nil {
			log.Fatal("Failed to register hold expiry job: %v", err)
		}
		sched.Start()
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if sched != nil {
		if err := sched.Stop(); err != nil {
			log.Error("Scheduler shutdown failed: %v", err)
		}
	}

	close(stopMetricsCh)

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
