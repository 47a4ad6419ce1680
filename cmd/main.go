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

	adminLoginHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/admin_login"
	blockedDatesHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/blocked_dates"
	cancelEnrollmentHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/cancel_enrollment"
	createEnrollmentHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/create_enrollment"
	deleteEnrollmentHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/delete_enrollment"
	deleteInstructorDayHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/delete_instructor_day"
	getAvailableDatesHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/get_available_dates"
	getEnrollmentsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/get_enrollments"
	instructorsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/instructors"
	notificationsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/notifications"
	reportHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/report"
	verifyInstructorHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/verify_instructor"
	"github.com/m04kA/SMC-LabBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-LabBookingService/internal/config"
	adminConfigRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/adminconfig"
	blockedDateRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/blockeddate"
	"github.com/m04kA/SMC-LabBookingService/internal/infra/storage/bootstrap"
	enrollmentRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/enrollment"
	instructorRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/instructor"
	notificationRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-LabBookingService/internal/integrations/mailer"
	adminAuthService "github.com/m04kA/SMC-LabBookingService/internal/service/adminauth"
	blockedDatesService "github.com/m04kA/SMC-LabBookingService/internal/service/blockeddates"
	enrollmentsService "github.com/m04kA/SMC-LabBookingService/internal/service/enrollments"
	notificationsService "github.com/m04kA/SMC-LabBookingService/internal/service/notifications"
	reportsService "github.com/m04kA/SMC-LabBookingService/internal/service/reports"
	rosterService "github.com/m04kA/SMC-LabBookingService/internal/service/roster"
	cancelEnrollmentUC "github.com/m04kA/SMC-LabBookingService/internal/usecase/cancel_enrollment"
	createEnrollmentUC "github.com/m04kA/SMC-LabBookingService/internal/usecase/create_enrollment"
	getAvailableDatesUC "github.com/m04kA/SMC-LabBookingService/internal/usecase/get_available_dates"
	"github.com/m04kA/SMC-LabBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LabBookingService/pkg/enrollcode"
	"github.com/m04kA/SMC-LabBookingService/pkg/logger"
	"github.com/m04kA/SMC-LabBookingService/pkg/metrics"
	"github.com/m04kA/SMC-LabBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-LabBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-LabBookingService...")
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

	// Создаем схему БД
	if err := bootstrap.Run(context.Background(), db, log); err != nil {
		log.Fatal("Failed to initialize database schema: %v", err)
	}

	// Почтовый клиент
	mailClient := mailer.NewClient(
		cfg.Mail.BaseURL,
		cfg.Mail.APIKey,
		cfg.Mail.SenderName,
		cfg.Mail.SenderEmail,
		cfg.Mail.Enabled,
		time.Duration(cfg.Mail.Timeout)*time.Second,
		log,
	)
	if cfg.Mail.Enabled {
		log.Info("Mail client initialized (base_url=%s, sender=%s)", cfg.Mail.BaseURL, cfg.Mail.SenderEmail)
	} else {
		log.Info("Mail delivery disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		enrollmentRepository   *enrollmentRepo.Repository
		instructorRepository   *instructorRepo.Repository
		blockedRepository      *blockedDateRepo.Repository
		notificationRepository *notificationRepo.Repository
		adminConfigRepository  *adminConfigRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		enrollmentRepository = enrollmentRepo.NewRepository(wrappedDB)
		instructorRepository = instructorRepo.NewRepository(wrappedDB)
		blockedRepository = blockedDateRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		adminConfigRepository = adminConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		enrollmentRepository = enrollmentRepo.NewRepository(db)
		instructorRepository = instructorRepo.NewRepository(db)
		blockedRepository = blockedDateRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		adminConfigRepository = adminConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := adminAuthService.NewService(adminConfigRepository, log)
	rosterSvc := rosterService.NewService(instructorRepository, log)
	blockedSvc := blockedDatesService.NewService(blockedRepository, log)
	notificationsSvc := notificationsService.NewService(notificationRepository, log)
	enrollmentsSvc := enrollmentsService.NewService(enrollmentRepository, notificationsSvc, txMgr, log)
	reportsSvc := reportsService.NewService(enrollmentRepository, log)

	// Записываем код доступа из конфигурации
	if err := authSvc.Seed(context.Background(), cfg.Admin.AccessCode); err != nil {
		log.Fatal("Failed to seed admin access code: %v", err)
	}

	// Инициализируем use cases
	createEnrollmentUseCase := createEnrollmentUC.NewUseCase(
		enrollmentRepository,
		blockedRepository,
		rosterSvc,
		notificationsSvc,
		mailClient,
		enrollcode.New(),
		txMgr,
		log,
	)
	cancelEnrollmentUseCase := cancelEnrollmentUC.NewUseCase(
		enrollmentRepository,
		rosterSvc,
		notificationsSvc,
		txMgr,
		log,
	)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		enrollmentRepository,
		blockedRepository,
		log,
	)

	// Инициализируем handlers
	createEnrollment := createEnrollmentHandler.NewHandler(createEnrollmentUseCase, log)
	cancelEnrollment := cancelEnrollmentHandler.NewHandler(cancelEnrollmentUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	verifyInstructor := verifyInstructorHandler.NewHandler(rosterSvc, log)
	getEnrollments := getEnrollmentsHandler.NewHandler(enrollmentsSvc, log)
	deleteEnrollment := deleteEnrollmentHandler.NewHandler(enrollmentsSvc, log)
	deleteInstructorDay := deleteInstructorDayHandler.NewHandler(enrollmentsSvc, log)
	blockedDates := blockedDatesHandler.NewHandler(blockedSvc, log)
	instructors := instructorsHandler.NewHandler(rosterSvc, log)
	notifications := notificationsHandler.NewHandler(notificationsSvc, log)
	report := reportHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/enrollments/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/enrollments", createEnrollment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/enrollments/{code}", cancelEnrollment.Handle).Methods(http.MethodDelete)

	// Логин проверяет код в теле запроса, поэтому живет вне защищенного сабрутера
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Code header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	// --- Записи ---
	admin.HandleFunc("/enrollments", getEnrollments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/enrollments", createEnrollment.HandleAdmin).Methods(http.MethodPost)
	// Маршрут с фиксированным сегментом регистрируется раньше шаблонного
	admin.HandleFunc("/enrollments/instructor", deleteInstructorDay.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/enrollments/{id}", deleteEnrollment.Handle).Methods(http.MethodDelete)

	// --- Реестр преподавателей ---
	admin.HandleFunc("/instructors/verify", verifyInstructor.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/instructors", instructors.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/instructors", instructors.HandleAdd).Methods(http.MethodPost)
	admin.HandleFunc("/instructors/{id}", instructors.HandleRemove).Methods(http.MethodDelete)

	// --- Заблокированные даты ---
	admin.HandleFunc("/blocked-dates", blockedDates.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-dates", blockedDates.HandleBlock).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-dates/{date}", blockedDates.HandleUnblock).Methods(http.MethodDelete)

	// --- Уведомления ---
	admin.HandleFunc("/notifications", notifications.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/read-all", notifications.HandleMarkAllRead).Methods(http.MethodPatch)
	admin.HandleFunc("/notifications/{id}/read", notifications.HandleMarkRead).Methods(http.MethodPatch)

	// --- Отчеты ---
	admin.HandleFunc("/reports", report.Handle).Methods(http.MethodGet)

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
