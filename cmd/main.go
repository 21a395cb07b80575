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

	bookHandler "github.com/echoassist/scheduling-service/internal/api/handlers/book_appointment"
	cancelHandler "github.com/echoassist/scheduling-service/internal/api/handlers/cancel_appointment"
	findSlotsHandler "github.com/echoassist/scheduling-service/internal/api/handlers/find_slots"
	handoffHandler "github.com/echoassist/scheduling-service/internal/api/handlers/handoff"
	healthHandler "github.com/echoassist/scheduling-service/internal/api/handlers/health"
	inboundSMSHandler "github.com/echoassist/scheduling-service/internal/api/handlers/inbound_sms"
	oauthFlowHandler "github.com/echoassist/scheduling-service/internal/api/handlers/oauthflow"
	rescheduleHandler "github.com/echoassist/scheduling-service/internal/api/handlers/reschedule_appointment"
	sendMessageHandler "github.com/echoassist/scheduling-service/internal/api/handlers/send_message"
	"github.com/echoassist/scheduling-service/internal/api/middleware"
	"github.com/echoassist/scheduling-service/internal/availability"
	"github.com/echoassist/scheduling-service/internal/config"
	"github.com/echoassist/scheduling-service/internal/domain"
	"github.com/echoassist/scheduling-service/internal/infra/credstore"
	credstorePG "github.com/echoassist/scheduling-service/internal/infra/credstore/postgres"
	"github.com/echoassist/scheduling-service/internal/integrations/googlecalendar"
	"github.com/echoassist/scheduling-service/internal/integrations/sendgrid"
	"github.com/echoassist/scheduling-service/internal/integrations/twilio"
	"github.com/echoassist/scheduling-service/internal/service/notifications"
	oauthService "github.com/echoassist/scheduling-service/internal/service/oauth"
	bookUC "github.com/echoassist/scheduling-service/internal/usecase/book_appointment"
	cancelUC "github.com/echoassist/scheduling-service/internal/usecase/cancel_appointment"
	findSlotsUC "github.com/echoassist/scheduling-service/internal/usecase/find_slots"
	rescheduleUC "github.com/echoassist/scheduling-service/internal/usecase/reschedule_appointment"
	sendMessageUC "github.com/echoassist/scheduling-service/internal/usecase/send_message"
	"github.com/echoassist/scheduling-service/pkg/logger"
	"github.com/echoassist/scheduling-service/pkg/metrics"
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

	log.Info("Starting Echo scheduling service...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона бизнеса - все слоты и письма форматируются в ней
	loc, err := time.LoadLocation(cfg.Business.Timezone)
	if err != nil {
		log.Fatal("Failed to load business timezone %q: %v", cfg.Business.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище OAuth-токенов: PostgreSQL при наличии секции [database],
	// иначе файл рядом с сервисом
	var credStore oauthService.CredentialStore
	if cfg.Database != nil {
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
		log.Info("Credential store: PostgreSQL (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		credStore = credstorePG.NewRepository(db)
	} else {
		credStore = credstore.NewFileStore(cfg.Credentials.File)
		log.Info("Credential store: file %s", cfg.Credentials.File)
	}

	// OAuth-сервис и клиент Google Calendar
	oauthSvc := oauthService.NewService(
		cfg.Google.ClientID,
		cfg.Google.ClientSecret,
		cfg.Google.RedirectURL,
		credStore,
		log,
	)
	calendarClient := googlecalendar.NewClient(
		cfg.Google.CalendarID,
		time.Duration(cfg.Google.Timeout)*time.Second,
		log,
	)
	log.Info("Google Calendar client initialized (calendar=%s, timeout=%ds)",
		cfg.Google.CalendarID, cfg.Google.Timeout)

	// Каналы уведомлений: каждый включается независимо
	var smsSender notifications.SMSSender
	if cfg.Twilio.Enabled() {
		smsSender = twilio.NewClient(
			cfg.Twilio.AccountSID,
			cfg.Twilio.AuthToken,
			cfg.Twilio.FromNumber,
			time.Duration(cfg.Twilio.Timeout)*time.Second,
			log,
		)
		log.Info("SMS channel enabled (from=%s)", cfg.Twilio.FromNumber)
	} else {
		log.Warn("SMS channel disabled: twilio credentials are not configured")
	}

	var emailSender notifications.EmailSender
	if cfg.SendGrid.Enabled() {
		emailSender = sendgrid.NewClient(
			cfg.SendGrid.APIKey,
			cfg.SendGrid.FromEmail,
			cfg.SendGrid.FromName,
			time.Duration(cfg.SendGrid.Timeout)*time.Second,
			log,
		)
		log.Info("Email channel enabled (from=%s)", cfg.SendGrid.FromEmail)
	} else {
		log.Warn("Email channel disabled: sendgrid credentials are not configured")
	}

	notifier := notifications.NewDispatcher(smsSender, emailSender, cfg.Business.OwnerPhone, log)

	// Движок доступности и профиль бизнеса
	engine := availability.NewEngine(loc)
	business := &domain.Business{
		Name:     cfg.Business.Name,
		Address:  cfg.Business.Address,
		Location: loc,
	}

	// Инициализируем use cases
	findSlotsUseCase := findSlotsUC.NewUseCase(oauthSvc, calendarClient, engine, cfg.Business.Timezone, log)
	bookUseCase := bookUC.NewUseCase(oauthSvc, calendarClient, engine, notifier, business, log)
	rescheduleUseCase := rescheduleUC.NewUseCase(oauthSvc, calendarClient, engine, notifier, business, log)
	cancelUseCase := cancelUC.NewUseCase(oauthSvc, calendarClient, notifier, log)
	sendMessageUseCase := sendMessageUC.NewUseCase(notifier, cfg.Business.Name, log)

	// Инициализируем handlers
	health := healthHandler.NewHandler()
	oauthFlow := oauthFlowHandler.NewHandler(oauthSvc, log)
	inboundSMS := inboundSMSHandler.NewHandler(log)
	findSlots := findSlotsHandler.NewHandler(findSlotsUseCase, loc, log)
	book := bookHandler.NewHandler(bookUseCase, loc, log)
	reschedule := rescheduleHandler.NewHandler(rescheduleUseCase, loc, log)
	cancel := cancelHandler.NewHandler(cancelUseCase, log)
	sendMessage := sendMessageHandler.NewHandler(sendMessageUseCase, log)
	handoff := handoffHandler.NewHandler(
		cfg.Handoff.ContactName,
		cfg.Handoff.ContactPhone,
		cfg.Handoff.Message,
		log,
	)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без app secret)
	// ============================================================

	r.HandleFunc("/", health.Handle).Methods(http.MethodGet)
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Подключение Google-календаря владельцем
	r.HandleFunc("/oauth/google/start", oauthFlow.HandleStart).Methods(http.MethodGet)
	r.HandleFunc("/oauth/google/callback", oauthFlow.HandleCallback).Methods(http.MethodGet)

	// Webhook входящих SMS от Twilio
	r.HandleFunc("/twilio/inbound", inboundSMS.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют x-app-secret, вызывает голосовой агент)
	// ============================================================

	vapi := r.PathPrefix("/vapi").Subrouter()
	vapi.Use(middleware.AppSecret(cfg.Security.AppSecret))

	vapi.HandleFunc("/find-slots", findSlots.Handle).Methods(http.MethodPost)
	vapi.HandleFunc("/book", book.Handle).Methods(http.MethodPost)
	vapi.HandleFunc("/reschedule", reschedule.Handle).Methods(http.MethodPost)
	vapi.HandleFunc("/cancel", cancel.Handle).Methods(http.MethodPost)
	vapi.HandleFunc("/send-message", sendMessage.Handle).Methods(http.MethodPost)
	vapi.HandleFunc("/handoff", handoff.Handle).Methods(http.MethodPost)

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

	shutdownCtx, cancelShutdown := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
