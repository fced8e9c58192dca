package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-wallet-profiles/docs"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/events"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/handlers"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/logger"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/middlewares"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/repositories"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/services"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-wallet-profiles API
// @version 1.0.0
// @description Wallet-keyed user profiles and contact lists
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		dbDriver, dbDSN,
		dbMaxOpenConns, dbMaxIdleConns,
		corsOrigins,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		dbDriver, dbDSN,
		dbMaxOpenConns, dbMaxIdleConns,
		corsOrigins,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, CORS and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	dbDriver, dbDSN string,
	dbMaxOpenConns, dbMaxIdleConns int,
	corsOrigins []string,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Database config
	dbDriver = getEnv("DB_DRIVER", storage.DriverSQLite)
	dbDSN = getEnv("DB_DSN", "profiles.db?_pragma=busy_timeout(5000)")
	if dbMaxOpenConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "1")); err != nil {
		return
	}
	if dbMaxIdleConns, err = strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "1")); err != nil {
		return
	}

	// CORS config
	corsOrigins = middlewares.ParseOrigins(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	// Kafka config
	kafkaBrokers = events.ParseBrokers(getEnv("KAFKA_BROKERS", ""))
	kafkaTopic = getEnv("KAFKA_TOPIC", "profile-events")

	return
}

// newRouter mounts the API under /api together with the Swagger UI.
// A nil db reports the database as not configured on /api/health.
func newRouter(
	db *sqlx.DB,
	profileService *services.ProfileService,
	contactService *services.ContactService,
	corsOrigins []string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.CORSMiddleware(corsOrigins))

	var pinger handlers.Pinger
	if db != nil {
		pinger = db
	}

	r.Route("/api", func(r chi.Router) {
		handlers.RegisterHealthHandler(r, handlers.NewHealthHandler(pinger))

		handlers.RegisterSaveProfileHandler(r, handlers.NewSaveProfileHandler(profileService))
		handlers.RegisterSearchProfilesHandler(r, handlers.NewSearchProfilesHandler(profileService))
		handlers.RegisterListProfilesHandler(r, handlers.NewListProfilesHandler(profileService))
		handlers.RegisterGetProfileByUsernameHandler(r, handlers.NewGetProfileByUsernameHandler(profileService))
		handlers.RegisterGetProfileHandler(r, handlers.NewGetProfileHandler(profileService))

		handlers.RegisterListContactsHandler(r, handlers.NewListContactsHandler(contactService))
		handlers.RegisterAddContactHandler(r, handlers.NewAddContactHandler(contactService))
		handlers.RegisterDeleteContactHandler(r, handlers.NewDeleteContactHandler(contactService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

// run initializes the logger, database and optional Kafka publisher,
// wires the HTTP server, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	dbDriver, dbDSN string,
	dbMaxOpenConns, dbMaxIdleConns int,
	corsOrigins []string,
	kafkaBrokers []string, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Open database and create schema
	logger.Log.Infow("Opening database", "driver", dbDriver)
	db, err := storage.Open(ctx, dbDriver, dbDSN, dbMaxOpenConns, dbMaxIdleConns)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.Init(ctx, db); err != nil {
		return err
	}

	// Kafka publisher is optional
	var publisher services.EventPublisher
	if len(kafkaBrokers) > 0 {
		p := events.NewPublisher(events.NewKafkaWriter(kafkaBrokers, kafkaTopic))
		defer func() {
			if err := p.Close(); err != nil {
				logger.Log.Errorw("failed to close Kafka writer", "error", err)
			}
		}()
		publisher = p
		logger.Log.Infow("Kafka publishing enabled", "brokers", kafkaBrokers, "topic", kafkaTopic)
	}

	// Initialize repositories
	profileReadRepo := repositories.NewProfileReadRepository(db, repositories.GetTxFromContext)
	profileWriteRepo := repositories.NewProfileWriteRepository(db, repositories.GetTxFromContext)
	contactReadRepo := repositories.NewContactReadRepository(db, repositories.GetTxFromContext)
	contactWriteRepo := repositories.NewContactWriteRepository(db, repositories.GetTxFromContext)
	txManager := repositories.NewTxManager(db)

	// Initialize services
	profileService := services.NewProfileService(profileReadRepo, profileWriteRepo, txManager, publisher)
	contactService := services.NewContactService(contactReadRepo, contactWriteRepo, publisher)

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", appHost, appPort)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", appHost, appPort),
		Handler:           newRouter(db, profileService, contactService, corsOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
