package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ridehail/cmd"
	"ridehail/internal/adapters/out/identity"
	"ridehail/internal/adapters/out/postgres"
	"ridehail/internal/adapters/out/postgres/orderrepo"
	"ridehail/internal/adapters/out/postgres/triprepo"
	"ridehail/internal/adapters/out/postgres/userrepo"
	"ridehail/internal/adapters/out/rabbitmq"
	"ridehail/internal/core/ports"
	"ridehail/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	loadDotEnv()
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)
	slog.SetDefault(logger)

	gormDB := mustGormOpen(configs)
	mustAutoMigrate(gormDB)

	var publisher ports.OrderEventPublisher
	if configs.RabbitMQURL != "" {
		rabbit, err := rabbitmq.Dial(configs.RabbitMQURL, configs.RabbitMQOrderExchange, logger)
		if err != nil {
			log.Fatalf("connection to rabbitmq failed: %v", err)
		}
		defer rabbit.Close()
		publisher = rabbit
	} else {
		logger.Warn("RABBITMQ_URL is not set, order events are not published")
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              envOrDefault("HTTP_PORT", "8080"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                envOrDefault("DB_PORT", "5432"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             envOrDefault("DB_SSLMODE", "disable"),
		DBTimeout:             durationVariable("DB_TIMEOUT", postgres.DefaultTimeout),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		JWTTTL:                durationVariable("JWT_TTL", identity.DefaultTokenTTL),
		RabbitMQURL:           os.Getenv("RABBITMQ_URL"),
		RabbitMQOrderExchange: envOrDefault("RABBITMQ_ORDER_EXCHANGE", rabbitmq.DefaultExchange),
		BacklogReportSchedule: envOrDefault("BACKLOG_REPORT_SCHEDULE", jobs.DefaultBacklogSchedule),
		LogLevel:              envOrDefault("LOG_LEVEL", "info"),
	}
	return config
}

// loadDotEnv reads .env when present. Variables already set in the
// environment win.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Fatalf("invalid %s %q: must be a positive duration such as 5s", key, raw)
	}
	return d
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func makeConnectionString(configs cmd.Config) string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN:                  makeConnectionString(configs),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("connection to postgres through gorm failed: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db
}

func mustAutoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(&userrepo.UserDTO{}, &triprepo.TripDTO{}, &orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := app.CreateRouter()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed: %v", err)
		}
	}()
	logger.Info("HTTP server started", "port", port)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
