package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lunchbox/cmd"
	httpin "lunchbox/internal/adapters/in/http"
	"lunchbox/internal/adapters/out/amqp"
	"lunchbox/internal/adapters/out/postgres"
	"lunchbox/internal/core/ports"
	"lunchbox/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Error getting sql.DB: %v", err)
	}
	defer sqlDB.Close()
	seedDefaultMenu(db, logger)

	publisher, closePublisher := newEventPublisher(configs, logger)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, db, publisher, logger)

	resetHandler := app.CreateResetDefaultMenuCommandHandler()
	jobManager := jobs.NewJobManager(&resetHandler, configs.MenuResetCron, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := newWebServer(app, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown", "error", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info("No .env file, using the environment as is")
	}

	config := cmd.Config{
		HTTPPort:      envOr("HTTP_PORT", "8080"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        envOr("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBSslMode:     os.Getenv("DB_SSLMODE"),
		AMQPURL:       os.Getenv("AMQP_URL"),
		AMQPExchange:  envOr("AMQP_EXCHANGE", amqp.DefaultExchange),
		MenuResetCron: os.Getenv("MENU_RESET_CRON"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}
	return config
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func seedDefaultMenu(db *gorm.DB, logger *slog.Logger) {
	defaults, err := cmd.DefaultMenu()
	if err != nil {
		log.Fatalf("Invalid default menu: %v", err)
	}

	created, err := postgres.SeedDefaultMenu(context.Background(), db, defaults)
	if err != nil {
		log.Fatalf("Error seeding default menu: %v", err)
	}
	logger.Info("Default menu seeded", "defaults", len(defaults), "created", created)
}

// newEventPublisher publishes to RabbitMQ when AMQP_URL is set and only
// logs events otherwise.
func newEventPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if configs.AMQPURL == "" {
		logger.Info("AMQP_URL not set, domain events are only logged")
		return amqp.NewLogPublisher(logger), func() {}
	}

	publisher, err := amqp.Dial(configs.AMQPURL, configs.AMQPExchange)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Closing RabbitMQ publisher", "error", err)
		}
	}
}

func newWebServer(app cmd.CompositionRoot, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.InfoContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))

	httpin.NewServer(app.CreateHTTPHandlers(), logger).Register(e)
	return e
}
