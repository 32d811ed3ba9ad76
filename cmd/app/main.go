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
	"syscall"
	"time"

	"bookstore/cmd"
	httpadapter "bookstore/internal/adapters/in/http"
	"bookstore/internal/adapters/out/amqpbus"
	"bookstore/internal/adapters/out/eventlog"
	"bookstore/internal/adapters/out/postgres"
	"bookstore/internal/adapters/out/postgres/identityrepo"
	"bookstore/internal/adapters/out/redisstore"
	"bookstore/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Open(postgres.DSN(
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
	), logger)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	sessions, closeSessions, err := newSessionStore(ctx, configs, gormDB)
	if err != nil {
		log.Fatalf("Error opening session store: %v", err)
	}
	defer closeSessions()

	publisher, closePublisher, err := newEventPublisher(configs, logger)
	if err != nil {
		log.Fatalf("Error connecting to message broker: %v", err)
	}
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, sessions, publisher, logger)

	jobManager := app.JobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	return config
}

func newSessionStore(ctx context.Context, configs cmd.Config, gormDB *gorm.DB) (ports.SessionStore, func(), error) {
	if configs.SessionStore != cmd.SessionStoreRedis {
		return identityrepo.NewGormSessionStore(gormDB), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	return redisstore.NewSessionStore(client), func() { _ = client.Close() }, nil
}

func newEventPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func(), error) {
	if configs.AMQPURL == "" {
		return eventlog.NewPublisher(logger), func() {}, nil
	}

	publisher, err := amqpbus.NewPublisher(configs.AMQPURL, configs.AMQPExchange, logger)
	if err != nil {
		return nil, nil, err
	}
	return publisher, func() { _ = publisher.Close() }, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("component", "http"),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	server := httpadapter.NewServer(app.HTTPHandlers(), logger)
	if err := server.RegisterRoutes(ctx, e); err != nil {
		log.Fatalf("Error registering routes: %v", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			e.Logger.Error(err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
