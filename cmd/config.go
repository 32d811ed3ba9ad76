package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

const (
	SessionStorePostgres = "postgres"
	SessionStoreRedis    = "redis"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   slog.Level

	// SessionStore selects where sessions live: postgres or redis.
	SessionStore           string
	SessionTTL             time.Duration
	SessionCleanupSchedule string
	RedisAddr              string
	RedisPassword          string
	RedisDB                int

	// Domain events go to RabbitMQ when AMQPURL is set and to the log otherwise.
	AMQPURL      string
	AMQPExchange string
}

// ConfigFromEnv reads the configuration through getenv, usually os.Getenv.
// Unset variables take their defaults; malformed ones are reported together.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:               env("HTTP_PORT", "8080"),
		DBHost:                 env("DB_HOST", "localhost"),
		DBPort:                 env("DB_PORT", "5432"),
		DBUser:                 env("DB_USER", "postgres"),
		DBPassword:             env("DB_PASSWORD", ""),
		DBName:                 env("DB_NAME", "bookstore"),
		DBSslMode:              env("DB_SSLMODE", "disable"),
		SessionStore:           env("SESSION_STORE", SessionStorePostgres),
		SessionCleanupSchedule: env("SESSION_CLEANUP_SCHEDULE", ""),
		RedisAddr:              env("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          env("REDIS_PASSWORD", ""),
		AMQPURL:                env("AMQP_URL", ""),
		AMQPExchange:           env("AMQP_EXCHANGE", "bookstore.events"),
	}

	var errs []error

	if err := cfg.LogLevel.UnmarshalText([]byte(env("LOG_LEVEL", "info"))); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	ttl, err := time.ParseDuration(env("SESSION_TTL", "8h"))
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("SESSION_TTL: %w", err))
	case ttl <= 0:
		errs = append(errs, fmt.Errorf("SESSION_TTL: %s is not positive", ttl))
	}
	cfg.SessionTTL = ttl

	if cfg.RedisDB, err = strconv.Atoi(env("REDIS_DB", "0")); err != nil {
		errs = append(errs, fmt.Errorf("REDIS_DB: %w", err))
	}

	if cfg.SessionStore != SessionStorePostgres && cfg.SessionStore != SessionStoreRedis {
		errs = append(errs, fmt.Errorf("SESSION_STORE: unknown store %q", cfg.SessionStore))
	}

	if err = errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
