// Command seed loads catalog records and operator accounts from a YAML file.
// Records that already exist are left untouched, so it is safe to run twice.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bookstore/cmd"
	"bookstore/internal/adapters/out/eventlog"
	"bookstore/internal/adapters/out/postgres"
	"bookstore/internal/adapters/out/postgres/identityrepo"
	"bookstore/internal/seed"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	file := flag.String("file", "seed.yaml", "path to the YAML fixtures file")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	configs, err := cmd.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fixtures, err := seed.LoadFile(*file)
	if err != nil {
		log.Fatalf("Error loading fixtures: %v", err)
	}

	gormDB, err := postgres.Open(postgres.DSN(
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
	), logger)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, identityrepo.NewGormSessionStore(gormDB), eventlog.NewPublisher(logger), logger)

	report, err := seed.NewSeeder(app.SeedHandlers(), logger).Apply(ctx, fixtures)
	if err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}
	logger.Info("seed complete", "file", *file, "created", report.Created, "skipped", report.Skipped)
}
