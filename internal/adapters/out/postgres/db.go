package postgres

import (
	"fmt"
	"log/slog"
	"time"

	"bookstore/internal/adapters/out/postgres/catalogrepo"
	"bookstore/internal/adapters/out/postgres/identityrepo"
	"bookstore/internal/adapters/out/postgres/integrity"
	"bookstore/internal/adapters/out/postgres/orderrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DSN builds a libpq keyword/value connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

// Open connects with gorm. SQL statements are logged through logger only when
// slow or failing.
func Open(dsn string, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			slog.NewLogLogger(logger.With("component", "gorm").Handler(), slog.LevelWarn),
			gormlogger.Config{
				SlowThreshold:             500 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate creates or alters every table and installs the foreign keys with
// their deletion policies.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&catalogrepo.CategoryDTO{},
		&catalogrepo.CustomerDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.DeliveryPersonDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&identityrepo.OperatorDTO{},
		&identityrepo.SessionDTO{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return integrity.InstallConstraints(db)
}
