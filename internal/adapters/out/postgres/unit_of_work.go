// Package postgres provides the GORM-based Unit of Work and schema setup.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// run inside that transaction and register the aggregates they write; after a
// successful commit the domain events of those aggregates are handed to the
// configured publisher.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, WithIsolation(sql.LevelSerializable))
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is single-use and not safe for concurrent use.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"bookstore/internal/adapters/out/postgres/catalogrepo"
	"bookstore/internal/adapters/out/postgres/integrity"
	"bookstore/internal/adapters/out/postgres/orderrepo"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/ports"

	"gorm.io/gorm"
)

type FactoryOption func(*GormUnitOfWorkFactory)

// WithIsolation sets the isolation level of every transaction the factory opens.
func WithIsolation(level sql.IsolationLevel) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.txOptions = &sql.TxOptions{Isolation: level}
	}
}

func WithEventPublisher(publisher ports.EventPublisher) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.publisher = publisher
	}
}

func WithLogger(logger *slog.Logger) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.logger = logger
	}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	txOptions *sql.TxOptions
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...FactoryOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{db: db, logger: slog.Default()}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With("component", "unit_of_work")
	return f
}

// With returns a copy of the factory with extra options applied.
func (f *GormUnitOfWorkFactory) With(opts ...FactoryOption) *GormUnitOfWorkFactory {
	clone := *f
	for _, opt := range opts {
		opt(&clone)
	}
	return &clone
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.create()
}

func (f *GormUnitOfWorkFactory) create() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		txOptions: f.txOptions,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	txOptions *sql.TxOptions
	publisher ports.EventPublisher
	logger    *slog.Logger

	trackedAggregates []any
}

// Begin opens the transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	var tx *gorm.DB
	if uow.txOptions != nil {
		tx = uow.db.WithContext(ctx).Begin(uow.txOptions)
	} else {
		tx = uow.db.WithContext(ctx).Begin()
	}
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.trackedAggregates = nil
	return nil
}

// Commit makes the changes permanent and then publishes the domain events of
// the tracked aggregates. A failed publish is logged; the commit stands.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = nil
		return integrity.TranslateError(err, "transaction")
	}

	uow.publishEvents(ctx)
	return nil
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction
// when none is open, which lets handlers defer it unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = nil
	return err
}

func (uow *GormUnitOfWork) CategoryRepository() ports.CategoryRepository {
	return catalogrepo.NewGormCategoryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return catalogrepo.NewGormCustomerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return catalogrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryPersonRepository() ports.DeliveryPersonRepository {
	return catalogrepo.NewGormDeliveryPersonRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories for every aggregate they write.
// Tracking the same aggregate twice has no extra effect.
func (uow *GormUnitOfWork) TrackAggregate(aggregate any) {
	for _, tracked := range uow.trackedAggregates {
		if tracked == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

// conn is the open transaction, or the pool outside of one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishEvents(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = nil

	var events []kernel.DomainEvent
	for _, aggregate := range tracked {
		source, ok := aggregate.(kernel.EventSource)
		if !ok {
			continue
		}
		events = append(events, source.DomainEvents()...)
		source.ClearDomainEvents()
	}

	if len(events) == 0 || uow.publisher == nil {
		return
	}

	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.WarnContext(ctx, "failed to publish domain events",
			"events", len(events),
			"error", err,
		)
	}
}
