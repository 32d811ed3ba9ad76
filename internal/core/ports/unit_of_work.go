package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	CategoryRepository() CategoryRepository

	CustomerRepository() CustomerRepository

	ProductRepository() ProductRepository

	DeliveryPersonRepository() DeliveryPersonRepository

	OrderRepository() OrderRepository
}
