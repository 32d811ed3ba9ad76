// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load and change aggregates, commit. A deferred Rollback is a no-op once
// the commit went through.
package commands

import (
	"context"

	"bookstore/internal/core/ports"
)

// Unit of Work interfaces narrow the full ports.UnitOfWork to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	DeliveryPersonRepoFactory interface {
		DeliveryPersonRepository() ports.DeliveryPersonRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CategoryUoW interface {
		TxManager
		CategoryRepoFactory
	}

	CategoryUoWFactory interface {
		Create() CategoryUoW
	}

	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ProductUoW also exposes categories because a product may only point at an
	// existing category.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
		CategoryRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	DeliveryPersonUoW interface {
		TxManager
		DeliveryPersonRepoFactory
	}

	DeliveryPersonUoWFactory interface {
		Create() DeliveryPersonUoW
	}

	// OrderUoW manages transactions for operations on an existing order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RegisterOrderUoW spans every aggregate order registration reads or writes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   products, err := uow.ProductRepository().GetForUpdate(ctx, serials)
	//   // ... allocate lines, update products, add order
	//
	//   err = uow.Commit(ctx)
	RegisterOrderUoW interface {
		TxManager
		CustomerRepoFactory
		DeliveryPersonRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	RegisterOrderUoWFactory interface {
		Create() RegisterOrderUoW
	}
)
