package ports

import (
	"context"

	"bookstore/internal/core/domain/model/catalog"
	"bookstore/internal/core/domain/model/kernel"
)

type CategoryRepository interface {
	Add(ctx context.Context, category *catalog.Category) error

	Update(ctx context.Context, category *catalog.Category) error

	Get(ctx context.Context, id int64) (*catalog.Category, error)

	Delete(ctx context.Context, id int64) error
}

type CustomerRepository interface {
	Add(ctx context.Context, customer *catalog.Customer) error

	Update(ctx context.Context, customer *catalog.Customer) error

	Get(ctx context.Context, nationalID kernel.NationalID) (*catalog.Customer, error)

	Delete(ctx context.Context, nationalID kernel.NationalID) error
}

type ProductRepository interface {
	Add(ctx context.Context, product *catalog.Product) error

	Update(ctx context.Context, product *catalog.Product) error

	Get(ctx context.Context, serialNumber string) (*catalog.Product, error)

	// GetForUpdate row-locks the requested products in serial order. Unknown
	// serial numbers are simply absent from the result.
	GetForUpdate(ctx context.Context, serialNumbers []string) (map[string]*catalog.Product, error)

	Delete(ctx context.Context, serialNumber string) error
}

type DeliveryPersonRepository interface {
	Add(ctx context.Context, person *catalog.DeliveryPerson) error

	Update(ctx context.Context, person *catalog.DeliveryPerson) error

	Get(ctx context.Context, nationalID kernel.NationalID) (*catalog.DeliveryPerson, error)

	Delete(ctx context.Context, nationalID kernel.NationalID) error
}
