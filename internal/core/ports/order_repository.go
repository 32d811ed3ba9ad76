package ports

import (
	"context"

	"bookstore/internal/core/domain/model/order"
)

type OrderRepository interface {
	// Add inserts the header and lines and assigns the generated number to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the header fields of an existing order. Lines are immutable.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, number int64) (*order.Order, error)

	// GetPendingForUpdate loads and row-locks an order only if it is Pending.
	GetPendingForUpdate(ctx context.Context, number int64) (*order.Order, error)

	// Delete removes the order and, by cascade, its lines.
	Delete(ctx context.Context, number int64) error
}
