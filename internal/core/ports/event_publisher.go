package ports

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
)

type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
