// Package eventlog publishes domain events to the application log. It is the
// fallback when no message broker is configured.
package eventlog

import (
	"context"
	"log/slog"

	"bookstore/internal/core/domain/model/kernel"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "event_log")}
}

func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, event := range events {
		p.logger.InfoContext(ctx, "domain event",
			"event", event.EventName(),
			"occurred_at", event.OccurredAt(),
			"payload", event,
		)
	}
	return nil
}
