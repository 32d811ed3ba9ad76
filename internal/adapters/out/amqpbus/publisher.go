// Package amqpbus publishes domain events to a RabbitMQ topic exchange. The
// routing key is the event name, e.g. "order.registered".
package amqpbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"bookstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeKind = "topic"
	contentType  = "application/json"
	appID        = "bookstore"
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp.Connection
	mu       sync.Mutex
	ch       channel
	exchange string
	logger   *slog.Logger
}

// NewPublisher connects to url and declares exchange as a durable topic exchange.
func NewPublisher(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	p := newPublisher(ch, exchange, logger)
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange string, logger *slog.Logger) *Publisher {
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "amqp_publisher"),
	}
}

// Publish sends the events one message each. It stops at the first failure
// and reports which event failed.
func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, event := range events {
		msg, err := newPublishing(event)
		if err != nil {
			return err
		}

		if err = p.ch.PublishWithContext(ctx, p.exchange, event.EventName(), false, false, msg); err != nil {
			return fmt.Errorf("publish %s: %w", event.EventName(), err)
		}

		p.logger.DebugContext(ctx, "event published",
			"event", event.EventName(),
			"message_id", msg.MessageId,
		)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}

func newPublishing(event kernel.DomainEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encode %s: %w", event.EventName(), err)
	}

	return amqp.Publishing{
		ContentType:  contentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    event.OccurredAt(),
		Type:         event.EventName(),
		AppId:        appID,
		Body:         body,
	}, nil
}
