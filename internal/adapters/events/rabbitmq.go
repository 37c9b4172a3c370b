// Package events publishes journal lifecycle events for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
)

// DefaultExchange is the topic exchange journal events go to.
const DefaultExchange = "ledger.journals"

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher sends each event as a persistent JSON message routed by
// its event type, e.g. journal.posted.
type RabbitMQPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  Channel
	exchange string
}

var _ portssvc.EventPublisher = (*RabbitMQPublisher)(nil)

// NewRabbitMQPublisher dials url and declares the exchange.
func NewRabbitMQPublisher(url, exchange string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}
	pub, err := NewPublisherOnChannel(ch, exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	pub.conn = conn
	return pub, nil
}

// NewPublisherOnChannel declares the exchange on an already open channel.
func NewPublisherOnChannel(ch Channel, exchange string) (*RabbitMQPublisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &RabbitMQPublisher{channel: ch, exchange: exchange}, nil
}

func (p *RabbitMQPublisher) PublishJournalEvent(ctx context.Context, event domain.JournalEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode journal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Type:         string(event.Type),
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, msg); err != nil {
		return fmt.Errorf("failed to publish %s for journal %s: %w", event.Type, event.JournalID, err)
	}
	return nil
}

// Close closes the channel and, when the publisher dialled it, the connection.
func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.channel.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
