package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	RoutingBookingConfirmed = "booking.confirmed"
	RoutingBookingCanceled  = "booking.canceled"
)

// BookingEvent is the message body for booking lifecycle notifications.
type BookingEvent struct {
	BookingID  string    `json:"booking_id"`
	UserID     string    `json:"user_id"`
	ShowtimeID string    `json:"showtime_id"`
	Seats      []int     `json:"seats"`
	TotalPrice int64     `json:"total_price"`
	Status     string    `json:"status"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}

type amqpPublisher struct {
	conn     *amqp.Connection
	mu       sync.Mutex // amqp channels are not safe for concurrent publishes
	channel  *amqp.Channel
	exchange string
	log      *zap.Logger
}

// NewAMQPPublisher dials the broker and declares a durable topic exchange.
func NewAMQPPublisher(url, exchange string, log *zap.Logger) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare %s: %w", exchange, err)
	}

	return &amqpPublisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		log:      log.With(zap.String("publisher", "amqp")),
	}, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	p.mu.Lock()
	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish %s/%s: %w", p.exchange, routingKey, err)
	}

	p.log.Debug("Event published",
		zap.String("exchange", p.exchange),
		zap.String("routing_key", routingKey),
	)
	return nil
}

func (p *amqpPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return fmt.Errorf("close rabbitmq channel: %w", err)
	}
	return p.conn.Close()
}

type noopPublisher struct{}

// NewNoopPublisher drops every event. Used when no broker is configured.
func NewNoopPublisher() Publisher { return noopPublisher{} }

func (noopPublisher) Publish(context.Context, string, any) error { return nil }

func (noopPublisher) Close() error { return nil }
