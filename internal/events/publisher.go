package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/mwhite7112/woodpantry-rates/internal/shipping"
)

const (
	exchangeName = "rates.topic"
	routingKey   = "rates.quoted"
)

// channelOpener is satisfied by *amqp.Connection.
type channelOpener interface {
	Channel() (*amqp.Channel, error)
	Close() error
}

// RatesQuotedPublisher publishes rates.quoted events.
type RatesQuotedPublisher struct {
	conn channelOpener
}

type ratesQuotedEvent struct {
	Timestamp  string `json:"timestamp"`
	ShipmentID string `json:"shipment_id"`
	Status     string `json:"status"`
	RateCount  int    `json:"rate_count"`
	Mock       bool   `json:"mock"`
	Error      string `json:"error,omitempty"`
}

// NewRatesQuotedPublisher creates a RabbitMQ publisher and ensures the
// topic exchange exists.
func NewRatesQuotedPublisher(rabbitmqURL string) (*RatesQuotedPublisher, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchangeName, err)
	}

	return &RatesQuotedPublisher{conn: conn}, nil
}

func newRatesQuotedEvent(quote shipping.Quote, now time.Time) ratesQuotedEvent {
	return ratesQuotedEvent{
		Timestamp:  now.UTC().Format(time.RFC3339),
		ShipmentID: quote.ShipmentID,
		Status:     quote.Status.String(),
		RateCount:  len(quote.Rates),
		Mock:       quote.Mock,
		Error:      quote.Error,
	}
}

// PublishRatesQuoted publishes a summary of a completed quote. Rate details
// are not included.
func (p *RatesQuotedPublisher) PublishRatesQuoted(ctx context.Context, quote shipping.Quote) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	now := time.Now()
	body, err := json.Marshal(newRatesQuotedEvent(quote, now))
	if err != nil {
		return fmt.Errorf("marshal rates.quoted event: %w", err)
	}

	if err := ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now.UTC(),
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish rates.quoted: %w", err)
	}

	return nil
}

// Close closes the RabbitMQ connection.
func (p *RatesQuotedPublisher) Close() error {
	return p.conn.Close()
}
