package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
)

type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// BookingPublisher puts a message on a durable queue for every confirmed
// booking.
type BookingPublisher struct {
	ch    Channel
	queue string
	conn  *amqp.Connection
}

func NewBookingPublisher(ch Channel, queue string) *BookingPublisher {
	return &BookingPublisher{ch: ch, queue: queue}
}

// DialBookingPublisher connects to the broker and declares queue.
func DialBookingPublisher(url, queue string) (*BookingPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return &BookingPublisher{ch: ch, queue: queue, conn: conn}, nil
}

func (p *BookingPublisher) PublishBookingConfirmed(ctx context.Context, event domain.BookingConfirmedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode booking event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.BookingID.String(),
		Timestamp:    event.ConfirmedAt,
		Type:         p.queue,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish booking %s: %w", event.BookingID, err)
	}

	return nil
}

func (p *BookingPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	if errors.Is(err, amqp.ErrClosed) {
		return nil
	}
	return err
}
