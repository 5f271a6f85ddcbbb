package publisher_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/seat_ledger/internal/adapter/publisher"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatPublisher_PublishesOnShowtimeChannel(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	until := time.Date(2026, 1, 1, 20, 5, 0, 0, time.UTC)
	event := domain.SeatChangeEvent{
		ShowtimeID:  3,
		SeatIDs:     []int64{4, 5},
		Status:      domain.SeatLocked,
		LockedUntil: &until,
		OccurredAt:  until.Add(-5 * time.Minute),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	mockRedis.ExpectPublish("showtime:3:seats", string(payload)).SetVal(2)

	err = publisher.NewSeatPublisher(db).PublishSeatChanges(context.Background(), event)

	assert.NoError(t, err)
	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestSeatPublisher_ReportsRedisFailure(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	event := domain.SeatChangeEvent{ShowtimeID: 3, SeatIDs: []int64{4}, Status: domain.SeatAvailable}
	payload, _ := json.Marshal(event)

	mockRedis.ExpectPublish("showtime:3:seats", string(payload)).SetErr(errors.New("connection refused"))

	err := publisher.NewSeatPublisher(db).PublishSeatChanges(context.Background(), event)

	assert.ErrorContains(t, err, "connection refused")
}

type recordingChannel struct {
	key string
	msg amqp.Publishing
	err error
}

func (c *recordingChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	c.key = key
	c.msg = msg
	return c.err
}

func TestBookingPublisher_PersistentJSON(t *testing.T) {
	ch := &recordingChannel{}
	event := domain.BookingConfirmedEvent{
		BookingID:   uuid.New(),
		UserID:      7,
		ShowtimeID:  1,
		MovieTitle:  "Arrival",
		SeatIDs:     []int64{1, 2},
		TotalAmount: decimal.RequireFromString("25.00"),
		ConfirmedAt: time.Now().UTC(),
	}

	err := publisher.NewBookingPublisher(ch, "booking.confirmed").PublishBookingConfirmed(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, "booking.confirmed", ch.key)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, event.BookingID.String(), ch.msg.MessageId)

	var decoded domain.BookingConfirmedEvent
	require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
	assert.Equal(t, event.BookingID, decoded.BookingID)
	assert.True(t, decoded.TotalAmount.Equal(event.TotalAmount))
}

func TestBookingPublisher_WrapsChannelError(t *testing.T) {
	ch := &recordingChannel{err: amqp.ErrClosed}

	err := publisher.NewBookingPublisher(ch, "q").PublishBookingConfirmed(context.Background(), domain.BookingConfirmedEvent{})

	assert.ErrorIs(t, err, amqp.ErrClosed)
}
