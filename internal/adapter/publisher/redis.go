package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
)

// SeatChannel is the pub/sub channel carrying seat changes of a showtime.
func SeatChannel(showtimeID int64) string {
	return fmt.Sprintf("showtime:%d:seats", showtimeID)
}

// SeatPublisher announces committed seat transitions on Redis pub/sub. It
// never stores seat state.
type SeatPublisher struct {
	client *redis.Client
}

func NewSeatPublisher(client *redis.Client) *SeatPublisher {
	return &SeatPublisher{client: client}
}

func (p *SeatPublisher) PublishSeatChanges(ctx context.Context, event domain.SeatChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode seat change: %w", err)
	}

	if err := p.client.Publish(ctx, SeatChannel(event.ShowtimeID), string(payload)).Err(); err != nil {
		return fmt.Errorf("publish seat change: %w", err)
	}

	return nil
}
