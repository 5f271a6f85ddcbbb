package ports

import (
	"context"
	"time"

	"github.com/srgjo27/seat_ledger/internal/core/domain"
)

// SeatEventPublisher fans committed seat transitions out to live viewers.
type SeatEventPublisher interface {
	PublishSeatChanges(ctx context.Context, event domain.SeatChangeEvent) error
}

type BookingEventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event domain.BookingConfirmedEvent) error
}

// Metrics receives operation outcomes from the services.
type Metrics interface {
	ObserveLock(outcome string, seats int)
	ObserveBooking(outcome string, seats int)
	ObserveExpired(released int)
	ObserveDuration(operation string, elapsed time.Duration)
}
