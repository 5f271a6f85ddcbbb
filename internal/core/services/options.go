package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/srgjo27/seat_ledger/internal/core/ports"
)

type Option func(*options)

type options struct {
	now           func() time.Time
	logger        *slog.Logger
	metrics       ports.Metrics
	seatEvents    ports.SeatEventPublisher
	bookingEvents ports.BookingEventPublisher
}

func newOptions(opts []Option) options {
	o := options{
		now:           time.Now,
		logger:        slog.Default(),
		metrics:       nopMetrics{},
		seatEvents:    nopPublisher{},
		bookingEvents: nopPublisher{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithMetrics(m ports.Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

func WithSeatEvents(p ports.SeatEventPublisher) Option {
	return func(o *options) {
		if p != nil {
			o.seatEvents = p
		}
	}
}

func WithBookingEvents(p ports.BookingEventPublisher) Option {
	return func(o *options) {
		if p != nil {
			o.bookingEvents = p
		}
	}
}

type nopMetrics struct{}

func (nopMetrics) ObserveLock(string, int) {}
func (nopMetrics) ObserveBooking(string, int) {}
func (nopMetrics) ObserveExpired(int) {}
func (nopMetrics) ObserveDuration(string, time.Duration) {}

type nopPublisher struct{}

func (nopPublisher) PublishSeatChanges(context.Context, domain.SeatChangeEvent) error { return nil }

func (nopPublisher) PublishBookingConfirmed(context.Context, domain.BookingConfirmedEvent) error {
	return nil
}
