package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/srgjo27/seat_ledger/internal/core/ports"
)

type CreateBookingRequest struct {
	UserID     int64
	ShowtimeID int64
	SeatIDs    []int64
}

type BookingService struct {
	catalog  ports.CatalogRepository
	ledger   ports.LedgerRepository
	txm      ports.TxManager
	bookings ports.BookingRepository
	opts     options
}

func NewBookingService(catalog ports.CatalogRepository, ledger ports.LedgerRepository, txm ports.TxManager, bookings ports.BookingRepository, opts ...Option) *BookingService {
	return &BookingService{
		catalog:  catalog,
		ledger:   ledger,
		txm:      txm,
		bookings: bookings,
		opts:     newOptions(opts),
	}
}

// CreateBooking turns the requested seats into a confirmed booking in a
// single transaction. Seats held by a live lock can still be booked: holds
// carry no owner, so there is nobody to check them against.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (res *domain.BookingDetails, err error) {
	started := time.Now()
	var ids []int64
	defer func() {
		s.opts.metrics.ObserveBooking(outcomeOf(err), len(ids))
		s.opts.metrics.ObserveDuration("create_booking", time.Since(started))
	}()

	if req.UserID <= 0 {
		return nil, domain.ErrInvalidUser
	}

	ids, err = domain.NormalizeSeatIDs(req.SeatIDs)
	if err != nil {
		return nil, err
	}

	details, err := s.catalog.GetShowtimeDetails(ctx, req.ShowtimeID)
	if err != nil {
		return nil, err
	}

	now := s.opts.now()
	if err := releaseExpired(ctx, s.ledger, s.opts, details.ID, now); err != nil {
		return nil, err
	}

	booking := domain.NewBooking(uuid.New(), req.UserID, details.Showtime, ids, now)

	err = s.txm.WithinTx(ctx, func(ctx context.Context, tx ports.LedgerTx) error {
		entries, err := lockRequested(ctx, tx, details.Showtime, ids)
		if err != nil {
			return err
		}

		for _, id := range ids {
			if entry := entries[id]; entry.IsBooked() {
				return &domain.SeatConflictError{SeatID: id, Status: entry.Status}
			}
		}

		if err := tx.CreateBooking(ctx, booking); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		updated := make([]domain.LedgerEntry, 0, len(ids))
		for _, id := range ids {
			entry := entries[id]
			entry.Book(booking.ID)
			updated = append(updated, entry)
		}
		return tx.UpdateEntries(ctx, updated)
	})
	if err != nil {
		return nil, err
	}

	s.opts.logger.InfoContext(ctx, "booking created",
		"booking_id", booking.ID,
		"user_id", booking.UserID,
		"showtime_id", booking.ShowtimeID,
		"seat_ids", ids,
		"total_amount", booking.TotalAmount.StringFixed(2),
	)

	bookingID := booking.ID
	publishSeats(ctx, s.opts, domain.SeatChangeEvent{
		ShowtimeID: booking.ShowtimeID,
		SeatIDs:    ids,
		Status:     domain.SeatBooked,
		BookingID:  &bookingID,
		OccurredAt: now,
	})

	out := &domain.BookingDetails{Booking: *booking, Showtime: *details}
	s.attachSeats(ctx, out)

	if err := s.opts.bookingEvents.PublishBookingConfirmed(ctx, domain.NewBookingConfirmedEvent(*out)); err != nil {
		s.opts.logger.ErrorContext(ctx, "booking event not published", "booking_id", booking.ID, "error", err)
	}

	return out, nil
}

// attachSeats fills in seat positions for a freshly created booking. The
// booking is already committed, so a failed lookup only costs detail.
func (s *BookingService) attachSeats(ctx context.Context, b *domain.BookingDetails) {
	seats, err := s.catalog.ListScreenSeats(ctx, b.Showtime.ScreenID)
	if err != nil {
		s.opts.logger.WarnContext(ctx, "booking seats not resolved", "booking_id", b.ID, "error", err)
		return
	}

	byID := make(map[int64]domain.Seat, len(seats))
	for _, seat := range seats {
		byID[seat.ID] = seat
	}
	for i := range b.Seats {
		if seat, ok := byID[b.Seats[i].SeatID]; ok {
			b.Seats[i].Seat = &seat
		}
	}
}

// GetBooking returns the booking only if it belongs to userID. A booking of
// another user is reported as not found.
func (s *BookingService) GetBooking(ctx context.Context, bookingID uuid.UUID, userID int64) (*domain.BookingDetails, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidUser
	}

	booking, err := s.bookings.GetByIDForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	details, err := s.catalog.GetShowtimeDetails(ctx, booking.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("showtime of booking %s: %w", booking.ID, err)
	}

	return &domain.BookingDetails{Booking: *booking, Showtime: *details}, nil
}

func (s *BookingService) ListBookings(ctx context.Context, userID int64) ([]domain.BookingDetails, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidUser
	}

	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	showtimes := make(map[int64]*domain.ShowtimeDetails)
	out := make([]domain.BookingDetails, 0, len(bookings))
	for _, b := range bookings {
		details, ok := showtimes[b.ShowtimeID]
		if !ok {
			details, err = s.catalog.GetShowtimeDetails(ctx, b.ShowtimeID)
			if err != nil {
				return nil, fmt.Errorf("showtime of booking %s: %w", b.ID, err)
			}
			showtimes[b.ShowtimeID] = details
		}
		out = append(out, domain.BookingDetails{Booking: b, Showtime: *details})
	}
	return out, nil
}
