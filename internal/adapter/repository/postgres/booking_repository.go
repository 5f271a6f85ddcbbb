package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
)

const uniqueViolation = "23505"

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateBooking writes the booking header and its seats inside the ledger
// transaction.
func (t *ledgerTx) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	queryHeader := `
	INSERT INTO bookings (id, user_id, showtime_id, status, total_amount, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := t.tx.ExecContext(ctx, queryHeader, booking.ID, booking.UserID, booking.ShowtimeID, string(booking.Status), booking.TotalAmount, booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking header: %w", err)
	}

	querySeat := `
	INSERT INTO booking_seats (booking_id, showtime_id, seat_id)
	VALUES ($1, $2, $3)
	`

	stmt, err := t.tx.PrepareContext(ctx, querySeat)
	if err != nil {
		return fmt.Errorf("failed to prepare seat statement: %w", err)
	}

	defer stmt.Close()

	for _, seat := range booking.Seats {
		_, err := stmt.ExecContext(ctx, booking.ID, booking.ShowtimeID, seat.SeatID)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				return &domain.SeatConflictError{SeatID: seat.SeatID, Status: domain.SeatBooked}
			}
			return fmt.Errorf("failed to insert booking seat %d: %w", seat.SeatID, err)
		}
	}

	return nil
}

func (r *BookingRepository) GetByIDForUser(ctx context.Context, bookingID uuid.UUID, userID int64) (*domain.Booking, error) {
	query := `
	SELECT id, user_id, showtime_id, status, total_amount, created_at
	FROM bookings
	WHERE id = $1 AND user_id = $2
	`

	var b domain.Booking
	err := r.db.QueryRowContext(ctx, query, bookingID, userID).Scan(
		&b.ID,
		&b.UserID,
		&b.ShowtimeID,
		&b.Status,
		&b.TotalAmount,
		&b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}

		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	bookings := []domain.Booking{b}
	if err := r.attachSeats(ctx, bookings); err != nil {
		return nil, err
	}

	return &bookings[0], nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	query := `
	SELECT id, user_id, showtime_id, status, total_amount, created_at
	FROM bookings
	WHERE user_id = $1
	ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.ShowtimeID, &b.Status, &b.TotalAmount, &b.CreatedAt); err != nil {
			return nil, err
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSeats(ctx, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepository) attachSeats(ctx context.Context, bookings []domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]string, 0, len(bookings))
	index := make(map[uuid.UUID]int, len(bookings))
	for i, b := range bookings {
		ids = append(ids, b.ID.String())
		index[b.ID] = i
	}

	query := `
	SELECT bs.booking_id, s.id, s.screen_id, s.seat_row, s.seat_col, s.seat_type
	FROM booking_seats bs
	JOIN seats s ON s.id = bs.seat_id
	WHERE bs.booking_id = ANY($1::uuid[])
	ORDER BY s.seat_row, s.seat_col
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load booking seats: %w", err)
	}

	defer rows.Close()

	for rows.Next() {
		var bookingID uuid.UUID
		var seat domain.Seat
		if err := rows.Scan(&bookingID, &seat.ID, &seat.ScreenID, &seat.Row, &seat.Column, &seat.Type); err != nil {
			return err
		}

		i, ok := index[bookingID]
		if !ok {
			continue
		}

		bookings[i].Seats = append(bookings[i].Seats, domain.BookingSeat{
			BookingID: bookingID,
			SeatID:    seat.ID,
			Seat:      &seat,
		})
	}

	return rows.Err()
}
