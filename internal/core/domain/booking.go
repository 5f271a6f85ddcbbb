package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID          uuid.UUID
	UserID      int64
	ShowtimeID  int64
	Status      BookingStatus
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	Seats       []BookingSeat
}

type BookingSeat struct {
	BookingID uuid.UUID
	SeatID    int64
	Seat      *Seat
}

// NewBooking builds a confirmed booking of seatIDs at the showtime's flat
// price. seatIDs must already be free of duplicates.
func NewBooking(id uuid.UUID, userID int64, showtime Showtime, seatIDs []int64, now time.Time) *Booking {
	seats := make([]BookingSeat, 0, len(seatIDs))
	for _, seatID := range seatIDs {
		seats = append(seats, BookingSeat{BookingID: id, SeatID: seatID})
	}

	return &Booking{
		ID:          id,
		UserID:      userID,
		ShowtimeID:  showtime.ID,
		Status:      BookingConfirmed,
		TotalAmount: TotalFor(showtime.Price, len(seatIDs)),
		CreatedAt:   now,
		Seats:       seats,
	}
}

func TotalFor(price decimal.Decimal, seats int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(seats)))
}

func (b Booking) SeatIDs() []int64 {
	ids := make([]int64, 0, len(b.Seats))
	for _, s := range b.Seats {
		ids = append(ids, s.SeatID)
	}
	return ids
}

// BookingDetails is a booking with the showtime context it was made for.
type BookingDetails struct {
	Booking
	Showtime ShowtimeDetails
}

type BookingConfirmedEvent struct {
	BookingID   uuid.UUID       `json:"booking_id"`
	UserID      int64           `json:"user_id"`
	ShowtimeID  int64           `json:"showtime_id"`
	MovieTitle  string          `json:"movie_title"`
	StartTime   time.Time       `json:"start_time"`
	SeatIDs     []int64         `json:"seat_ids"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ConfirmedAt time.Time       `json:"confirmed_at"`
}

func NewBookingConfirmedEvent(b BookingDetails) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		BookingID:   b.ID,
		UserID:      b.UserID,
		ShowtimeID:  b.ShowtimeID,
		MovieTitle:  b.Showtime.Movie.Title,
		StartTime:   b.Showtime.StartTime,
		SeatIDs:     b.SeatIDs(),
		TotalAmount: b.TotalAmount,
		ConfirmedAt: b.CreatedAt,
	}
}
