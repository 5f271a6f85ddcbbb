package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatLocked    SeatStatus = "LOCKED"
	SeatBooked    SeatStatus = "BOOKED"
)

type SeatType string

const (
	SeatRegular SeatType = "REGULAR"
	SeatVIP     SeatType = "VIP"
)

// Seat is a physical seat of a screen. It never changes once created.
type Seat struct {
	ID       int64
	ScreenID int64
	Row      string
	Column   int
	Type     SeatType
}

func (s Seat) Label() string {
	return fmt.Sprintf("%s%d", s.Row, s.Column)
}

// LedgerEntry is the availability record of one seat for one showtime.
type LedgerEntry struct {
	ShowtimeID  int64
	SeatID      int64
	Status      SeatStatus
	LockedUntil *time.Time
	BookingID   *uuid.UUID
}

func NewLedgerEntry(showtimeID, seatID int64) LedgerEntry {
	return LedgerEntry{ShowtimeID: showtimeID, SeatID: seatID, Status: SeatAvailable}
}

// IsHeld reports whether the entry carries a lock that is still live at now.
func (e LedgerEntry) IsHeld(now time.Time) bool {
	return e.Status == SeatLocked && e.LockedUntil != nil && e.LockedUntil.After(now)
}

// IsExpired reports whether the entry is LOCKED but its hold has run out.
// A LOCKED entry without a deadline counts as expired.
func (e LedgerEntry) IsExpired(now time.Time) bool {
	return e.Status == SeatLocked && !e.IsHeld(now)
}

func (e LedgerEntry) IsBooked() bool {
	return e.Status == SeatBooked
}

func (e *LedgerEntry) Lock(until time.Time) {
	e.Status = SeatLocked
	e.LockedUntil = &until
	e.BookingID = nil
}

func (e *LedgerEntry) Release() {
	e.Status = SeatAvailable
	e.LockedUntil = nil
	e.BookingID = nil
}

func (e *LedgerEntry) Book(bookingID uuid.UUID) {
	e.Status = SeatBooked
	e.LockedUntil = nil
	e.BookingID = &bookingID
}

// Effective returns the entry as a reader should see it at now: a hold that
// already ran out shows as AVAILABLE even if nobody released it yet.
func (e LedgerEntry) Effective(now time.Time) LedgerEntry {
	if e.IsExpired(now) {
		e.Release()
	}
	return e
}

// Validate checks the status/field pairing of the entry at now.
func (e LedgerEntry) Validate(now time.Time) error {
	switch e.Status {
	case SeatAvailable:
		if e.LockedUntil != nil || e.BookingID != nil {
			return fmt.Errorf("seat %d: available entry carries lock or booking", e.SeatID)
		}
	case SeatLocked:
		if !e.IsHeld(now) {
			return fmt.Errorf("seat %d: locked entry without a live deadline", e.SeatID)
		}
		if e.BookingID != nil {
			return fmt.Errorf("seat %d: locked entry carries a booking", e.SeatID)
		}
	case SeatBooked:
		if e.BookingID == nil || e.LockedUntil != nil {
			return fmt.Errorf("seat %d: booked entry must carry only a booking id", e.SeatID)
		}
	default:
		return fmt.Errorf("seat %d: unknown status %q", e.SeatID, e.Status)
	}
	return nil
}

// SeatState is one cell of a seat map.
type SeatState struct {
	Seat        Seat
	Status      SeatStatus
	LockedUntil *time.Time
}

type SeatMap struct {
	Showtime ShowtimeDetails
	Seats    []SeatState
}

// SeatChangeEvent describes a committed ledger transition for a set of seats.
type SeatChangeEvent struct {
	ShowtimeID  int64      `json:"showtime_id"`
	SeatIDs     []int64    `json:"seat_ids"`
	Status      SeatStatus `json:"status"`
	LockedUntil *time.Time `json:"locked_until,omitempty"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	OccurredAt  time.Time  `json:"occurred_at"`
}

// NormalizeSeatIDs drops repeated ids, keeping first-occurrence order, and
// rejects empty or non-positive input.
func NormalizeSeatIDs(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, ErrNoSeats
	}

	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, ErrInvalidSeatID
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
