package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error the core returns to callers wraps one of these.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

var (
	ErrShowtimeNotFound = fmt.Errorf("showtime %w", ErrNotFound)
	ErrBookingNotFound  = fmt.Errorf("booking %w", ErrNotFound)
	ErrMovieNotFound    = fmt.Errorf("movie %w", ErrNotFound)
	ErrScreenNotFound   = fmt.Errorf("screen %w", ErrNotFound)

	ErrNoSeats          = fmt.Errorf("%w: no seats selected", ErrValidation)
	ErrInvalidSeatID    = fmt.Errorf("%w: seat ids must be positive", ErrValidation)
	ErrInvalidUser      = fmt.Errorf("%w: user id is required", ErrValidation)
	ErrInvalidPrice     = fmt.Errorf("%w: price must be non-negative with at most 2 decimal places", ErrValidation)
	ErrInvalidStartTime = fmt.Errorf("%w: start time is required", ErrValidation)
	ErrInvalidDate      = fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
)

// SeatConflictError names the seat that blocked a lock or a booking.
type SeatConflictError struct {
	SeatID int64
	Status SeatStatus
}

func (e *SeatConflictError) Error() string {
	if e.Status == SeatBooked {
		return fmt.Sprintf("seat %d is already booked", e.SeatID)
	}
	return fmt.Sprintf("seat %d is locked by another request", e.SeatID)
}

func (e *SeatConflictError) Unwrap() error { return ErrConflict }

// UnknownSeatError is returned for a seat id that is not part of the
// showtime's screen.
type UnknownSeatError struct {
	SeatID     int64
	ShowtimeID int64
}

func (e *UnknownSeatError) Error() string {
	return fmt.Sprintf("seat %d does not belong to showtime %d", e.SeatID, e.ShowtimeID)
}

func (e *UnknownSeatError) Unwrap() error { return ErrValidation }

// SeatIDOf extracts the seat id carried by err, if any.
func SeatIDOf(err error) (int64, bool) {
	var conflict *SeatConflictError
	if errors.As(err, &conflict) {
		return conflict.SeatID, true
	}
	var unknown *UnknownSeatError
	if errors.As(err, &unknown) {
		return unknown.SeatID, true
	}
	return 0, false
}
