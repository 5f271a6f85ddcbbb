package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerEntry_Transitions(t *testing.T) {
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	entry := domain.NewLedgerEntry(1, 10)
	require.NoError(t, entry.Validate(now))

	entry.Lock(now.Add(5 * time.Minute))
	assert.True(t, entry.IsHeld(now))
	assert.False(t, entry.IsExpired(now))
	require.NoError(t, entry.Validate(now))

	later := now.Add(5 * time.Minute)
	assert.False(t, entry.IsHeld(later), "hold ends exactly at locked_until")
	assert.True(t, entry.IsExpired(later))
	assert.Error(t, entry.Validate(later))

	entry.Release()
	assert.Equal(t, domain.SeatAvailable, entry.Status)
	assert.Nil(t, entry.LockedUntil)
	require.NoError(t, entry.Validate(later))

	bookingID := uuid.New()
	entry.Lock(now.Add(time.Minute))
	entry.Book(bookingID)
	assert.True(t, entry.IsBooked())
	assert.Nil(t, entry.LockedUntil)
	assert.Equal(t, bookingID, *entry.BookingID)
	require.NoError(t, entry.Validate(later))
}

func TestLedgerEntry_LockedWithoutDeadlineIsExpired(t *testing.T) {
	entry := domain.LedgerEntry{ShowtimeID: 1, SeatID: 2, Status: domain.SeatLocked}
	assert.True(t, entry.IsExpired(time.Now()))
}

func TestLedgerEntry_Effective(t *testing.T) {
	now := time.Now()
	entry := domain.NewLedgerEntry(1, 2)
	entry.Lock(now.Add(-time.Second))

	view := entry.Effective(now)

	assert.Equal(t, domain.SeatAvailable, view.Status)
	assert.Nil(t, view.LockedUntil)
	assert.Equal(t, domain.SeatLocked, entry.Status, "original entry is untouched")
}

func TestNormalizeSeatIDs(t *testing.T) {
	ids, err := domain.NormalizeSeatIDs([]int64{3, 1, 3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, ids)

	_, err = domain.NormalizeSeatIDs(nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = domain.NormalizeSeatIDs([]int64{4, 0})
	assert.ErrorIs(t, err, domain.ErrInvalidSeatID)
}

func TestErrorKinds(t *testing.T) {
	var err error = &domain.SeatConflictError{SeatID: 7, Status: domain.SeatBooked}
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.EqualError(t, err, "seat 7 is already booked")

	wrapped := errors.Join(errors.New("tx aborted"), &domain.UnknownSeatError{SeatID: 99, ShowtimeID: 1})
	assert.ErrorIs(t, wrapped, domain.ErrValidation)

	seatID, ok := domain.SeatIDOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, int64(99), seatID)

	assert.ErrorIs(t, domain.ErrShowtimeNotFound, domain.ErrNotFound)
}
