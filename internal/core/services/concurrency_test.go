package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/seat_ledger/internal/adapter/repository/memory"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/srgjo27/seat_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// movableClock lets a test step past the lock TTL.
type movableClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *movableClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *movableClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type stack struct {
	store    *memory.Store
	seats    *services.SeatService
	bookings *services.BookingService
	clock    *movableClock
}

func newStack() stack {
	c := &movableClock{now: fixedNow}
	store := memory.NewStore(memory.DemoCatalog(fixedNow))
	opts := []services.Option{services.WithClock(c.Now), services.WithLogger(newTestLogger())}
	return stack{
		store:    store,
		seats:    services.NewSeatService(store, store, store, ttl, opts...),
		bookings: services.NewBookingService(store, store, store, store, opts...),
		clock:    c,
	}
}

func TestConcurrentLocks_ExactlyOneWins(t *testing.T) {
	s := newStack()
	ctx := context.Background()
	const callers = 16

	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.seats.LockSeats(ctx, 1, []int64{3, 4})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	wins := 0
	for err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrConflict)
	}
	assert.Equal(t, 1, wins)
}

func TestConcurrentBookings_NoDoubleSale(t *testing.T) {
	s := newStack()
	ctx := context.Background()
	const callers = 10

	var wg sync.WaitGroup
	results := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(user int64) {
			defer wg.Done()
			_, err := s.bookings.CreateBooking(ctx, services.CreateBookingRequest{
				UserID: user, ShowtimeID: 1, SeatIDs: []int64{8, 7},
			})
			results <- err
		}(int64(i + 1))
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, domain.ErrConflict)
		}
	}
	assert.Equal(t, 1, wins)
}

func TestLockAndDisjointBooking_BothSucceed(t *testing.T) {
	s := newStack()
	ctx := context.Background()

	var wg sync.WaitGroup
	var lockErr, bookErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, lockErr = s.seats.LockSeats(ctx, 1, []int64{1, 2})
	}()
	go func() {
		defer wg.Done()
		_, bookErr = s.bookings.CreateBooking(ctx, services.CreateBookingRequest{
			UserID: 5, ShowtimeID: 1, SeatIDs: []int64{9, 10},
		})
	}()
	wg.Wait()

	assert.NoError(t, lockErr)
	assert.NoError(t, bookErr)
}

func TestLockExpiry_SecondCallerSucceedsAfterTTL(t *testing.T) {
	s := newStack()
	ctx := context.Background()

	_, err := s.seats.LockSeats(ctx, 1, []int64{12})
	require.NoError(t, err)

	_, err = s.seats.LockSeats(ctx, 1, []int64{12})
	assert.ErrorIs(t, err, domain.ErrConflict)

	s.clock.Advance(ttl)

	res, err := s.seats.LockSeats(ctx, 1, []int64{12})
	require.NoError(t, err)
	assert.Equal(t, s.clock.Now().Add(ttl), res.LockedUntil)
}

func TestPartialConflict_LeavesFreeSeatUntouched(t *testing.T) {
	s := newStack()
	ctx := context.Background()

	_, err := s.seats.LockSeats(ctx, 1, []int64{2})
	require.NoError(t, err)

	_, err = s.seats.LockSeats(ctx, 1, []int64{1, 2})
	seatID, _ := domain.SeatIDOf(err)
	assert.Equal(t, int64(2), seatID)

	seatMap, err := s.seats.GetSeatMap(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.SeatAvailable, seatMap.Seats[0].Status, "A1 stays available")
	assert.Equal(t, domain.SeatLocked, seatMap.Seats[1].Status)
}

func TestBookingFlow_EndToEnd(t *testing.T) {
	s := newStack()
	ctx := context.Background()

	seatMap, err := s.seats.GetSeatMap(ctx, 1)
	require.NoError(t, err)
	require.Len(t, seatMap.Seats, 40)
	entries, err := s.store.ListEntries(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 40, "first view materializes the ledger")

	_, err = s.seats.LockSeats(ctx, 1, []int64{20, 21, 22})
	require.NoError(t, err)

	booking, err := s.bookings.CreateBooking(ctx, services.CreateBookingRequest{
		UserID: 9, ShowtimeID: 1, SeatIDs: []int64{20, 21, 22},
	})
	require.NoError(t, err)
	assert.True(t, booking.TotalAmount.Equal(decimal.RequireFromString("37.50")))

	_, err = s.bookings.CreateBooking(ctx, services.CreateBookingRequest{
		UserID: 10, ShowtimeID: 1, SeatIDs: []int64{22},
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	s.clock.Advance(time.Hour)
	entries, err = s.store.ListEntries(ctx, 1)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NoError(t, e.Validate(s.clock.Now()))
	}

	got, err := s.bookings.GetBooking(ctx, booking.ID, 9)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{20, 21, 22}, got.SeatIDs())

	_, err = s.bookings.GetBooking(ctx, booking.ID, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
