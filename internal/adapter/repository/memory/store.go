// Package memory is an in-process store with per-row exclusive locks. It
// backs the "memory" driver and the concurrency tests.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/srgjo27/seat_ledger/internal/core/ports"
)

// Catalog is the fixed layout and schedule a Store starts with.
type Catalog struct {
	Theaters  []domain.Theater
	Screens   []domain.Screen
	Seats     []domain.Seat
	Movies    []domain.Movie
	Showtimes []domain.Showtime
}

type entryKey struct {
	showtimeID int64
	seatID     int64
}

// rowLock is a context-aware mutex for one ledger row. owner is guarded by
// Store.mu.
type rowLock struct {
	ch    chan struct{}
	owner *ledgerTx
}

type Store struct {
	mu sync.Mutex

	theaters  map[int64]domain.Theater
	screens   map[int64]domain.Screen
	seats     map[int64]domain.Seat
	movies    map[int64]domain.Movie
	showtimes map[int64]domain.Showtime
	nextID    int64

	entries  map[entryKey]domain.LedgerEntry
	rows     map[entryKey]*rowLock
	bookings map[uuid.UUID]domain.Booking
	bookedBy map[entryKey]uuid.UUID
}

var (
	_ ports.CatalogRepository = (*Store)(nil)
	_ ports.LedgerRepository  = (*Store)(nil)
	_ ports.TxManager         = (*Store)(nil)
	_ ports.BookingRepository = (*Store)(nil)
)

func NewStore(c Catalog) *Store {
	s := &Store{
		theaters:  make(map[int64]domain.Theater),
		screens:   make(map[int64]domain.Screen),
		seats:     make(map[int64]domain.Seat),
		movies:    make(map[int64]domain.Movie),
		showtimes: make(map[int64]domain.Showtime),
		entries:   make(map[entryKey]domain.LedgerEntry),
		rows:      make(map[entryKey]*rowLock),
		bookings:  make(map[uuid.UUID]domain.Booking),
		bookedBy:  make(map[entryKey]uuid.UUID),
	}
	for _, t := range c.Theaters {
		s.theaters[t.ID] = t
	}
	for _, sc := range c.Screens {
		s.screens[sc.ID] = sc
	}
	for _, seat := range c.Seats {
		s.seats[seat.ID] = seat
	}
	for _, m := range c.Movies {
		s.movies[m.ID] = m
	}
	for _, st := range c.Showtimes {
		s.showtimes[st.ID] = st
		if st.ID > s.nextID {
			s.nextID = st.ID
		}
	}
	return s
}

func (s *Store) GetShowtime(_ context.Context, showtimeID int64) (*domain.Showtime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.showtimes[showtimeID]
	if !ok {
		return nil, domain.ErrShowtimeNotFound
	}
	return &st, nil
}

func (s *Store) GetShowtimeDetails(_ context.Context, showtimeID int64) (*domain.ShowtimeDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.showtimes[showtimeID]
	if !ok {
		return nil, domain.ErrShowtimeNotFound
	}
	return &domain.ShowtimeDetails{
		Showtime: st,
		Movie:    s.movies[st.MovieID],
		Screen:   s.screenLocked(st.ScreenID),
	}, nil
}

func (s *Store) ListShowtimesForMovie(_ context.Context, movieID int64, from, to time.Time) ([]domain.ShowtimeDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.ShowtimeDetails
	for _, st := range s.showtimes {
		if st.MovieID != movieID || st.StartTime.Before(from) || !st.StartTime.Before(to) {
			continue
		}
		out = append(out, domain.ShowtimeDetails{
			Showtime: st,
			Movie:    s.movies[st.MovieID],
			Screen:   s.screenLocked(st.ScreenID),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) screenLocked(screenID int64) domain.Screen {
	sc := s.screens[screenID]
	if t, ok := s.theaters[sc.TheaterID]; ok {
		sc.Theater = &t
	}
	return sc
}

func (s *Store) ListScreenSeats(_ context.Context, screenID int64) ([]domain.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screenSeatsLocked(screenID), nil
}

func (s *Store) screenSeatsLocked(screenID int64) []domain.Seat {
	var out []domain.Seat
	for _, seat := range s.seats {
		if seat.ScreenID == screenID {
			out = append(out, seat)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Column < out[j].Column
	})
	return out
}

func (s *Store) ListScreens(_ context.Context) ([]domain.Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Screen, 0, len(s.screens))
	for id := range s.screens {
		out = append(out, s.screenLocked(id))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetScreen(_ context.Context, screenID int64) (*domain.Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.screens[screenID]; !ok {
		return nil, domain.ErrScreenNotFound
	}
	sc := s.screenLocked(screenID)
	return &sc, nil
}

func (s *Store) GetMovie(_ context.Context, movieID int64) (*domain.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[movieID]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	return &m, nil
}

func (s *Store) CreateShowtime(_ context.Context, showtime *domain.Showtime) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	showtime.ID = s.nextID
	s.showtimes[showtime.ID] = *showtime
	return nil
}

// ExpireLocks releases lapsed holds of the showtime. Rows held by an open
// transaction are left for that transaction to resolve.
func (s *Store) ExpireLocks(_ context.Context, showtimeID int64, now time.Time) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var released []int64
	for key, e := range s.entries {
		if key.showtimeID != showtimeID || !e.IsExpired(now) {
			continue
		}
		if rl := s.rows[key]; rl != nil && rl.owner != nil {
			continue
		}
		e.Release()
		s.entries[key] = e
		released = append(released, key.seatID)
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released, nil
}

func (s *Store) ListEntries(_ context.Context, showtimeID int64) ([]domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.LedgerEntry
	for key, e := range s.entries {
		if key.showtimeID == showtimeID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeatID < out[j].SeatID })
	return out, nil
}

func (s *Store) GetByIDForUser(_ context.Context, bookingID uuid.UUID, userID int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[bookingID]
	if !ok || b.UserID != userID {
		return nil, domain.ErrBookingNotFound
	}
	out := s.withSeatsLocked(b)
	return &out, nil
}

func (s *Store) ListByUser(_ context.Context, userID int64) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, s.withSeatsLocked(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) withSeatsLocked(b domain.Booking) domain.Booking {
	seats := make([]domain.BookingSeat, 0, len(b.Seats))
	for _, bs := range b.Seats {
		if seat, ok := s.seats[bs.SeatID]; ok {
			bs.Seat = &seat
		}
		seats = append(seats, bs)
	}
	b.Seats = seats
	return b
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx ports.LedgerTx) error) (err error) {
	tx := &ledgerTx{
		store:  s,
		held:   make(map[entryKey]*rowLock),
		writes: make(map[entryKey]domain.LedgerEntry),
	}
	defer func() {
		if !tx.done {
			tx.release()
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

// row returns the lock of an existing ledger row. There is nothing to lock
// for a key without an entry.
func (s *Store) row(key entryKey) (*rowLock, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return nil, false
	}
	rl, ok := s.rows[key]
	if !ok {
		rl = &rowLock{ch: make(chan struct{}, 1)}
		s.rows[key] = rl
	}
	return rl, true
}

var errRowNotLocked = errors.New("memory: ledger row written without a lock")

type ledgerTx struct {
	store    *Store
	held     map[entryKey]*rowLock
	writes   map[entryKey]domain.LedgerEntry
	bookings []domain.Booking
	done     bool
}

func (t *ledgerTx) EnsureEntries(_ context.Context, showtimeID, screenID int64) (int, error) {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	created := 0
	for _, seat := range s.screenSeatsLocked(screenID) {
		key := entryKey{showtimeID, seat.ID}
		if _, ok := s.entries[key]; ok {
			continue
		}
		s.entries[key] = domain.NewLedgerEntry(showtimeID, seat.ID)
		created++
	}
	return created, nil
}

func (t *ledgerTx) LockEntries(ctx context.Context, showtimeID int64, seatIDs []int64) ([]domain.LedgerEntry, error) {
	ids := append([]int64(nil), seatIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		key := entryKey{showtimeID, id}
		if _, ok := t.held[key]; ok {
			continue
		}
		rl, ok := t.store.row(key)
		if !ok {
			continue
		}
		select {
		case rl.ch <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		t.store.mu.Lock()
		rl.owner = t
		t.store.mu.Unlock()
		t.held[key] = rl
	}

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.LedgerEntry
	for _, id := range ids {
		key := entryKey{showtimeID, id}
		if e, ok := t.writes[key]; ok {
			out = append(out, e)
			continue
		}
		if e, ok := s.entries[key]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (t *ledgerTx) UpdateEntries(_ context.Context, entries []domain.LedgerEntry) error {
	for _, e := range entries {
		key := entryKey{e.ShowtimeID, e.SeatID}
		if _, ok := t.held[key]; !ok {
			return fmt.Errorf("%w: seat %d", errRowNotLocked, e.SeatID)
		}
		t.writes[key] = e
	}
	return nil
}

func (t *ledgerTx) CreateBooking(_ context.Context, booking *domain.Booking) error {
	t.bookings = append(t.bookings, *booking)
	return nil
}

func (t *ledgerTx) commit() error {
	s := t.store
	s.mu.Lock()

	for _, b := range t.bookings {
		if _, dup := s.bookings[b.ID]; dup {
			s.mu.Unlock()
			return fmt.Errorf("memory: duplicate booking %s", b.ID)
		}
		for _, bs := range b.Seats {
			if other, taken := s.bookedBy[entryKey{b.ShowtimeID, bs.SeatID}]; taken {
				s.mu.Unlock()
				return fmt.Errorf("memory: seat %d already belongs to booking %s", bs.SeatID, other)
			}
		}
	}
	for _, b := range t.bookings {
		s.bookings[b.ID] = b
		for _, bs := range b.Seats {
			s.bookedBy[entryKey{b.ShowtimeID, bs.SeatID}] = b.ID
		}
	}
	for key, e := range t.writes {
		s.entries[key] = e
	}
	s.mu.Unlock()

	t.release()
	return nil
}

func (t *ledgerTx) release() {
	t.done = true
	t.store.mu.Lock()
	for _, rl := range t.held {
		rl.owner = nil
	}
	t.store.mu.Unlock()
	for key, rl := range t.held {
		<-rl.ch
		delete(t.held, key)
	}
}
