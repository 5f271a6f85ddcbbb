package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/srgjo27/seat_ledger/internal/core/ports"
)

type LockResult struct {
	ShowtimeID  int64
	SeatIDs     []int64
	LockedUntil time.Time
	TTL         time.Duration
}

// SeatService grants temporary holds on seats and projects the seat map of a
// showtime.
type SeatService struct {
	catalog ports.CatalogRepository
	ledger  ports.LedgerRepository
	txm     ports.TxManager
	lockTTL time.Duration
	opts    options
}

func NewSeatService(catalog ports.CatalogRepository, ledger ports.LedgerRepository, txm ports.TxManager, lockTTL time.Duration, opts ...Option) *SeatService {
	return &SeatService{
		catalog: catalog,
		ledger:  ledger,
		txm:     txm,
		lockTTL: lockTTL,
		opts:    newOptions(opts),
	}
}

func (s *SeatService) LockTTL() time.Duration {
	return s.lockTTL
}

// LockSeats places a hold of LockTTL on every seat in seatIDs, or on none of
// them. A seat that is booked or held by a live lock fails the whole request.
func (s *SeatService) LockSeats(ctx context.Context, showtimeID int64, seatIDs []int64) (res *LockResult, err error) {
	started := time.Now()
	var ids []int64
	defer func() {
		s.opts.metrics.ObserveLock(outcomeOf(err), len(ids))
		s.opts.metrics.ObserveDuration("lock_seats", time.Since(started))
	}()

	ids, err = domain.NormalizeSeatIDs(seatIDs)
	if err != nil {
		return nil, err
	}

	showtime, err := s.catalog.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	now := s.opts.now()
	if err := releaseExpired(ctx, s.ledger, s.opts, showtime.ID, now); err != nil {
		return nil, err
	}

	until := now.Add(s.lockTTL)
	err = s.txm.WithinTx(ctx, func(ctx context.Context, tx ports.LedgerTx) error {
		entries, err := lockRequested(ctx, tx, *showtime, ids)
		if err != nil {
			return err
		}

		for _, id := range ids {
			entry := entries[id]
			if entry.IsBooked() || entry.IsHeld(now) {
				return &domain.SeatConflictError{SeatID: id, Status: entry.Status}
			}
		}

		updated := make([]domain.LedgerEntry, 0, len(ids))
		for _, id := range ids {
			entry := entries[id]
			entry.Lock(until)
			updated = append(updated, entry)
		}
		return tx.UpdateEntries(ctx, updated)
	})
	if err != nil {
		s.opts.logger.DebugContext(ctx, "lock rejected",
			"showtime_id", showtimeID,
			"seat_ids", ids,
			"error", err,
		)
		return nil, err
	}

	s.opts.logger.InfoContext(ctx, "seats locked",
		"showtime_id", showtime.ID,
		"seat_ids", ids,
		"locked_until", until,
	)
	publishSeats(ctx, s.opts, domain.SeatChangeEvent{
		ShowtimeID:  showtime.ID,
		SeatIDs:     ids,
		Status:      domain.SeatLocked,
		LockedUntil: &until,
		OccurredAt:  now,
	})

	return &LockResult{
		ShowtimeID:  showtime.ID,
		SeatIDs:     ids,
		LockedUntil: until,
		TTL:         s.lockTTL,
	}, nil
}

// GetSeatMap returns every seat of the showtime's screen with its current
// status. Ledger rows that did not exist yet are created and committed first.
func (s *SeatService) GetSeatMap(ctx context.Context, showtimeID int64) (_ *domain.SeatMap, err error) {
	started := time.Now()
	defer func() { s.opts.metrics.ObserveDuration("seat_map", time.Since(started)) }()

	details, err := s.catalog.GetShowtimeDetails(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	now := s.opts.now()
	if err := releaseExpired(ctx, s.ledger, s.opts, details.ID, now); err != nil {
		return nil, err
	}

	err = s.txm.WithinTx(ctx, func(ctx context.Context, tx ports.LedgerTx) error {
		created, err := tx.EnsureEntries(ctx, details.ID, details.ScreenID)
		if err != nil {
			return fmt.Errorf("materialize ledger: %w", err)
		}
		if created > 0 {
			s.opts.logger.InfoContext(ctx, "ledger materialized", "showtime_id", details.ID, "created", created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	seats, err := s.catalog.ListScreenSeats(ctx, details.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("list screen seats: %w", err)
	}

	entries, err := s.ledger.ListEntries(ctx, details.ID)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}

	return &domain.SeatMap{
		Showtime: *details,
		Seats:    projectSeats(details.ID, seats, entries, now),
	}, nil
}

func projectSeats(showtimeID int64, seats []domain.Seat, entries []domain.LedgerEntry, now time.Time) []domain.SeatState {
	byID := make(map[int64]domain.LedgerEntry, len(entries))
	for _, e := range entries {
		byID[e.SeatID] = e
	}

	sorted := append([]domain.Seat(nil), seats...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Column < sorted[j].Column
	})

	states := make([]domain.SeatState, 0, len(sorted))
	for _, seat := range sorted {
		entry, ok := byID[seat.ID]
		if !ok {
			entry = domain.NewLedgerEntry(showtimeID, seat.ID)
		}
		entry = entry.Effective(now)

		state := domain.SeatState{Seat: seat, Status: entry.Status}
		if entry.Status == domain.SeatLocked {
			state.LockedUntil = entry.LockedUntil
		}
		states = append(states, state)
	}
	return states
}
