package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/srgjo27/seat_ledger/internal/core/ports"
)

const (
	outcomeOK       = "ok"
	outcomeConflict = "conflict"
	outcomeNotFound = "not_found"
	outcomeInvalid  = "invalid"
	outcomeError    = "error"
)

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, domain.ErrConflict):
		return outcomeConflict
	case errors.Is(err, domain.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, domain.ErrValidation):
		return outcomeInvalid
	default:
		return outcomeError
	}
}

// releaseExpired runs the lazy expiry step for a showtime. It commits on its
// own, before the caller opens its transaction.
func releaseExpired(ctx context.Context, ledger ports.LedgerRepository, o options, showtimeID int64, now time.Time) error {
	released, err := ledger.ExpireLocks(ctx, showtimeID, now)
	if err != nil {
		return fmt.Errorf("expire locks for showtime %d: %w", showtimeID, err)
	}
	if len(released) == 0 {
		return nil
	}

	o.metrics.ObserveExpired(len(released))
	o.logger.InfoContext(ctx, "expired locks released",
		"showtime_id", showtimeID,
		"seat_ids", released,
	)
	publishSeats(ctx, o, domain.SeatChangeEvent{
		ShowtimeID: showtimeID,
		SeatIDs:    released,
		Status:     domain.SeatAvailable,
		OccurredAt: now,
	})
	return nil
}

// lockRequested materializes the showtime's ledger and takes row locks on
// exactly seatIDs. Every requested seat must have an entry afterwards.
func lockRequested(ctx context.Context, tx ports.LedgerTx, showtime domain.Showtime, seatIDs []int64) (map[int64]domain.LedgerEntry, error) {
	if _, err := tx.EnsureEntries(ctx, showtime.ID, showtime.ScreenID); err != nil {
		return nil, fmt.Errorf("materialize ledger: %w", err)
	}

	entries, err := tx.LockEntries(ctx, showtime.ID, seatIDs)
	if err != nil {
		return nil, fmt.Errorf("lock ledger entries: %w", err)
	}

	byID := make(map[int64]domain.LedgerEntry, len(entries))
	for _, e := range entries {
		byID[e.SeatID] = e
	}
	for _, id := range seatIDs {
		if _, ok := byID[id]; !ok {
			return nil, &domain.UnknownSeatError{SeatID: id, ShowtimeID: showtime.ID}
		}
	}
	return byID, nil
}

func publishSeats(ctx context.Context, o options, event domain.SeatChangeEvent) {
	if err := o.seatEvents.PublishSeatChanges(ctx, event); err != nil {
		o.logger.WarnContext(ctx, "seat change not published",
			"showtime_id", event.ShowtimeID,
			"status", event.Status,
			"error", err,
		)
	}
}
