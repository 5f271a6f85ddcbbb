package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/srgjo27/seat_ledger/internal/core/ports"
)

type LedgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) ExpireLocks(ctx context.Context, showtimeID int64, now time.Time) ([]int64, error) {
	query := `
	UPDATE showtime_seats
	SET status = 'AVAILABLE',
		locked_until = NULL,
		booking_id = NULL
	WHERE (showtime_id, seat_id) IN (
		SELECT showtime_id, seat_id
		FROM showtime_seats
		WHERE showtime_id = $1
			AND status = 'LOCKED'
			AND (locked_until IS NULL OR locked_until <= $2)
		FOR UPDATE SKIP LOCKED
	)
	RETURNING seat_id
	`

	rows, err := r.db.QueryContext(ctx, query, showtimeID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to expire locks: %w", err)
	}

	defer rows.Close()

	var released []int64
	for rows.Next() {
		var seatID int64
		if err := rows.Scan(&seatID); err != nil {
			return nil, err
		}

		released = append(released, seatID)
	}

	return released, rows.Err()
}

func (r *LedgerRepository) ListEntries(ctx context.Context, showtimeID int64) ([]domain.LedgerEntry, error) {
	query := `
	SELECT showtime_id, seat_id, status, locked_until, booking_id
	FROM showtime_seats
	WHERE showtime_id = $1
	ORDER BY seat_id
	`

	rows, err := r.db.QueryContext(ctx, query, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	return scanEntries(rows)
}

// TxManager opens the transactions ledger mutations run in.
type TxManager struct {
	db *sql.DB
}

func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, tx ports.LedgerTx) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	if err := fn(ctx, &ledgerTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type ledgerTx struct {
	tx *sql.Tx
}

func (t *ledgerTx) EnsureEntries(ctx context.Context, showtimeID, screenID int64) (int, error) {
	query := `
	INSERT INTO showtime_seats (showtime_id, seat_id, status)
	SELECT $1, s.id, 'AVAILABLE'
	FROM seats s
	WHERE s.screen_id = $2
	ORDER BY s.id
	ON CONFLICT (showtime_id, seat_id) DO NOTHING
	`

	result, err := t.tx.ExecContext(ctx, query, showtimeID, screenID)
	if err != nil {
		return 0, fmt.Errorf("failed to create ledger entries: %w", err)
	}

	created, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(created), nil
}

// LockEntries takes the row locks in seat id order so that two transactions
// over overlapping seats always queue instead of deadlocking.
func (t *ledgerTx) LockEntries(ctx context.Context, showtimeID int64, seatIDs []int64) ([]domain.LedgerEntry, error) {
	query := `
	SELECT showtime_id, seat_id, status, locked_until, booking_id
	FROM showtime_seats
	WHERE showtime_id = $1 AND seat_id = ANY($2)
	ORDER BY seat_id
	FOR UPDATE
	`

	rows, err := t.tx.QueryContext(ctx, query, showtimeID, pq.Array(seatIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to lock ledger entries: %w", err)
	}

	return scanEntries(rows)
}

func (t *ledgerTx) UpdateEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	query := `
	UPDATE showtime_seats
	SET status = $3,
		locked_until = $4,
		booking_id = $5
	WHERE showtime_id = $1 AND seat_id = $2
	`

	stmt, err := t.tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare ledger update: %w", err)
	}

	defer stmt.Close()

	for _, e := range entries {
		var lockedUntil sql.NullTime
		if e.LockedUntil != nil {
			lockedUntil = sql.NullTime{Time: *e.LockedUntil, Valid: true}
		}

		var bookingID uuid.NullUUID
		if e.BookingID != nil {
			bookingID = uuid.NullUUID{UUID: *e.BookingID, Valid: true}
		}

		if _, err := stmt.ExecContext(ctx, e.ShowtimeID, e.SeatID, string(e.Status), lockedUntil, bookingID); err != nil {
			return fmt.Errorf("failed to update seat %d: %w", e.SeatID, err)
		}
	}

	return nil
}

func scanEntries(rows *sql.Rows) ([]domain.LedgerEntry, error) {
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		var lockedUntil sql.NullTime
		var bookingID uuid.NullUUID

		if err := rows.Scan(&e.ShowtimeID, &e.SeatID, &e.Status, &lockedUntil, &bookingID); err != nil {
			return nil, err
		}

		if lockedUntil.Valid {
			until := lockedUntil.Time
			e.LockedUntil = &until
		}

		if bookingID.Valid {
			id := bookingID.UUID
			e.BookingID = &id
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
