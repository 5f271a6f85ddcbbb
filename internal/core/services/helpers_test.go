package services_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/srgjo27/seat_ledger/internal/core/ports"
)

var fixedNow = time.Date(2026, 4, 10, 19, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// inlineTx runs the callback directly against a mocked transaction.
type inlineTx struct {
	tx ports.LedgerTx
}

func (m inlineTx) WithinTx(ctx context.Context, fn func(ctx context.Context, tx ports.LedgerTx) error) error {
	return fn(ctx, m.tx)
}

func testShowtime() *domain.Showtime {
	return &domain.Showtime{
		ID:        1,
		MovieID:   3,
		ScreenID:  2,
		StartTime: fixedNow.Add(2 * time.Hour),
		EndTime:   fixedNow.Add(4 * time.Hour),
		Price:     decimal.RequireFromString("12.50"),
	}
}

func testDetails() *domain.ShowtimeDetails {
	return &domain.ShowtimeDetails{
		Showtime: *testShowtime(),
		Movie:    domain.Movie{ID: 3, Title: "Arrival", DurationMins: 116},
		Screen:   domain.Screen{ID: 2, TheaterID: 1, Name: "Screen 2", TotalRows: 2, TotalCols: 3},
	}
}

func testSeats() []domain.Seat {
	return []domain.Seat{
		{ID: 11, ScreenID: 2, Row: "A", Column: 1, Type: domain.SeatRegular},
		{ID: 12, ScreenID: 2, Row: "A", Column: 2, Type: domain.SeatRegular},
		{ID: 13, ScreenID: 2, Row: "A", Column: 3, Type: domain.SeatRegular},
		{ID: 21, ScreenID: 2, Row: "B", Column: 1, Type: domain.SeatVIP},
	}
}

func available(seatID int64) domain.LedgerEntry {
	return domain.NewLedgerEntry(1, seatID)
}

func lockedUntil(seatID int64, until time.Time) domain.LedgerEntry {
	e := domain.NewLedgerEntry(1, seatID)
	e.Lock(until)
	return e
}

func booked(seatID int64) domain.LedgerEntry {
	e := domain.NewLedgerEntry(1, seatID)
	e.Book(uuid.MustParse("5f0f8a3e-2d4c-4c1e-9a43-1a2b3c4d5e6f"))
	return e
}
