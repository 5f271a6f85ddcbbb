package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
)

// CatalogRepository reads the venue layout and schedule.
type CatalogRepository interface {
	GetShowtime(ctx context.Context, showtimeID int64) (*domain.Showtime, error)
	GetShowtimeDetails(ctx context.Context, showtimeID int64) (*domain.ShowtimeDetails, error)
	// ListShowtimesForMovie returns the movie's showtimes starting in
	// [from, to), ordered by start time, with screen and theater filled in.
	ListShowtimesForMovie(ctx context.Context, movieID int64, from, to time.Time) ([]domain.ShowtimeDetails, error)
	ListScreenSeats(ctx context.Context, screenID int64) ([]domain.Seat, error)
	ListScreens(ctx context.Context) ([]domain.Screen, error)
	GetScreen(ctx context.Context, screenID int64) (*domain.Screen, error)
	GetMovie(ctx context.Context, movieID int64) (*domain.Movie, error)
	CreateShowtime(ctx context.Context, showtime *domain.Showtime) error
}

// LedgerRepository holds the per-showtime seat ledger operations that run
// outside of a caller's transaction.
type LedgerRepository interface {
	// ExpireLocks releases every LOCKED entry of the showtime whose hold ended
	// at or before now and returns the released seat ids. Rows currently
	// locked by another transaction are skipped.
	ExpireLocks(ctx context.Context, showtimeID int64, now time.Time) ([]int64, error)
	ListEntries(ctx context.Context, showtimeID int64) ([]domain.LedgerEntry, error)
}

// LedgerTx is the transactional view of the ledger. Row locks taken through
// it are held until the surrounding transaction ends.
type LedgerTx interface {
	// EnsureEntries creates the missing AVAILABLE entries for every seat of
	// the screen and returns how many were created.
	EnsureEntries(ctx context.Context, showtimeID, screenID int64) (int, error)
	// LockEntries locks and returns the existing entries for seatIDs, in
	// ascending seat id order.
	LockEntries(ctx context.Context, showtimeID int64, seatIDs []int64) ([]domain.LedgerEntry, error)
	UpdateEntries(ctx context.Context, entries []domain.LedgerEntry) error
	CreateBooking(ctx context.Context, booking *domain.Booking) error
}

type TxManager interface {
	// WithinTx runs fn in one transaction, committing when fn returns nil
	// and rolling back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
}

type BookingRepository interface {
	GetByIDForUser(ctx context.Context, bookingID uuid.UUID, userID int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
}
