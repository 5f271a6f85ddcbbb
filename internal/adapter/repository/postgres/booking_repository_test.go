package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/seat_ledger/internal/adapter/repository/postgres"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/srgjo27/seat_ledger/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking_InsertsHeaderAndSeats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	showtime := domain.Showtime{ID: 1, Price: decimal.RequireFromString("12.50")}
	booking := domain.NewBooking(uuid.New(), 7, showtime, []int64{2, 3}, time.Now())

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs(booking.ID, int64(7), int64(1), "CONFIRMED", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep := mock.ExpectPrepare(`INSERT INTO booking_seats`)
	prep.ExpectExec().WithArgs(booking.ID, int64(1), int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(booking.ID, int64(1), int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = postgres.NewTxManager(db).WithinTx(context.Background(), func(ctx context.Context, tx ports.LedgerTx) error {
		return tx.CreateBooking(ctx, booking)
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_UniqueViolationIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	booking := domain.NewBooking(uuid.New(), 7, domain.Showtime{ID: 1}, []int64{5}, time.Now())

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO bookings`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectPrepare(`INSERT INTO booking_seats`).
		ExpectExec().
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	err = postgres.NewTxManager(db).WithinTx(context.Background(), func(ctx context.Context, tx ports.LedgerTx) error {
		return tx.CreateBooking(ctx, booking)
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
	seatID, _ := domain.SeatIDOf(err)
	assert.Equal(t, int64(5), seatID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDForUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	created := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "showtime_id", "status", "total_amount", "created_at"}).
			AddRow(id.String(), int64(7), int64(1), "CONFIRMED", "25.00", created))
	mock.ExpectQuery(`SELECT (.+) FROM booking_seats bs JOIN seats s`).
		WithArgs(pq.Array([]string{id.String()})).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id", "id", "screen_id", "seat_row", "seat_col", "seat_type"}).
			AddRow(id.String(), int64(2), int64(1), "A", 2, "REGULAR").
			AddRow(id.String(), int64(3), int64(1), "A", 3, "VIP"))

	booking, err := postgres.NewBookingRepository(db).GetByIDForUser(context.Background(), id, 7)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, booking.Status)
	assert.True(t, booking.TotalAmount.Equal(decimal.NewFromInt(25)))
	require.Len(t, booking.Seats, 2)
	assert.Equal(t, "A3", booking.Seats[1].Seat.Label())
	assert.Equal(t, domain.SeatVIP, booking.Seats[1].Seat.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDForUser_OtherUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1 AND user_id = \$2`).
		WithArgs(id, int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "showtime_id", "status", "total_amount", "created_at"}))

	_, err = postgres.NewBookingRepository(db).GetByIDForUser(context.Background(), id, 8)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
