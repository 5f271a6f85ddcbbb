package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/seat_ledger/internal/adapter/repository/postgres"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetShowtime_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM showtimes WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "movie_id", "screen_id", "start_time", "end_time", "price"}))

	_, err = postgres.NewCatalogRepository(db).GetShowtime(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrShowtimeNotFound)
}

func TestGetShowtimeDetails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+) FROM showtimes st JOIN movies m (.+) WHERE st.id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "movie_id", "screen_id", "start_time", "end_time", "price",
			"title", "description", "duration_mins", "language", "genre", "poster_url", "release_date",
			"theater_id", "name", "total_rows", "total_cols",
			"name", "city", "address",
		}).AddRow(
			int64(1), int64(3), int64(2), start, start.Add(2*time.Hour), "12.50",
			"Arrival", nil, 116, "en", nil, nil, nil,
			int64(1), "Screen 2", 10, 12,
			"Grand", "Jakarta", nil,
		))

	d, err := postgres.NewCatalogRepository(db).GetShowtimeDetails(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, d.Price.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "Arrival", d.Movie.Title)
	assert.Equal(t, int64(3), d.Movie.ID)
	assert.Equal(t, "", d.Movie.Description)
	assert.Nil(t, d.Movie.ReleaseDate)
	assert.Equal(t, int64(2), d.Screen.ID)
	require.NotNil(t, d.Screen.Theater)
	assert.Equal(t, "Grand", d.Screen.Theater.Name)
}

func TestCreateShowtime_ReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	st := &domain.Showtime{MovieID: 3, ScreenID: 2, StartTime: start, EndTime: start.Add(time.Hour), Price: decimal.NewFromInt(10)}

	mock.ExpectQuery(`INSERT INTO showtimes (.+) RETURNING id`).
		WithArgs(int64(3), int64(2), start, start.Add(time.Hour), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(77)))

	require.NoError(t, postgres.NewCatalogRepository(db).CreateShowtime(context.Background(), st))
	assert.Equal(t, int64(77), st.ID)
}

func TestListShowtimesForMovie(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	start := from.Add(19 * time.Hour)

	mock.ExpectQuery(`SELECT (.+) FROM showtimes st JOIN screens sc (.+) WHERE st.movie_id = \$1 AND st.start_time >= \$2 AND st.start_time < \$3 ORDER BY st.start_time`).
		WithArgs(int64(3), from, to).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "movie_id", "screen_id", "start_time", "end_time", "price",
			"theater_id", "name", "total_rows", "total_cols",
			"name", "city", "address",
		}).
			AddRow(int64(4), int64(3), int64(2), start, start.Add(2*time.Hour), "9.00",
				int64(1), "Screen 2", 10, 12, "Grand", "Jakarta", "Jl. Sudirman 1").
			AddRow(int64(5), int64(3), int64(1), start.Add(3*time.Hour), start.Add(5*time.Hour), "11.00",
				int64(1), "Screen 1", 8, 10, "Grand", "Jakarta", nil))

	showtimes, err := postgres.NewCatalogRepository(db).ListShowtimesForMovie(context.Background(), 3, from, to)

	require.NoError(t, err)
	require.Len(t, showtimes, 2)
	assert.Equal(t, int64(4), showtimes[0].ID)
	assert.Equal(t, int64(2), showtimes[0].Screen.ID)
	require.NotNil(t, showtimes[0].Screen.Theater)
	assert.Equal(t, "Jl. Sudirman 1", showtimes[0].Screen.Theater.Address)
	assert.Equal(t, "Screen 1", showtimes[1].Screen.Name)
	assert.True(t, showtimes[1].Price.Equal(decimal.NewFromInt(11)))
	require.NoError(t, mock.ExpectationsWereMet())
}
