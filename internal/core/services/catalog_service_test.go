package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/srgjo27/seat_ledger/internal/core/ports/mocks"
	"github.com/srgjo27/seat_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateShowtime(t *testing.T) {
	catalog := mocks.NewCatalogRepository(t)
	service := services.NewCatalogService(catalog, services.WithLogger(newTestLogger()))
	ctx := context.Background()
	start := time.Date(2026, 6, 1, 21, 0, 0, 0, time.UTC)

	catalog.On("GetMovie", ctx, int64(3)).Return(&domain.Movie{ID: 3, Title: "Heat", DurationMins: 170}, nil)
	catalog.On("GetScreen", ctx, int64(2)).Return(&domain.Screen{ID: 2, Name: "Screen 2"}, nil)
	catalog.On("CreateShowtime", ctx, mock.AnythingOfType("*domain.Showtime")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Showtime).ID = 50 }).
		Return(nil)

	details, err := service.CreateShowtime(ctx, services.CreateShowtimeRequest{
		MovieID:   3,
		ScreenID:  2,
		StartTime: start,
		Price:     decimal.RequireFromString("9.99"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(50), details.ID)
	assert.Equal(t, start.Add(170*time.Minute), details.EndTime)
	assert.Equal(t, "Heat", details.Movie.Title)
}

func TestCreateShowtime_UnknownMovie(t *testing.T) {
	catalog := mocks.NewCatalogRepository(t)
	service := services.NewCatalogService(catalog)
	ctx := context.Background()

	catalog.On("GetMovie", ctx, int64(3)).Return(nil, domain.ErrMovieNotFound)

	_, err := service.CreateShowtime(ctx, services.CreateShowtimeRequest{MovieID: 3, ScreenID: 2, StartTime: time.Now()})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateShowtime_NegativePrice(t *testing.T) {
	catalog := mocks.NewCatalogRepository(t)
	service := services.NewCatalogService(catalog)
	ctx := context.Background()

	catalog.On("GetMovie", ctx, int64(3)).Return(&domain.Movie{ID: 3, DurationMins: 90}, nil)
	catalog.On("GetScreen", ctx, int64(2)).Return(&domain.Screen{ID: 2}, nil)

	_, err := service.CreateShowtime(ctx, services.CreateShowtimeRequest{
		MovieID: 3, ScreenID: 2, StartTime: time.Now(), Price: decimal.NewFromInt(-5),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	catalog.AssertNotCalled(t, "CreateShowtime", mock.Anything, mock.Anything)
}

func TestListShowtimes(t *testing.T) {
	catalog := mocks.NewCatalogRepository(t)
	service := services.NewCatalogService(catalog)
	ctx := context.Background()
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	movie := &domain.Movie{ID: 3, Title: "Heat", DurationMins: 170}
	catalog.On("GetMovie", ctx, int64(3)).Return(movie, nil)
	catalog.On("ListShowtimesForMovie", ctx, int64(3), from, from.AddDate(0, 0, 1)).Return([]domain.ShowtimeDetails{
		{Showtime: domain.Showtime{ID: 8, MovieID: 3, StartTime: from.Add(14 * time.Hour)}},
		{Showtime: domain.Showtime{ID: 9, MovieID: 3, StartTime: from.Add(20 * time.Hour)}},
	}, nil)

	showtimes, err := service.ListShowtimes(ctx, 3, from.Add(17*time.Hour))

	require.NoError(t, err)
	require.Len(t, showtimes, 2)
	assert.Equal(t, int64(8), showtimes[0].ID)
	assert.Equal(t, "Heat", showtimes[1].Movie.Title)
}

func TestListShowtimes_UnknownMovie(t *testing.T) {
	catalog := mocks.NewCatalogRepository(t)
	service := services.NewCatalogService(catalog)
	ctx := context.Background()

	catalog.On("GetMovie", ctx, int64(404)).Return(nil, domain.ErrMovieNotFound)

	_, err := service.ListShowtimes(ctx, 404, time.Now())

	assert.ErrorIs(t, err, domain.ErrMovieNotFound)
	catalog.AssertNotCalled(t, "ListShowtimesForMovie", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
