package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/srgjo27/seat_ledger/internal/core/ports"
)

type CreateShowtimeRequest struct {
	MovieID   int64
	ScreenID  int64
	StartTime time.Time
	Price     decimal.Decimal
}

type CatalogService struct {
	catalog ports.CatalogRepository
	opts    options
}

func NewCatalogService(catalog ports.CatalogRepository, opts ...Option) *CatalogService {
	return &CatalogService{catalog: catalog, opts: newOptions(opts)}
}

func (s *CatalogService) ListScreens(ctx context.Context) ([]domain.Screen, error) {
	return s.catalog.ListScreens(ctx)
}

// ListShowtimes returns the movie's showtimes starting on the given UTC day,
// earliest first.
func (s *CatalogService) ListShowtimes(ctx context.Context, movieID int64, day time.Time) ([]domain.ShowtimeDetails, error) {
	movie, err := s.catalog.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	y, m, d := day.UTC().Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	showtimes, err := s.catalog.ListShowtimesForMovie(ctx, movie.ID, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	for i := range showtimes {
		showtimes[i].Movie = *movie
	}
	return showtimes, nil
}

func (s *CatalogService) CreateShowtime(ctx context.Context, req CreateShowtimeRequest) (*domain.ShowtimeDetails, error) {
	movie, err := s.catalog.GetMovie(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}

	screen, err := s.catalog.GetScreen(ctx, req.ScreenID)
	if err != nil {
		return nil, err
	}

	showtime, err := domain.NewShowtime(*movie, screen.ID, req.StartTime, req.Price)
	if err != nil {
		return nil, err
	}

	if err := s.catalog.CreateShowtime(ctx, showtime); err != nil {
		return nil, err
	}

	s.opts.logger.InfoContext(ctx, "showtime created",
		"showtime_id", showtime.ID,
		"movie_id", movie.ID,
		"screen_id", screen.ID,
		"start_time", showtime.StartTime,
	)

	return &domain.ShowtimeDetails{Showtime: *showtime, Movie: *movie, Screen: *screen}, nil
}
