package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/srgjo27/seat_ledger/internal/core/domain"
)

type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) GetShowtime(ctx context.Context, showtimeID int64) (*domain.Showtime, error) {
	query := `
	SELECT id, movie_id, screen_id, start_time, end_time, price
	FROM showtimes
	WHERE id = $1
	`

	var st domain.Showtime
	err := r.db.QueryRowContext(ctx, query, showtimeID).Scan(
		&st.ID,
		&st.MovieID,
		&st.ScreenID,
		&st.StartTime,
		&st.EndTime,
		&st.Price,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrShowtimeNotFound
		}

		return nil, fmt.Errorf("failed to get showtime: %w", err)
	}

	return &st, nil
}

func (r *CatalogRepository) GetShowtimeDetails(ctx context.Context, showtimeID int64) (*domain.ShowtimeDetails, error) {
	query := `
	SELECT st.id, st.movie_id, st.screen_id, st.start_time, st.end_time, st.price,
		m.title, m.description, m.duration_mins, m.language, m.genre, m.poster_url, m.release_date,
		sc.theater_id, sc.name, sc.total_rows, sc.total_cols,
		t.name, t.city, t.address
	FROM showtimes st
	JOIN movies m ON m.id = st.movie_id
	JOIN screens sc ON sc.id = st.screen_id
	JOIN theaters t ON t.id = sc.theater_id
	WHERE st.id = $1
	`

	var d domain.ShowtimeDetails
	var movie movieColumns
	var theater domain.Theater
	var address sql.NullString

	err := r.db.QueryRowContext(ctx, query, showtimeID).Scan(
		&d.ID, &d.MovieID, &d.ScreenID, &d.StartTime, &d.EndTime, &d.Price,
		&d.Movie.Title, &movie.description, &d.Movie.DurationMins, &movie.language, &movie.genre, &movie.posterURL, &movie.releaseDate,
		&d.Screen.TheaterID, &d.Screen.Name, &d.Screen.TotalRows, &d.Screen.TotalCols,
		&theater.Name, &theater.City, &address,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrShowtimeNotFound
		}

		return nil, fmt.Errorf("failed to get showtime details: %w", err)
	}

	d.Movie.ID = d.MovieID
	movie.apply(&d.Movie)
	d.Screen.ID = d.ScreenID
	theater.ID = d.Screen.TheaterID
	theater.Address = address.String
	d.Screen.Theater = &theater

	return &d, nil
}

func (r *CatalogRepository) ListShowtimesForMovie(ctx context.Context, movieID int64, from, to time.Time) ([]domain.ShowtimeDetails, error) {
	query := `
	SELECT st.id, st.movie_id, st.screen_id, st.start_time, st.end_time, st.price,
		sc.theater_id, sc.name, sc.total_rows, sc.total_cols,
		t.name, t.city, t.address
	FROM showtimes st
	JOIN screens sc ON sc.id = st.screen_id
	JOIN theaters t ON t.id = sc.theater_id
	WHERE st.movie_id = $1 AND st.start_time >= $2 AND st.start_time < $3
	ORDER BY st.start_time, st.id
	`

	rows, err := r.db.QueryContext(ctx, query, movieID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list showtimes: %w", err)
	}

	defer rows.Close()

	var out []domain.ShowtimeDetails
	for rows.Next() {
		var d domain.ShowtimeDetails
		var theater domain.Theater
		var address sql.NullString

		if err := rows.Scan(
			&d.ID, &d.MovieID, &d.ScreenID, &d.StartTime, &d.EndTime, &d.Price,
			&d.Screen.TheaterID, &d.Screen.Name, &d.Screen.TotalRows, &d.Screen.TotalCols,
			&theater.Name, &theater.City, &address,
		); err != nil {
			return nil, err
		}

		d.Screen.ID = d.ScreenID
		theater.ID = d.Screen.TheaterID
		theater.Address = address.String
		d.Screen.Theater = &theater

		out = append(out, d)
	}

	return out, rows.Err()
}

func (r *CatalogRepository) ListScreenSeats(ctx context.Context, screenID int64) ([]domain.Seat, error) {
	query := `
	SELECT id, screen_id, seat_row, seat_col, seat_type
	FROM seats
	WHERE screen_id = $1
	ORDER BY seat_row, seat_col
	`

	rows, err := r.db.QueryContext(ctx, query, screenID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}

	defer rows.Close()

	var seats []domain.Seat
	for rows.Next() {
		var seat domain.Seat
		if err := rows.Scan(&seat.ID, &seat.ScreenID, &seat.Row, &seat.Column, &seat.Type); err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

func (r *CatalogRepository) ListScreens(ctx context.Context) ([]domain.Screen, error) {
	query := `
	SELECT sc.id, sc.theater_id, sc.name, sc.total_rows, sc.total_cols, t.name, t.city, t.address
	FROM screens sc
	JOIN theaters t ON t.id = sc.theater_id
	ORDER BY sc.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list screens: %w", err)
	}

	defer rows.Close()

	var screens []domain.Screen
	for rows.Next() {
		sc, err := scanScreen(rows)
		if err != nil {
			return nil, err
		}

		screens = append(screens, *sc)
	}

	return screens, rows.Err()
}

func (r *CatalogRepository) GetScreen(ctx context.Context, screenID int64) (*domain.Screen, error) {
	query := `
	SELECT sc.id, sc.theater_id, sc.name, sc.total_rows, sc.total_cols, t.name, t.city, t.address
	FROM screens sc
	JOIN theaters t ON t.id = sc.theater_id
	WHERE sc.id = $1
	`

	sc, err := scanScreen(r.db.QueryRowContext(ctx, query, screenID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScreenNotFound
		}

		return nil, fmt.Errorf("failed to get screen: %w", err)
	}

	return sc, nil
}

func (r *CatalogRepository) GetMovie(ctx context.Context, movieID int64) (*domain.Movie, error) {
	query := `
	SELECT id, title, description, duration_mins, language, genre, poster_url, release_date
	FROM movies
	WHERE id = $1
	`

	var m domain.Movie
	var cols movieColumns
	err := r.db.QueryRowContext(ctx, query, movieID).Scan(
		&m.ID, &m.Title, &cols.description, &m.DurationMins, &cols.language, &cols.genre, &cols.posterURL, &cols.releaseDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}

		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	cols.apply(&m)

	return &m, nil
}

func (r *CatalogRepository) CreateShowtime(ctx context.Context, showtime *domain.Showtime) error {
	query := `
	INSERT INTO showtimes (movie_id, screen_id, start_time, end_time, price)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		showtime.MovieID,
		showtime.ScreenID,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
	).Scan(&showtime.ID)
	if err != nil {
		return fmt.Errorf("failed to insert showtime: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScreen(row rowScanner) (*domain.Screen, error) {
	var sc domain.Screen
	var theater domain.Theater
	var address sql.NullString

	if err := row.Scan(&sc.ID, &sc.TheaterID, &sc.Name, &sc.TotalRows, &sc.TotalCols, &theater.Name, &theater.City, &address); err != nil {
		return nil, err
	}

	theater.ID = sc.TheaterID
	theater.Address = address.String
	sc.Theater = &theater

	return &sc, nil
}

// movieColumns holds the nullable movie columns while scanning.
type movieColumns struct {
	description sql.NullString
	language    sql.NullString
	genre       sql.NullString
	posterURL   sql.NullString
	releaseDate sql.NullTime
}

func (c movieColumns) apply(m *domain.Movie) {
	m.Description = c.description.String
	m.Language = c.language.String
	m.Genre = c.genre.String
	m.PosterURL = c.posterURL.String
	if c.releaseDate.Valid {
		d := c.releaseDate.Time
		m.ReleaseDate = &d
	}
}
