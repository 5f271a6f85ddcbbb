package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Theater struct {
	ID      int64
	Name    string
	City    string
	Address string
}

type Screen struct {
	ID        int64
	TheaterID int64
	Name      string
	TotalRows int
	TotalCols int
	Theater   *Theater
}

type Movie struct {
	ID           int64
	Title        string
	Description  string
	DurationMins int
	Language     string
	Genre        string
	PosterURL    string
	ReleaseDate  *time.Time
}

func (m Movie) Duration() time.Duration {
	return time.Duration(m.DurationMins) * time.Minute
}

// PriceScale is the number of decimal places a price may carry.
const PriceScale = 2

type Showtime struct {
	ID        int64
	MovieID   int64
	ScreenID  int64
	StartTime time.Time
	EndTime   time.Time
	Price     decimal.Decimal
}

// NewShowtime schedules movie on screen at start. The end time follows from
// the movie's running time.
func NewShowtime(movie Movie, screenID int64, start time.Time, price decimal.Decimal) (*Showtime, error) {
	if screenID <= 0 {
		return nil, ErrScreenNotFound
	}
	if start.IsZero() {
		return nil, ErrInvalidStartTime
	}
	if price.IsNegative() || !price.Equal(price.Round(PriceScale)) {
		return nil, ErrInvalidPrice
	}

	return &Showtime{
		MovieID:   movie.ID,
		ScreenID:  screenID,
		StartTime: start,
		EndTime:   start.Add(movie.Duration()),
		Price:     price,
	}, nil
}

// ShowtimeDetails is a showtime together with what it shows and where.
type ShowtimeDetails struct {
	Showtime
	Movie  Movie
	Screen Screen
}
