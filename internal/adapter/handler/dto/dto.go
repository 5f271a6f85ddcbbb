package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/srgjo27/seat_ledger/internal/core/services"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind"`
	SeatID *int64 `json:"seat_id,omitempty"`
}

type LockSeatsRequest struct {
	SeatIDs []int64 `json:"seat_ids"`
}

type LockSeatsResponse struct {
	ShowtimeID     int64     `json:"showtime_id"`
	LockedSeatIDs  []int64   `json:"locked_seat_ids"`
	LockTTLSeconds int       `json:"lock_ttl_seconds"`
	LockedUntil    time.Time `json:"locked_until"`
}

type CreateBookingRequest struct {
	UserID     int64   `json:"user_id"`
	ShowtimeID int64   `json:"showtime_id"`
	SeatIDs    []int64 `json:"seat_ids"`
}

func (r CreateBookingRequest) ToService() services.CreateBookingRequest {
	return services.CreateBookingRequest{
		UserID:     r.UserID,
		ShowtimeID: r.ShowtimeID,
		SeatIDs:    r.SeatIDs,
	}
}

type CreateShowtimeRequest struct {
	MovieID   int64           `json:"movie_id"`
	ScreenID  int64           `json:"screen_id"`
	StartTime time.Time       `json:"start_time"`
	Price     decimal.Decimal `json:"price"`
}

func (r CreateShowtimeRequest) ToService() services.CreateShowtimeRequest {
	return services.CreateShowtimeRequest{
		MovieID:   r.MovieID,
		ScreenID:  r.ScreenID,
		StartTime: r.StartTime,
		Price:     r.Price,
	}
}

type TheaterResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address,omitempty"`
}

type ScreenResponse struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	TotalRows int              `json:"total_rows"`
	TotalCols int              `json:"total_cols"`
	Theater   *TheaterResponse `json:"theater,omitempty"`
}

type MovieResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	DurationMins int     `json:"duration_mins"`
	Language     string  `json:"language,omitempty"`
	Genre        string  `json:"genre,omitempty"`
	PosterURL    string  `json:"poster_url,omitempty"`
	ReleaseDate  *string `json:"release_date,omitempty"`
}

type ShowtimeResponse struct {
	ID        int64          `json:"id"`
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`
	Price     string         `json:"price"`
	Movie     MovieResponse  `json:"movie"`
	Screen    ScreenResponse `json:"screen"`
}

type SeatResponse struct {
	ID    int64  `json:"id"`
	Row   string `json:"row"`
	Col   int    `json:"col"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

type SeatStatusResponse struct {
	Seat        SeatResponse `json:"seat"`
	Status      string       `json:"status"`
	LockedUntil *time.Time   `json:"locked_until,omitempty"`
}

type SeatMapResponse struct {
	ShowtimeID int64                `json:"showtime_id"`
	Showtime   ShowtimeResponse     `json:"showtime"`
	Seats      []SeatStatusResponse `json:"seats"`
}

type BookingResponse struct {
	ID          uuid.UUID        `json:"id"`
	UserID      int64            `json:"user_id"`
	Status      string           `json:"status"`
	TotalAmount string           `json:"total_amount"`
	CreatedAt   time.Time        `json:"created_at"`
	Showtime    ShowtimeResponse `json:"showtime"`
	Seats       []SeatResponse   `json:"seats"`
}

func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func NewLockSeatsResponse(res *services.LockResult) LockSeatsResponse {
	return LockSeatsResponse{
		ShowtimeID:     res.ShowtimeID,
		LockedSeatIDs:  res.SeatIDs,
		LockTTLSeconds: int(res.TTL.Seconds()),
		LockedUntil:    res.LockedUntil,
	}
}

func NewScreenResponse(sc domain.Screen) ScreenResponse {
	out := ScreenResponse{
		ID:        sc.ID,
		Name:      sc.Name,
		TotalRows: sc.TotalRows,
		TotalCols: sc.TotalCols,
	}
	if sc.Theater != nil {
		out.Theater = &TheaterResponse{
			ID:      sc.Theater.ID,
			Name:    sc.Theater.Name,
			City:    sc.Theater.City,
			Address: sc.Theater.Address,
		}
	}
	return out
}

func NewShowtimeResponse(d domain.ShowtimeDetails) ShowtimeResponse {
	return ShowtimeResponse{
		ID:        d.ID,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Price:     Money(d.Price),
		Movie:     NewMovieResponse(d.Movie),
		Screen:    NewScreenResponse(d.Screen),
	}
}

func NewMovieResponse(m domain.Movie) MovieResponse {
	out := MovieResponse{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		DurationMins: m.DurationMins,
		Language:     m.Language,
		Genre:        m.Genre,
		PosterURL:    m.PosterURL,
	}
	if m.ReleaseDate != nil {
		released := m.ReleaseDate.Format(time.DateOnly)
		out.ReleaseDate = &released
	}
	return out
}

func NewSeatResponse(s domain.Seat) SeatResponse {
	return SeatResponse{
		ID:    s.ID,
		Row:   s.Row,
		Col:   s.Column,
		Type:  string(s.Type),
		Label: s.Label(),
	}
}

func NewSeatMapResponse(m *domain.SeatMap) SeatMapResponse {
	seats := make([]SeatStatusResponse, 0, len(m.Seats))
	for _, s := range m.Seats {
		seats = append(seats, SeatStatusResponse{
			Seat:        NewSeatResponse(s.Seat),
			Status:      string(s.Status),
			LockedUntil: s.LockedUntil,
		})
	}

	return SeatMapResponse{
		ShowtimeID: m.Showtime.ID,
		Showtime:   NewShowtimeResponse(m.Showtime),
		Seats:      seats,
	}
}

func NewBookingResponse(b domain.BookingDetails) BookingResponse {
	seats := make([]SeatResponse, 0, len(b.Seats))
	for _, bs := range b.Seats {
		if bs.Seat != nil {
			seats = append(seats, NewSeatResponse(*bs.Seat))
			continue
		}
		seats = append(seats, SeatResponse{ID: bs.SeatID})
	}

	return BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Status:      string(b.Status),
		TotalAmount: Money(b.TotalAmount),
		CreatedAt:   b.CreatedAt,
		Showtime:    NewShowtimeResponse(b.Showtime),
		Seats:       seats,
	}
}
