package memory

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
)

// DemoCatalog is a small venue used when the service runs without a
// database: one theater, two screens and a few showtimes starting after now.
func DemoCatalog(now time.Time) Catalog {
	c := Catalog{
		Theaters: []domain.Theater{{ID: 1, Name: "Grand Cinema", City: "Jakarta", Address: "Jl. Sudirman 1"}},
		Screens: []domain.Screen{
			{ID: 1, TheaterID: 1, Name: "Screen 1", TotalRows: 5, TotalCols: 8},
			{ID: 2, TheaterID: 1, Name: "Screen 2", TotalRows: 4, TotalCols: 6},
		},
		Movies: []domain.Movie{
			{
				ID:           1,
				Title:        "Interstellar",
				Description:  "A team of explorers travel through a wormhole in space.",
				DurationMins: 169,
				Language:     "en",
				Genre:        "Sci-Fi",
				ReleaseDate:  releaseDate(2014, time.November, 7),
			},
			{
				ID:           2,
				Title:        "Spirited Away",
				Description:  "A girl wanders into a world ruled by gods and witches.",
				DurationMins: 125,
				Language:     "ja",
				Genre:        "Animation",
				ReleaseDate:  releaseDate(2001, time.July, 20),
			},
		},
	}

	var seatID int64
	for _, sc := range c.Screens {
		for r := 0; r < sc.TotalRows; r++ {
			for col := 1; col <= sc.TotalCols; col++ {
				seatID++
				seatType := domain.SeatRegular
				if r == sc.TotalRows-1 {
					seatType = domain.SeatVIP
				}
				c.Seats = append(c.Seats, domain.Seat{
					ID:       seatID,
					ScreenID: sc.ID,
					Row:      string(rune('A' + r)),
					Column:   col,
					Type:     seatType,
				})
			}
		}
	}

	start := now.Truncate(time.Hour).Add(3 * time.Hour)
	for i, m := range c.Movies {
		st, _ := domain.NewShowtime(m, c.Screens[i].ID, start, decimal.RequireFromString("12.50"))
		st.ID = int64(i + 1)
		c.Showtimes = append(c.Showtimes, *st)
	}
	return c
}

func releaseDate(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
