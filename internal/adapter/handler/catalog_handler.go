package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/srgjo27/seat_ledger/internal/adapter/handler/dto"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
)

func (h *Handler) ListScreens(c echo.Context) error {
	screens, err := h.catalog.ListScreens(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	out := make([]dto.ScreenResponse, 0, len(screens))
	for _, sc := range screens {
		out = append(out, dto.NewScreenResponse(sc))
	}

	return c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateShowtime(c echo.Context) error {
	var req dto.CreateShowtimeRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, errBadBody)
	}

	showtime, err := h.catalog.CreateShowtime(c.Request().Context(), req.ToService())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewShowtimeResponse(*showtime))
}

// ListMovieShowtimes serves GET /movies/:id/showtimes?date=YYYY-MM-DD.
func (h *Handler) ListMovieShowtimes(c echo.Context) error {
	movieID, err := parseID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	day, err := time.Parse(time.DateOnly, c.QueryParam("date"))
	if err != nil {
		return h.handleError(c, domain.ErrInvalidDate)
	}

	showtimes, err := h.catalog.ListShowtimes(c.Request().Context(), movieID, day)
	if err != nil {
		return h.handleError(c, err)
	}

	out := make([]dto.ShowtimeResponse, 0, len(showtimes))
	for _, st := range showtimes {
		out = append(out, dto.NewShowtimeResponse(st))
	}

	return c.JSON(http.StatusOK, out)
}
