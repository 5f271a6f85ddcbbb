package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/srgjo27/seat_ledger/internal/adapter/handler/dto"
)

// GetSeatMap handles GET /showtimes/:id/seats.
func (h *Handler) GetSeatMap(c echo.Context) error {
	showtimeID, err := parseID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	seatMap, err := h.seats.GetSeatMap(c.Request().Context(), showtimeID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSeatMapResponse(seatMap))
}

// LockSeats handles POST /showtimes/:id/lock-seats.
func (h *Handler) LockSeats(c echo.Context) error {
	showtimeID, err := parseID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	var req dto.LockSeatsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, errBadBody)
	}

	res, err := h.seats.LockSeats(c.Request().Context(), showtimeID, req.SeatIDs)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewLockSeatsResponse(res))
}
