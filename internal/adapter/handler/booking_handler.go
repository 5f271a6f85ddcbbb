package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/srgjo27/seat_ledger/internal/adapter/handler/dto"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
)

// CreateBooking handles POST /bookings.
func (h *Handler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, errBadBody)
	}

	booking, err := h.bookings.CreateBooking(c.Request().Context(), req.ToService())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewBookingResponse(*booking))
}

// GetBooking handles GET /bookings/:id?user_id=. Only the owner gets it back.
func (h *Handler) GetBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.handleError(c, &invalidParamError{name: "booking id"})
	}

	userID, err := strconv.ParseInt(c.QueryParam("user_id"), 10, 64)
	if err != nil {
		return h.handleError(c, domain.ErrInvalidUser)
	}

	booking, err := h.bookings.GetBooking(c.Request().Context(), bookingID, userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBookingResponse(*booking))
}

// ListUserBookings handles GET /users/:id/bookings.
func (h *Handler) ListUserBookings(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	bookings, err := h.bookings.ListBookings(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	out := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.NewBookingResponse(b))
	}

	return c.JSON(http.StatusOK, out)
}
