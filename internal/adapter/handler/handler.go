package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/srgjo27/seat_ledger/internal/adapter/handler/dto"
	"github.com/srgjo27/seat_ledger/internal/core/domain"
	"github.com/srgjo27/seat_ledger/internal/core/services"
)

type SeatService interface {
	GetSeatMap(ctx context.Context, showtimeID int64) (*domain.SeatMap, error)
	LockSeats(ctx context.Context, showtimeID int64, seatIDs []int64) (*services.LockResult, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, req services.CreateBookingRequest) (*domain.BookingDetails, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID, userID int64) (*domain.BookingDetails, error)
	ListBookings(ctx context.Context, userID int64) ([]domain.BookingDetails, error)
}

type CatalogService interface {
	ListScreens(ctx context.Context) ([]domain.Screen, error)
	ListShowtimes(ctx context.Context, movieID int64, day time.Time) ([]domain.ShowtimeDetails, error)
	CreateShowtime(ctx context.Context, req services.CreateShowtimeRequest) (*domain.ShowtimeDetails, error)
}

type Handler struct {
	seats    SeatService
	bookings BookingService
	catalog  CatalogService
	log      *slog.Logger
}

func New(seats SeatService, bookings BookingService, catalog CatalogService, log *slog.Logger) *Handler {
	return &Handler{
		seats:    seats,
		bookings: bookings,
		catalog:  catalog,
		log:      log,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

var errBadBody = errors.New("invalid json body")

func (h *Handler) handleError(c echo.Context, err error) error {
	resp := dto.ErrorResponse{Error: err.Error()}
	if seatID, ok := domain.SeatIDOf(err); ok {
		resp.SeatID = &seatID
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		resp.Kind = "not_found"
		return c.JSON(http.StatusNotFound, resp)
	case errors.Is(err, domain.ErrConflict):
		resp.Kind = "conflict"
		return c.JSON(http.StatusConflict, resp)
	case errors.Is(err, domain.ErrValidation), errors.Is(err, errBadBody):
		resp.Kind = "validation"
		return c.JSON(http.StatusBadRequest, resp)
	}

	h.log.ErrorContext(c.Request().Context(), "request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Kind: "internal"})
}

func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, &invalidParamError{name: name}
	}
	return id, nil
}

type invalidParamError struct {
	name string
}

func (e *invalidParamError) Error() string { return "invalid " + e.name }

func (e *invalidParamError) Unwrap() error { return domain.ErrValidation }
