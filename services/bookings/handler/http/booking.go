package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/middleware"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/internal/utils"
	"github.com/tutorcito/tutorcito/services/bookings"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// CreateBooking handles booking creation for the authenticated student
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), userID, &req)
	if err != nil {
		if errors.Is(err, bookings.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to create booking", logger.Err(err), logger.String("user_id", userID.String()))
		return utils.InternalServerErrorResponse(c, "Failed to create booking")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
}

// ListBookings returns the bookings the authenticated user takes part in
func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.bookingUC.ListBookings(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list bookings", logger.Err(err), logger.String("user_id", userID.String()))
		return utils.InternalServerErrorResponse(c, "Failed to list bookings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", list)
}

// CancelBooking cancels a booking owned by the authenticated user
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking id")
	}

	if err := h.bookingUC.CancelBooking(c.Request().Context(), userID, bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			return utils.NotFoundResponse(c, "Booking not found")
		case errors.Is(err, bookings.ErrNotCancellable):
			return utils.UnprocessableEntityResponse(c, "Completed bookings cannot be cancelled")
		default:
			logger.Error("Failed to cancel booking", logger.Err(err), logger.String("booking_id", bookingID.String()))
			return utils.InternalServerErrorResponse(c, "Failed to cancel booking")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled", nil)
}
