package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/tutorcito/tutorcito/internal/pkg/middleware"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/bookings"
	httpHandler "github.com/tutorcito/tutorcito/services/bookings/handler/http"
)

// Handler bundles the booking HTTP handlers for route registration
type Handler struct {
	booking *httpHandler.BookingHandler
	cfg     *models.Config
}

// NewHandler creates the bookings handler bundle
func NewHandler(bookingUC bookings.BookingUC, cfg *models.Config) *Handler {
	return &Handler{
		booking: httpHandler.NewBookingHandler(bookingUC),
		cfg:     cfg,
	}
}

// RegisterRoutes registers the booking routes, all behind authentication
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))
	g.POST("/bookings", h.booking.CreateBooking)
	g.GET("/bookings", h.booking.ListBookings)
	g.POST("/bookings/:id/cancel", h.booking.CancelBooking)
}
