package bookings

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
)

var (
	// ErrBookingNotFound is returned when no booking matches a lookup
	ErrBookingNotFound = errors.New("booking not found")

	// ErrValidation marks caller mistakes that map to a 400 response
	ErrValidation = errors.New("validation failed")

	// ErrNotCancellable is returned when a completed booking is cancelled
	ErrNotCancellable = errors.New("booking can no longer be cancelled")
)

// BookingUC defines the interface for booking use cases
type BookingUC interface {
	CreateBooking(ctx context.Context, studentID uuid.UUID, req *models.BookingRequest) (*models.Booking, error)
	ListBookings(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error

	// AttachTransaction links a checkout transaction to a booking; consumed
	// by the payments service when a class checkout starts
	AttachTransaction(ctx context.Context, bookingID, transactionID uuid.UUID) error

	// ConfirmByTransaction confirms the booking paid by the given
	// transaction; a missing link is a silent no-op
	ConfirmByTransaction(ctx context.Context, transactionID uuid.UUID) error

	// CancelOpenByUser cancels every open booking of a user; consumed by
	// account deletion
	CancelOpenByUser(ctx context.Context, userID uuid.UUID) error
}
