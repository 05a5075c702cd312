package bookings

import (
	"context"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
)

// BookingRepo defines the interface for booking data access
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error
	AttachTransaction(ctx context.Context, bookingID, transactionID uuid.UUID) error
	ConfirmByTransaction(ctx context.Context, transactionID uuid.UUID) (int64, error)
	CancelOpenByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
