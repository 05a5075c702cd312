package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/bookings"
)

// BookingUC implements the bookings.BookingUC interface
type BookingUC struct {
	repo bookings.BookingRepo
}

// NewBookingUC creates a new booking usecase
func NewBookingUC(repo bookings.BookingRepo) *BookingUC {
	return &BookingUC{repo: repo}
}

func (uc *BookingUC) CreateBooking(ctx context.Context, studentID uuid.UUID, req *models.BookingRequest) (*models.Booking, error) {
	if err := validateBookingRequest(studentID, req); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:              uuid.New(),
		StudentID:       studentID,
		TutorID:         req.TutorID,
		SubjectID:       req.SubjectID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Status:          models.BookingStatusPendingPayment,
		Notes:           req.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.Info("booking created",
		logger.String("booking_id", booking.ID.String()),
		logger.String("student_id", studentID.String()),
		logger.String("tutor_id", req.TutorID.String()))

	return booking, nil
}

func validateBookingRequest(studentID uuid.UUID, req *models.BookingRequest) error {
	if req.TutorID == uuid.Nil {
		return fmt.Errorf("%w: tutor_id is required", bookings.ErrValidation)
	}
	if req.TutorID == studentID {
		return fmt.Errorf("%w: cannot book a class with yourself", bookings.ErrValidation)
	}
	if req.SubjectID == uuid.Nil {
		return fmt.Errorf("%w: subject_id is required", bookings.ErrValidation)
	}
	if req.ScheduledAt.Before(time.Now()) {
		return fmt.Errorf("%w: scheduled_at must be in the future", bookings.ErrValidation)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration_minutes must be positive", bookings.ErrValidation)
	}
	return nil
}

func (uc *BookingUC) ListBookings(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return list, nil
}

func (uc *BookingUC) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error {
	booking, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.StudentID != userID && booking.TutorID != userID {
		return bookings.ErrBookingNotFound
	}

	switch booking.Status {
	case models.BookingStatusCancelled:
		// already cancelled, idempotent
		return nil
	case models.BookingStatusCompleted:
		return bookings.ErrNotCancellable
	}

	if err := uc.repo.UpdateStatus(ctx, bookingID, models.BookingStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	logger.Info("booking cancelled",
		logger.String("booking_id", bookingID.String()),
		logger.String("user_id", userID.String()))
	return nil
}

func (uc *BookingUC) AttachTransaction(ctx context.Context, bookingID, transactionID uuid.UUID) error {
	return uc.repo.AttachTransaction(ctx, bookingID, transactionID)
}

func (uc *BookingUC) ConfirmByTransaction(ctx context.Context, transactionID uuid.UUID) error {
	rows, err := uc.repo.ConfirmByTransaction(ctx, transactionID)
	if err != nil {
		return err
	}
	if rows == 0 {
		// nothing linked to this transaction, or already confirmed
		logger.Debug("no booking confirmed for transaction",
			logger.String("transaction_id", transactionID.String()))
		return nil
	}

	logger.Info("booking confirmed by payment",
		logger.String("transaction_id", transactionID.String()))
	return nil
}

func (uc *BookingUC) CancelOpenByUser(ctx context.Context, userID uuid.UUID) error {
	rows, err := uc.repo.CancelOpenByUser(ctx, userID)
	if err != nil {
		return err
	}
	if rows > 0 {
		logger.Info("open bookings cancelled for user",
			logger.String("user_id", userID.String()),
			logger.Int64("count", rows))
	}
	return nil
}
