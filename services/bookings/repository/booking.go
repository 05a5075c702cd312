package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tutorcito/tutorcito/internal/pkg/database"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/bookings"
)

const bookingColumns = `id, student_id, tutor_id, subject_id, transaction_id,
	scheduled_at, duration_minutes, status, notes, created_at, updated_at`

// PostgresBookingRepo implements bookings.BookingRepo backed by PostgreSQL
type PostgresBookingRepo struct {
	db *sqlx.DB
}

// NewPostgresBookingRepo creates a new booking repository
func NewPostgresBookingRepo(client *database.PostgresClient) *PostgresBookingRepo {
	return &PostgresBookingRepo{db: client.GetDB()}
}

func (r *PostgresBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, student_id, tutor_id, subject_id, transaction_id,
			scheduled_at, duration_minutes, status, notes, created_at, updated_at
		) VALUES (
			:id, :student_id, :tutor_id, :subject_id, :transaction_id,
			:scheduled_at, :duration_minutes, :status, :notes, NOW(), NOW()
		)`

	_, err := r.db.NamedExecContext(ctx, query, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *PostgresBookingRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookings.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *PostgresBookingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE student_id = $1 OR tutor_id = $1
		ORDER BY scheduled_at DESC`

	var list []models.Booking
	if err := r.db.SelectContext(ctx, &list, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return list, nil
}

func (r *PostgresBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error {
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return bookings.ErrBookingNotFound
	}
	return nil
}

func (r *PostgresBookingRepo) AttachTransaction(ctx context.Context, bookingID, transactionID uuid.UUID) error {
	query := `UPDATE bookings SET transaction_id = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, transactionID, bookingID)
	if err != nil {
		return fmt.Errorf("failed to attach transaction: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return bookings.ErrBookingNotFound
	}
	return nil
}

// ConfirmByTransaction flips the booking paid by the given transaction from
// pending_payment to confirmed and reports how many rows changed
func (r *PostgresBookingRepo) ConfirmByTransaction(ctx context.Context, transactionID uuid.UUID) (int64, error) {
	query := `UPDATE bookings SET status = $1, updated_at = NOW()
		WHERE transaction_id = $2 AND status = $3`

	result, err := r.db.ExecContext(ctx, query,
		models.BookingStatusConfirmed, transactionID, models.BookingStatusPendingPayment)
	if err != nil {
		return 0, fmt.Errorf("failed to confirm booking: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

// CancelOpenByUser cancels every pending or confirmed booking in which the
// user participates as student or tutor
func (r *PostgresBookingRepo) CancelOpenByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `UPDATE bookings SET status = $1, updated_at = NOW()
		WHERE (student_id = $2 OR tutor_id = $2) AND status IN ($3, $4)`

	result, err := r.db.ExecContext(ctx, query,
		models.BookingStatusCancelled, userID,
		models.BookingStatusPendingPayment, models.BookingStatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel open bookings: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
