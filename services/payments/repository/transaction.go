package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/payments"
)

const transactionColumns = `
	id, external_reference, provider_payment_id, payment_type, status,
	amount_cents, currency, student_id, tutor_id, class_duration_minutes,
	description, metadata, paid_at, created_at, updated_at
`

// PostgresPaymentRepo implements the payments.PaymentRepo interface
type PostgresPaymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sqlx.DB) payments.PaymentRepo {
	return &PostgresPaymentRepo{
		db: db,
	}
}

// CreateTransaction inserts a new transaction record. The external
// reference carries a unique constraint; a duplicate insert fails rather
// than silently creating a second row for the same checkout attempt.
func (r *PostgresPaymentRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	now := time.Now()
	tx.CreatedAt = now
	tx.UpdatedAt = now
	if tx.Status == "" {
		tx.Status = models.TransactionStatusPending
	}

	query := `
		INSERT INTO transactions (
			id, external_reference, provider_payment_id, payment_type, status,
			amount_cents, currency, student_id, tutor_id, class_duration_minutes,
			description, metadata, paid_at, created_at, updated_at
		) VALUES (
			:id, :external_reference, :provider_payment_id, :payment_type, :status,
			:amount_cents, :currency, :student_id, :tutor_id, :class_duration_minutes,
			:description, :metadata, :paid_at, :created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, tx)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// GetTransactionByID retrieves a transaction by its id
func (r *PostgresPaymentRepo) GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	return r.getTransaction(ctx, "id = $1", id)
}

// GetTransactionByExternalReference retrieves a transaction by its
// correlation reference
func (r *PostgresPaymentRepo) GetTransactionByExternalReference(ctx context.Context, ref string) (*models.Transaction, error) {
	return r.getTransaction(ctx, "external_reference = $1", ref)
}

// GetTransactionByProviderPaymentID retrieves a transaction by the
// provider-assigned payment id
func (r *PostgresPaymentRepo) GetTransactionByProviderPaymentID(ctx context.Context, providerPaymentID string) (*models.Transaction, error) {
	return r.getTransaction(ctx, "provider_payment_id = $1", providerPaymentID)
}

// GetLatestPendingClassTransaction retrieves the student's most recent
// pending class-type transaction. Best-effort fallback for the success-page
// reconciler; ambiguous under concurrent checkouts by the same student.
func (r *PostgresPaymentRepo) GetLatestPendingClassTransaction(ctx context.Context, studentID uuid.UUID) (*models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM transactions
		WHERE student_id = $1 AND payment_type = $2 AND status = $3
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, transactionColumns)

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, studentID, models.PaymentTypeClass, models.TransactionStatusPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get latest pending class transaction: %w", err)
	}

	return &tx, nil
}

// ApplyStatusTransition performs the guarded status write. The WHERE clause
// only matches rows whose current status admits the new one, so a terminal
// row cannot be downgraded by a late notification; repeating the same
// terminal status matches but leaves paid_at untouched.
func (r *PostgresPaymentRepo) ApplyStatusTransition(ctx context.Context, id uuid.UUID, status models.TransactionStatus, providerPaymentID *string, paidAt *time.Time) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET status = $1,
		    provider_payment_id = COALESCE($2, provider_payment_id),
		    paid_at = CASE WHEN $1 = 'approved' AND paid_at IS NULL THEN $3 ELSE paid_at END,
		    updated_at = NOW()
		WHERE id = $4
		  AND (status NOT IN ('approved', 'rejected', 'cancelled') OR status = $1)
	`
	result, err := r.db.ExecContext(ctx, query, status, providerPaymentID, paidAt, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Distinguish a missing row from a guarded terminal row
		current, getErr := r.GetTransactionByID(ctx, id)
		if getErr != nil {
			return nil, getErr
		}
		if !current.Status.CanTransitionTo(status) {
			return nil, payments.ErrTransitionNotAllowed
		}
		return nil, fmt.Errorf("transaction %s not updated", id)
	}

	return r.GetTransactionByID(ctx, id)
}

// CancelPendingByStudent cancels every pending transaction of a student
func (r *PostgresPaymentRepo) CancelPendingByStudent(ctx context.Context, studentID uuid.UUID) error {
	query := `
		UPDATE transactions
		SET status = $1, updated_at = NOW()
		WHERE student_id = $2 AND status = $3
	`
	_, err := r.db.ExecContext(ctx, query, models.TransactionStatusCancelled, studentID, models.TransactionStatusPending)
	if err != nil {
		return fmt.Errorf("failed to cancel pending transactions: %w", err)
	}

	return nil
}

func (r *PostgresPaymentRepo) getTransaction(ctx context.Context, where string, arg interface{}) (*models.Transaction, error) {
	query := fmt.Sprintf("SELECT %s FROM transactions WHERE %s", transactionColumns, where)

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}
