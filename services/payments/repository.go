package payments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
)

var (
	// ErrTransactionNotFound is returned when no transaction matches a lookup
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransitionNotAllowed is returned when a status write would violate
	// the transaction state machine (terminal rows are immutable)
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)

// PaymentRepo defines the interface for transaction persistence
type PaymentRepo interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetTransactionByExternalReference(ctx context.Context, ref string) (*models.Transaction, error)
	GetTransactionByProviderPaymentID(ctx context.Context, providerPaymentID string) (*models.Transaction, error)

	// GetLatestPendingClassTransaction is the last-resort reconciliation
	// lookup: the caller's most recent pending class-type transaction
	GetLatestPendingClassTransaction(ctx context.Context, studentID uuid.UUID) (*models.Transaction, error)

	// ApplyStatusTransition performs the guarded status write: the update
	// only lands when the current status admits the new one. Repeating a
	// terminal status is a no-op that still returns the row; an illegal
	// transition returns ErrTransitionNotAllowed. paid_at is set on first
	// approval and never overwritten.
	ApplyStatusTransition(ctx context.Context, id uuid.UUID, status models.TransactionStatus, providerPaymentID *string, paidAt *time.Time) (*models.Transaction, error)

	// CancelPendingByStudent cancels every pending transaction of a student,
	// used by account deletion
	CancelPendingByStudent(ctx context.Context, studentID uuid.UUID) error
}
