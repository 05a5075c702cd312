package payments

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
)

// ErrValidation marks caller mistakes that map to a 400 response
var ErrValidation = errors.New("validation failed")

// PaymentUC defines the interface for payment use cases
type PaymentUC interface {
	// CreatePreference builds a provider checkout preference from a cart and
	// persists the pending transaction correlated with it
	CreatePreference(ctx context.Context, req *models.PreferenceRequest) (*models.PreferenceResponse, error)

	// HandleWebhook applies an asynchronous provider notification. Errors
	// are reported for logging only; the HTTP layer acknowledges 200
	// regardless.
	HandleWebhook(ctx context.Context, notification models.WebhookNotification) error

	// GetPaymentStatus proxies the provider's payment state by id
	GetPaymentStatus(ctx context.Context, paymentID string) (*models.PaymentDetails, error)

	// ChargeClass performs a direct card-token charge for a class
	ChargeClass(ctx context.Context, studentID uuid.UUID, req *models.ChargeRequest) (*models.Transaction, error)

	// ChargeSubscription performs a direct card-token charge for a
	// sponsorship subscription
	ChargeSubscription(ctx context.Context, studentID uuid.UUID, req *models.ChargeRequest) (*models.Transaction, error)

	// Reconcile applies the success-page redirect parameters to the matching
	// local transaction, degrading gracefully when none is found
	Reconcile(ctx context.Context, studentID uuid.UUID, req *models.ReconcileRequest) (*models.ReconcileResponse, error)

	// CancelPendingByStudent cancels every non-terminal transaction of a
	// student; consumed by account deletion
	CancelPendingByStudent(ctx context.Context, studentID uuid.UUID) error
}
