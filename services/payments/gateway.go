package payments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/mercadopago"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
)

// ProviderGW defines the payment-provider operations the usecases depend on
type ProviderGW interface {
	CreatePreference(ctx context.Context, payload *mercadopago.PreferencePayload) (*mercadopago.PreferenceResult, error)
	GetPayment(ctx context.Context, paymentID string) (*models.PaymentDetails, error)
	CreatePayment(ctx context.Context, payload *mercadopago.ChargePayload) (*models.PaymentDetails, error)
}

// EventsGW publishes payment lifecycle events. Publishing is best-effort;
// implementations log failures instead of propagating them.
type EventsGW interface {
	PublishPaymentEvent(ctx context.Context, event models.PaymentEvent)
	PublishDeadLetter(ctx context.Context, event models.DeadLetterEvent)
}

// DedupCache short-circuits redelivered webhook notifications. Satisfied by
// the Redis client.
type DedupCache interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
}

// ProfileGW is the slice of the profiles service the reconciliation side
// effects consume
type ProfileGW interface {
	SetSponsored(ctx context.Context, userID uuid.UUID, until *time.Time) error
}

// BookingGW is the slice of the bookings service the checkout flow and the
// reconciliation side effects consume
type BookingGW interface {
	AttachTransaction(ctx context.Context, bookingID, transactionID uuid.UUID) error
	ConfirmByTransaction(ctx context.Context, transactionID uuid.UUID) error
}
