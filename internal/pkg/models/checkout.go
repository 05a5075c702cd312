package models

import (
	"time"

	"github.com/google/uuid"
)

// PreferenceItem is one line item of a checkout cart. Quantity and
// UnitPrice arrive as loosely typed JSON and are validated/coerced by the
// checkout usecase.
type PreferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id,omitempty"`
}

// PreferencePayer identifies the paying user towards the provider
type PreferencePayer struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// PreferencePaymentMethods carries provider payment-method overrides
type PreferencePaymentMethods struct {
	Installments         int      `json:"installments,omitempty"`
	ExcludedPaymentTypes []string `json:"excluded_payment_types,omitempty"`
}

// PreferenceRequest is the client-facing checkout payload
type PreferenceRequest struct {
	Items                []PreferenceItem          `json:"items"`
	ExternalReference    string                    `json:"external_reference"`
	Payer                PreferencePayer           `json:"payer"`
	Metadata             JSONMap                   `json:"metadata,omitempty"`
	StatementDescriptor  string                    `json:"statement_descriptor,omitempty"`
	PaymentMethods       *PreferencePaymentMethods `json:"payment_methods,omitempty"`
	PaymentType          PaymentType               `json:"payment_type,omitempty"`
	StudentID            uuid.UUID                 `json:"student_id,omitempty"`
	TutorID              *uuid.UUID                `json:"tutor_id,omitempty"`
	BookingID            *uuid.UUID                `json:"booking_id,omitempty"`
	ClassDurationMinutes *int                      `json:"class_duration_minutes,omitempty"`
}

// BackURLs are the redirect targets the provider sends the payer back to
type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceResponse is returned to the client after the provider accepts
// the preference
type PreferenceResponse struct {
	ID               string   `json:"id"`
	InitPoint        string   `json:"init_point"`
	SandboxInitPoint string   `json:"sandbox_init_point"`
	BackURLs         BackURLs `json:"backUrls"`
}

// WebhookNotification is the asynchronous payload the provider posts to our
// webhook endpoint
type WebhookNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Webhook notification types the receiver discriminates on
const (
	WebhookTypePayment                 = "payment"
	WebhookTypeSubscriptionPreapproval = "subscription_preapproval"
)

// PaymentDetails is the authoritative payment state fetched from the
// provider after a notification
type PaymentDetails struct {
	ID                string  `json:"id"`
	Status            string  `json:"status"`
	StatusDetail      string  `json:"status_detail"`
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
	CurrencyID        string  `json:"currency_id"`
	PayerEmail        string  `json:"payer_email,omitempty"`
	DateApproved      string  `json:"date_approved,omitempty"`
}

// ChargeRequest is a server-side direct charge using a pre-tokenized card
type ChargeRequest struct {
	CardToken            string     `json:"card_token"`
	AmountCents          int64      `json:"amount_cents"`
	Currency             string     `json:"currency,omitempty"`
	Installments         int        `json:"installments,omitempty"`
	PayerEmail           string     `json:"payer_email"`
	Description          string     `json:"description,omitempty"`
	TutorID              *uuid.UUID `json:"tutor_id,omitempty"`
	BookingID            *uuid.UUID `json:"booking_id,omitempty"`
	ClassDurationMinutes *int       `json:"class_duration_minutes,omitempty"`
}

// ReconcileRequest carries the query parameters the provider attaches to
// the success-page redirect. The provider is inconsistent about which alias
// it supplies, so every variant is accepted.
type ReconcileRequest struct {
	ExternalReference string `json:"external_reference" query:"external_reference"`
	PaymentID         string `json:"payment_id" query:"payment_id"`
	CollectionID      string `json:"collection_id" query:"collection_id"`
	Status            string `json:"status" query:"status"`
	CollectionStatus  string `json:"collection_status" query:"collection_status"`
}

// ReconcileResponse reports whether a local transaction was found and
// updated; the success page degrades gracefully when it was not.
type ReconcileResponse struct {
	Reconciled  bool         `json:"reconciled"`
	MatchedBy   string       `json:"matched_by,omitempty"`
	Transaction *Transaction `json:"transaction,omitempty"`
}

// Reconcile match sources, in descending order of reliability. The
// latest_pending fallback is heuristic and the response says so.
const (
	ReconcileMatchExternalReference = "external_reference"
	ReconcileMatchPaymentID         = "payment_id"
	ReconcileMatchLatestPending     = "latest_pending"
)

// PaymentEvent is published on NATS when a transaction reaches a terminal
// state
type PaymentEvent struct {
	TransactionID     uuid.UUID         `json:"transaction_id"`
	ExternalReference string            `json:"external_reference"`
	ProviderPaymentID string            `json:"provider_payment_id,omitempty"`
	PaymentType       PaymentType       `json:"payment_type"`
	Status            TransactionStatus `json:"status"`
	AmountCents       int64             `json:"amount_cents"`
	StudentID         uuid.UUID         `json:"student_id"`
	Timestamp         time.Time         `json:"timestamp"`
}

// DeadLetterEvent is published when a webhook notification cannot be
// applied; the webhook still acknowledges 200 so the provider does not
// retry, and the event is the only trace left behind.
type DeadLetterEvent struct {
	NotificationType string    `json:"notification_type"`
	NotificationID   string    `json:"notification_id"`
	Reason           string    `json:"reason"`
	Timestamp        time.Time `json:"timestamp"`
}
