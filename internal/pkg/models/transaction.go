package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PaymentType discriminates what a transaction pays for
type PaymentType string

const (
	PaymentTypeClass        PaymentType = "class"
	PaymentTypeSubscription PaymentType = "subscription"
)

// Valid reports whether the payment type is one we persist
func (t PaymentType) Valid() bool {
	return t == PaymentTypeClass || t == PaymentTypeSubscription
}

// TransactionStatus is the lifecycle state of a transaction. Provider
// statuses outside the known set are stored verbatim and treated as
// non-terminal.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusInProcess TransactionStatus = "in_process"
	TransactionStatusApproved  TransactionStatus = "approved"
	TransactionStatusRejected  TransactionStatus = "rejected"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Terminal reports whether the status is final; terminal rows are immutable.
func (s TransactionStatus) Terminal() bool {
	switch s {
	case TransactionStatusApproved, TransactionStatusRejected, TransactionStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal
// transition. Non-terminal states may move anywhere; terminal states only
// accept a repeat of themselves, which callers treat as a no-op.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if !s.Terminal() {
		return true
	}
	return s == next
}

// Transaction represents a payment attempt correlated with the provider via
// ExternalReference and, once assigned, ProviderPaymentID.
type Transaction struct {
	ID                   uuid.UUID         `json:"id" db:"id"`
	ExternalReference    string            `json:"external_reference" db:"external_reference"`
	ProviderPaymentID    *string           `json:"provider_payment_id,omitempty" db:"provider_payment_id"`
	PaymentType          PaymentType       `json:"payment_type" db:"payment_type"`
	Status               TransactionStatus `json:"status" db:"status"`
	AmountCents          int64             `json:"amount_cents" db:"amount_cents"`
	Currency             string            `json:"currency" db:"currency"`
	StudentID            uuid.UUID         `json:"student_id" db:"student_id"`
	TutorID              *uuid.UUID        `json:"tutor_id,omitempty" db:"tutor_id"`
	ClassDurationMinutes *int              `json:"class_duration_minutes,omitempty" db:"class_duration_minutes"`
	Description          string            `json:"description" db:"description"`
	Metadata             JSONMap           `json:"metadata,omitempty" db:"metadata"`
	PaidAt               *time.Time        `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt            time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at" db:"updated_at"`
}

// NewExternalReference builds the correlation id threading a local
// transaction to a provider payment: <type>-<entity-ids>-<timestamp>.
func NewExternalReference(paymentType PaymentType, entityIDs ...string) string {
	ref := string(paymentType)
	for _, id := range entityIDs {
		ref += "-" + id
	}
	return fmt.Sprintf("%s-%d", ref, time.Now().UnixMilli())
}
