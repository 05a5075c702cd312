package constants

// NATS Subjects
const (
	// Payment events
	SubjectPaymentApproved = "payments.approved"
	SubjectPaymentRejected = "payments.rejected"

	// Webhook notifications that could not be applied land here instead of
	// being retried by the provider
	SubjectPaymentDeadLetter = "payments.deadletter"

	// Account lifecycle
	SubjectAccountDeleted = "accounts.deleted"
)
