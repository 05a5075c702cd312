package gateway

import (
	"context"

	"github.com/tutorcito/tutorcito/internal/pkg/constants"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	natspkg "github.com/tutorcito/tutorcito/internal/pkg/nats"
	"github.com/tutorcito/tutorcito/services/payments"
)

// NatsEventsGW publishes payment lifecycle events to NATS. Publishing is
// fire-and-forget: a broker outage must never fail a reconciliation that
// already committed.
type NatsEventsGW struct {
	client *natspkg.Client
}

// NewEventsGW creates a new NATS-backed events gateway
func NewEventsGW(client *natspkg.Client) payments.EventsGW {
	return &NatsEventsGW{
		client: client,
	}
}

// PublishPaymentEvent publishes a terminal-state payment event
func (g *NatsEventsGW) PublishPaymentEvent(ctx context.Context, event models.PaymentEvent) {
	subject := constants.SubjectPaymentRejected
	if event.Status == models.TransactionStatusApproved {
		subject = constants.SubjectPaymentApproved
	}

	if err := g.client.PublishJSON(subject, event); err != nil {
		logger.Error("Failed to publish payment event",
			logger.Err(err),
			logger.String("subject", subject),
			logger.String("transaction_id", event.TransactionID.String()),
		)
	}
}

// PublishDeadLetter publishes a dead-letter event for a webhook
// notification that could not be applied
func (g *NatsEventsGW) PublishDeadLetter(ctx context.Context, event models.DeadLetterEvent) {
	if err := g.client.PublishJSON(constants.SubjectPaymentDeadLetter, event); err != nil {
		logger.Error("Failed to publish dead-letter event",
			logger.Err(err),
			logger.String("notification_id", event.NotificationID),
			logger.String("reason", event.Reason),
		)
	}
}
