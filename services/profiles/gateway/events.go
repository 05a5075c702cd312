package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/constants"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	natspkg "github.com/tutorcito/tutorcito/internal/pkg/nats"
	"github.com/tutorcito/tutorcito/services/profiles"
)

// accountDeletedEvent is the payload published when an account is removed
type accountDeletedEvent struct {
	UserID    uuid.UUID `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NatsEventsGW publishes account lifecycle events to NATS. Publishing is
// fire-and-forget: a broker outage must never fail a deletion that already
// committed.
type NatsEventsGW struct {
	client *natspkg.Client
}

// NewEventsGW creates a new NATS-backed events gateway
func NewEventsGW(client *natspkg.Client) profiles.EventsGW {
	return &NatsEventsGW{
		client: client,
	}
}

// PublishAccountDeleted announces that a user account was anonymized
func (g *NatsEventsGW) PublishAccountDeleted(ctx context.Context, userID uuid.UUID) {
	event := accountDeletedEvent{
		UserID:    userID,
		Timestamp: time.Now().UTC(),
	}
	if err := g.client.PublishJSON(constants.SubjectAccountDeleted, event); err != nil {
		logger.Error("Failed to publish account-deleted event",
			logger.Err(err),
			logger.String("user_id", userID.String()),
		)
	}
}
