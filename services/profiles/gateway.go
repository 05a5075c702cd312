package profiles

import (
	"context"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/moderation"
)

// ModerationGW checks user-submitted text before it is persisted
type ModerationGW interface {
	Check(ctx context.Context, text string) (*moderation.Result, error)
}

// PaymentsGW is the slice of the payments service account deletion consumes
type PaymentsGW interface {
	CancelPendingByStudent(ctx context.Context, studentID uuid.UUID) error
}

// BookingsGW is the slice of the bookings service account deletion consumes
type BookingsGW interface {
	CancelOpenByUser(ctx context.Context, userID uuid.UUID) error
}

// EventsGW publishes account lifecycle events
type EventsGW interface {
	PublishAccountDeleted(ctx context.Context, userID uuid.UUID)
}
