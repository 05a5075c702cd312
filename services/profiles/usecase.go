package profiles

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
)

var (
	// ErrProfileNotFound is returned when no profile matches a lookup
	ErrProfileNotFound = errors.New("profile not found")

	// ErrContentFlagged is returned when moderation rejects submitted text
	ErrContentFlagged = errors.New("content flagged by moderation")

	// ErrConfirmationRequired is returned when the account deletion
	// confirmation text is missing or wrong
	ErrConfirmationRequired = errors.New("deletion confirmation text required")
)

// ProfileUC defines the interface for profile use cases
type ProfileUC interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)

	// UpdateProfile applies the caller-editable fields after the text passes
	// content moderation
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.ProfileUpdateRequest) (*models.Profile, error)

	// SetSponsored flips the sponsorship flag; consumed by the payment
	// reconciliation flow on approved subscription payments
	SetSponsored(ctx context.Context, userID uuid.UUID, until *time.Time) error

	// DeleteAccount anonymizes the profile and cancels the user's pending
	// transactions and open bookings. Requires the confirmation text.
	DeleteAccount(ctx context.Context, userID uuid.UUID, req *models.AccountDeleteRequest) error
}
