package profiles

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
)

// ProfileRepo defines the interface for profile persistence
type ProfileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fullName, bio, avatarURL string) (*models.Profile, error)
	SetSponsored(ctx context.Context, id uuid.UUID, sponsored bool, until *time.Time) error

	// Anonymize blanks personal data and marks the profile deleted while
	// keeping the row so historical transactions stay consistent
	Anonymize(ctx context.Context, id uuid.UUID) error
}
