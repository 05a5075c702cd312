package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/profiles"
)

// ProfileUCImpl implements the profiles.ProfileUC interface
type ProfileUCImpl struct {
	cfg        *models.Config
	repo       profiles.ProfileRepo
	moderation profiles.ModerationGW
	payments   profiles.PaymentsGW
	bookings   profiles.BookingsGW
	events     profiles.EventsGW
}

// NewProfileUC creates a new profile use case
func NewProfileUC(
	cfg *models.Config,
	repo profiles.ProfileRepo,
	moderationGW profiles.ModerationGW,
	paymentsGW profiles.PaymentsGW,
	bookingsGW profiles.BookingsGW,
	events profiles.EventsGW,
) profiles.ProfileUC {
	return &ProfileUCImpl{
		cfg:        cfg,
		repo:       repo,
		moderation: moderationGW,
		payments:   paymentsGW,
		bookings:   bookingsGW,
		events:     events,
	}
}

// GetProfile retrieves a profile by id
func (uc *ProfileUCImpl) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return uc.repo.GetByID(ctx, id)
}

// UpdateProfile applies the caller-editable fields after the submitted text
// passes content moderation
func (uc *ProfileUCImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.ProfileUpdateRequest) (*models.Profile, error) {
	text := strings.TrimSpace(req.FullName + "\n" + req.Bio)
	result, err := uc.moderation.Check(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("moderation check failed: %w", err)
	}
	if result.Flagged {
		logger.Warn("Profile update rejected by moderation",
			logger.String("user_id", userID.String()),
			logger.Strings("categories", result.Categories),
		)
		return nil, profiles.ErrContentFlagged
	}

	return uc.repo.UpdateFields(ctx, userID, req.FullName, req.Bio, req.AvatarURL)
}

// SetSponsored flips the sponsorship flag; consumed by the payment
// reconciliation flow
func (uc *ProfileUCImpl) SetSponsored(ctx context.Context, userID uuid.UUID, until *time.Time) error {
	return uc.repo.SetSponsored(ctx, userID, true, until)
}

// DeleteAccount anonymizes the profile and cancels pending transactions and
// open bookings. The confirmation text must match exactly.
func (uc *ProfileUCImpl) DeleteAccount(ctx context.Context, userID uuid.UUID, req *models.AccountDeleteRequest) error {
	if req == nil || req.Confirmation != models.AccountDeleteConfirmation {
		return profiles.ErrConfirmationRequired
	}

	if err := uc.repo.Anonymize(ctx, userID); err != nil {
		return err
	}

	// Cascade cleanup is best-effort: the profile is already gone and a
	// failed cancellation must not resurrect it
	if err := uc.payments.CancelPendingByStudent(ctx, userID); err != nil {
		logger.Error("Failed to cancel pending transactions during account deletion",
			logger.Err(err),
			logger.String("user_id", userID.String()),
		)
	}
	if err := uc.bookings.CancelOpenByUser(ctx, userID); err != nil {
		logger.Error("Failed to cancel open bookings during account deletion",
			logger.Err(err),
			logger.String("user_id", userID.String()),
		)
	}

	uc.events.PublishAccountDeleted(ctx, userID)
	return nil
}
