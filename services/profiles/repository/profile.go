package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/profiles"
)

const profileColumns = `
	id, full_name, email, role, bio, avatar_url, sponsored, sponsored_until,
	deleted_at, created_at, updated_at
`

// PostgresProfileRepo implements the profiles.ProfileRepo interface
type PostgresProfileRepo struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) profiles.ProfileRepo {
	return &PostgresProfileRepo{
		db: db,
	}
}

// GetByID retrieves a profile by id; deleted profiles are not returned
func (r *PostgresProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM profiles
		WHERE id = $1 AND deleted_at IS NULL
	`, profileColumns)

	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, profiles.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// UpdateFields applies the caller-editable profile fields
func (r *PostgresProfileRepo) UpdateFields(ctx context.Context, id uuid.UUID, fullName, bio, avatarURL string) (*models.Profile, error) {
	query := `
		UPDATE profiles
		SET full_name = $1, bio = $2, avatar_url = $3, updated_at = NOW()
		WHERE id = $4 AND deleted_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, fullName, bio, avatarURL, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, profiles.ErrProfileNotFound
	}

	return r.GetByID(ctx, id)
}

// SetSponsored flips the sponsorship flag on a profile
func (r *PostgresProfileRepo) SetSponsored(ctx context.Context, id uuid.UUID, sponsored bool, until *time.Time) error {
	query := `
		UPDATE profiles
		SET sponsored = $1, sponsored_until = $2, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, sponsored, until, id)
	if err != nil {
		return fmt.Errorf("failed to set sponsored flag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return profiles.ErrProfileNotFound
	}

	return nil
}

// Anonymize blanks personal data and marks the profile deleted
func (r *PostgresProfileRepo) Anonymize(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE profiles
		SET full_name = 'Deleted user', email = '', bio = '', avatar_url = '',
		    sponsored = FALSE, sponsored_until = NULL,
		    deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to anonymize profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return profiles.ErrProfileNotFound
	}

	return nil
}
