package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tutorcito/tutorcito/internal/pkg/database"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
)

const defaultSearchLimit = 50

// PostgresTutorRepo implements tutors.TutorRepo backed by PostgreSQL
type PostgresTutorRepo struct {
	db *sqlx.DB
}

// NewPostgresTutorRepo creates a new tutor repository
func NewPostgresTutorRepo(client *database.PostgresClient) *PostgresTutorRepo {
	return &PostgresTutorRepo{db: client.GetDB()}
}

func (r *PostgresTutorRepo) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	query := `SELECT id, name, category FROM subjects ORDER BY category, name`

	var subjects []models.Subject
	if err := r.db.SelectContext(ctx, &subjects, query); err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	return subjects, nil
}

// SearchTutors returns active tutor profiles with their cheapest price,
// sponsored profiles first, then cheapest first
func (r *PostgresTutorRepo) SearchTutors(ctx context.Context, filter models.TutorFilter) ([]models.Tutor, error) {
	limit := filter.Limit
	if limit <= 0 || limit > defaultSearchLimit {
		limit = defaultSearchLimit
	}

	query := `
		SELECT p.id, p.full_name, p.bio, p.avatar_url,
			(p.sponsored AND (p.sponsored_until IS NULL OR p.sponsored_until > NOW())) AS sponsored,
			COALESCE(MIN(tp.price_cents), 0) AS min_price_cents,
			COALESCE(MIN(tp.currency), '') AS currency
		FROM profiles p
		JOIN tutor_pricing tp ON tp.tutor_id = p.id
		WHERE p.deleted_at IS NULL`
	args := []interface{}{}

	if filter.SubjectID != nil {
		args = append(args, *filter.SubjectID)
		query += fmt.Sprintf(`
		AND EXISTS (
			SELECT 1 FROM tutor_subjects ts
			WHERE ts.tutor_id = p.id AND ts.subject_id = $%d
		)`, len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(`
		GROUP BY p.id, p.full_name, p.bio, p.avatar_url, p.sponsored, p.sponsored_until
		ORDER BY sponsored DESC, min_price_cents ASC, p.full_name ASC
		LIMIT $%d`, len(args))

	var tutorList []models.Tutor
	if err := r.db.SelectContext(ctx, &tutorList, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search tutors: %w", err)
	}
	return tutorList, nil
}

// GetSubjectsForTutors fetches the subject lists of the given tutors in one
// round trip
func (r *PostgresTutorRepo) GetSubjectsForTutors(ctx context.Context, tutorIDs []uuid.UUID) (map[uuid.UUID][]models.Subject, error) {
	result := make(map[uuid.UUID][]models.Subject, len(tutorIDs))
	if len(tutorIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT ts.tutor_id, s.id, s.name, s.category
		FROM tutor_subjects ts
		JOIN subjects s ON s.id = ts.subject_id
		WHERE ts.tutor_id IN (?)`, tutorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build subject query: %w", err)
	}

	rows, err := r.db.QueryxContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get tutor subjects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tutorID uuid.UUID
		var subject models.Subject
		if err := rows.Scan(&tutorID, &subject.ID, &subject.Name, &subject.Category); err != nil {
			return nil, fmt.Errorf("failed to scan tutor subject: %w", err)
		}
		result[tutorID] = append(result[tutorID], subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tutor subjects: %w", err)
	}
	return result, nil
}

func (r *PostgresTutorRepo) GetPricing(ctx context.Context, tutorID uuid.UUID) ([]models.TutorPricing, error) {
	query := `SELECT id, tutor_id, duration_minutes, price_cents, currency, created_at, updated_at
		FROM tutor_pricing
		WHERE tutor_id = $1
		ORDER BY duration_minutes ASC`

	var rows []models.TutorPricing
	if err := r.db.SelectContext(ctx, &rows, query, tutorID); err != nil {
		return nil, fmt.Errorf("failed to get pricing: %w", err)
	}
	return rows, nil
}

// ReplacePricing swaps the tutor's whole price list in one transaction so a
// partial write never leaves a mixed list behind
func (r *PostgresTutorRepo) ReplacePricing(ctx context.Context, tutorID uuid.UUID, rows []models.TutorPricing) error {
	dbTx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM tutor_pricing WHERE tutor_id = $1`, tutorID); err != nil {
		return fmt.Errorf("failed to clear pricing: %w", err)
	}

	insert := `
		INSERT INTO tutor_pricing (
			id, tutor_id, duration_minutes, price_cents, currency, created_at, updated_at
		) VALUES (
			:id, :tutor_id, :duration_minutes, :price_cents, :currency, NOW(), NOW()
		)`
	for i := range rows {
		if _, err := dbTx.NamedExecContext(ctx, insert, rows[i]); err != nil {
			return fmt.Errorf("failed to insert pricing row: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit pricing: %w", err)
	}
	return nil
}

func (r *PostgresTutorRepo) TutorExists(ctx context.Context, tutorID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM profiles WHERE id = $1 AND deleted_at IS NULL)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, tutorID); err != nil {
		return false, fmt.Errorf("failed to check tutor: %w", err)
	}
	return exists, nil
}
