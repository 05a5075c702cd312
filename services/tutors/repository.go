package tutors

import (
	"context"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
)

// TutorRepo defines the interface for tutor data access
type TutorRepo interface {
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	SearchTutors(ctx context.Context, filter models.TutorFilter) ([]models.Tutor, error)
	GetSubjectsForTutors(ctx context.Context, tutorIDs []uuid.UUID) (map[uuid.UUID][]models.Subject, error)
	GetPricing(ctx context.Context, tutorID uuid.UUID) ([]models.TutorPricing, error)
	ReplacePricing(ctx context.Context, tutorID uuid.UUID, rows []models.TutorPricing) error
	TutorExists(ctx context.Context, tutorID uuid.UUID) (bool, error)
}
