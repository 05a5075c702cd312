package tutors

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
)

var (
	// ErrTutorNotFound is returned when no tutor matches a lookup
	ErrTutorNotFound = errors.New("tutor not found")

	// ErrValidation marks caller mistakes that map to a 400 response
	ErrValidation = errors.New("validation failed")
)

// TutorUC defines the interface for tutor discovery and pricing use cases
type TutorUC interface {
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	SearchTutors(ctx context.Context, filter models.TutorFilter) ([]models.Tutor, error)
	GetPricing(ctx context.Context, tutorID uuid.UUID) ([]models.TutorPricing, error)
	ReplacePricing(ctx context.Context, tutorID uuid.UUID, entries []models.PricingEntryRequest) ([]models.TutorPricing, error)
}
