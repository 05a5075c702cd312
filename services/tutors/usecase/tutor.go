package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/constants"
	"github.com/tutorcito/tutorcito/internal/pkg/database"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/internal/utils"
	"github.com/tutorcito/tutorcito/services/tutors"
)

// TutorUC implements the tutors.TutorUC interface
type TutorUC struct {
	cfg   *models.Config
	repo  tutors.TutorRepo
	cache *database.RedisClient
}

// NewTutorUC creates a new tutor usecase
func NewTutorUC(cfg *models.Config, repo tutors.TutorRepo, cache *database.RedisClient) *TutorUC {
	return &TutorUC{
		cfg:   cfg,
		repo:  repo,
		cache: cache,
	}
}

// ListSubjects returns the subject catalog, served from cache when warm
func (uc *TutorUC) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var cached []models.Subject
	if uc.cacheGet(ctx, constants.KeySubjectCatalog, &cached) {
		return cached, nil
	}

	subjects, err := uc.repo.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}

	uc.cacheSet(ctx, constants.KeySubjectCatalog, subjects, constants.CacheTTLSubjects)
	return subjects, nil
}

// SearchTutors returns the discovery listing for the given filter, sponsored
// tutors first. Results are cached briefly per filter.
func (uc *TutorUC) SearchTutors(ctx context.Context, filter models.TutorFilter) ([]models.Tutor, error) {
	key := searchCacheKey(filter)

	var cached []models.Tutor
	if uc.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	tutorList, err := uc.repo.SearchTutors(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(tutorList))
	for i := range tutorList {
		ids[i] = tutorList[i].ID
	}
	subjectsByTutor, err := uc.repo.GetSubjectsForTutors(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range tutorList {
		tutorList[i].Subjects = subjectsByTutor[tutorList[i].ID]
	}

	uc.cacheSet(ctx, key, tutorList, constants.CacheTTLTutorSearch)
	return tutorList, nil
}

func searchCacheKey(filter models.TutorFilter) string {
	subject := "all"
	if filter.SubjectID != nil {
		subject = filter.SubjectID.String()
	}
	return fmt.Sprintf("%s%s:%d", constants.KeyTutorSearchBase, subject, filter.Limit)
}

// GetPricing returns a tutor's price list
func (uc *TutorUC) GetPricing(ctx context.Context, tutorID uuid.UUID) ([]models.TutorPricing, error) {
	exists, err := uc.repo.TutorExists(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, tutors.ErrTutorNotFound
	}
	return uc.repo.GetPricing(ctx, tutorID)
}

// ReplacePricing swaps the tutor's whole price list. Prices arrive as
// decimal strings and are stored in currency minor units.
func (uc *TutorUC) ReplacePricing(ctx context.Context, tutorID uuid.UUID, entries []models.PricingEntryRequest) ([]models.TutorPricing, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: at least one pricing entry is required", tutors.ErrValidation)
	}

	exists, err := uc.repo.TutorExists(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, tutors.ErrTutorNotFound
	}

	seen := make(map[int]bool, len(entries))
	rows := make([]models.TutorPricing, len(entries))
	for i, entry := range entries {
		if entry.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: entry %d has no duration", tutors.ErrValidation, i)
		}
		if seen[entry.DurationMinutes] {
			return nil, fmt.Errorf("%w: duplicate duration %d", tutors.ErrValidation, entry.DurationMinutes)
		}
		seen[entry.DurationMinutes] = true

		cents, err := utils.ParsePriceToCents(entry.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", tutors.ErrValidation, i, err)
		}
		if cents <= 0 {
			return nil, fmt.Errorf("%w: entry %d price must be positive", tutors.ErrValidation, i)
		}

		currency := entry.Currency
		if currency == "" {
			currency = uc.cfg.MercadoPago.DefaultCurrency
		}

		rows[i] = models.TutorPricing{
			ID:              uuid.New(),
			TutorID:         tutorID,
			DurationMinutes: entry.DurationMinutes,
			PriceCents:      cents,
			Currency:        currency,
		}
	}

	if err := uc.repo.ReplacePricing(ctx, tutorID, rows); err != nil {
		return nil, err
	}

	logger.Info("tutor pricing replaced",
		logger.String("tutor_id", tutorID.String()),
		logger.Int("entries", len(rows)))

	return uc.repo.GetPricing(ctx, tutorID)
}

// cacheGet loads a cached JSON value; a cold or broken cache is never an
// error
func (uc *TutorUC) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if uc.cache == nil {
		return false
	}
	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.Warn("failed to decode cached value", logger.Err(err), logger.String("key", key))
		return false
	}
	return true
}

func (uc *TutorUC) cacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, raw, ttl); err != nil {
		logger.Warn("failed to cache value", logger.Err(err), logger.String("key", key))
	}
}
