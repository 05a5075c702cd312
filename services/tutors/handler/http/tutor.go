package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/middleware"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/internal/utils"
	"github.com/tutorcito/tutorcito/services/tutors"
)

// TutorHandler handles HTTP requests for tutor discovery and pricing
type TutorHandler struct {
	tutorUC tutors.TutorUC
}

// NewTutorHandler creates a new tutor handler
func NewTutorHandler(tutorUC tutors.TutorUC) *TutorHandler {
	return &TutorHandler{
		tutorUC: tutorUC,
	}
}

// ListSubjects returns the subject catalog
func (h *TutorHandler) ListSubjects(c echo.Context) error {
	subjects, err := h.tutorUC.ListSubjects(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list subjects", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list subjects")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Subjects retrieved successfully", subjects)
}

// SearchTutors returns the tutor discovery listing, optionally filtered by
// subject
func (h *TutorHandler) SearchTutors(c echo.Context) error {
	var filter models.TutorFilter

	if raw := c.QueryParam("subject_id"); raw != "" {
		subjectID, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid subject_id")
		}
		filter.SubjectID = &subjectID
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
		filter.Limit = limit
	}

	tutorList, err := h.tutorUC.SearchTutors(c.Request().Context(), filter)
	if err != nil {
		logger.Error("Failed to search tutors", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to search tutors")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Tutors retrieved successfully", tutorList)
}

// GetPricing returns a tutor's price list
func (h *TutorHandler) GetPricing(c echo.Context) error {
	tutorID, err := uuid.Parse(c.Param("tutorID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tutor id")
	}

	pricing, err := h.tutorUC.GetPricing(c.Request().Context(), tutorID)
	if err != nil {
		if errors.Is(err, tutors.ErrTutorNotFound) {
			return utils.NotFoundResponse(c, "Tutor not found")
		}
		logger.Error("Failed to get pricing", logger.Err(err), logger.String("tutor_id", tutorID.String()))
		return utils.InternalServerErrorResponse(c, "Failed to get pricing")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pricing retrieved successfully", pricing)
}

// ReplacePricing replaces the price list of the authenticated tutor
func (h *TutorHandler) ReplacePricing(c echo.Context) error {
	tutorID, err := uuid.Parse(c.Param("tutorID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid tutor id")
	}

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if userID != tutorID {
		return utils.ForbiddenResponse(c, "Cannot edit another tutor's pricing")
	}

	var entries []models.PricingEntryRequest
	if err := c.Bind(&entries); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	pricing, err := h.tutorUC.ReplacePricing(c.Request().Context(), tutorID, entries)
	if err != nil {
		switch {
		case errors.Is(err, tutors.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, tutors.ErrTutorNotFound):
			return utils.NotFoundResponse(c, "Tutor not found")
		default:
			logger.Error("Failed to replace pricing", logger.Err(err), logger.String("tutor_id", tutorID.String()))
			return utils.InternalServerErrorResponse(c, "Failed to replace pricing")
		}
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pricing updated successfully", pricing)
}
