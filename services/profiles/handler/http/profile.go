package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/middleware"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/internal/utils"
	"github.com/tutorcito/tutorcito/services/profiles"
)

// ProfileHandler handles HTTP requests for profile operations
type ProfileHandler struct {
	profileUC profiles.ProfileUC
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUC profiles.ProfileUC) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
	}
}

// GetProfile handles public profile retrieval
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid profile id")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return utils.NotFoundResponse(c, "Profile not found")
		}
		logger.Error("Failed to retrieve profile", logger.Err(err), logger.String("profile_id", id.String()))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfile handles profile updates; callers may only edit their own
// profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid profile id")
	}

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if userID != id {
		return utils.ForbiddenResponse(c, "Cannot edit another user's profile")
	}

	var req models.ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrContentFlagged):
			return utils.UnprocessableEntityResponse(c, "Submitted content was rejected by moderation")
		case errors.Is(err, profiles.ErrProfileNotFound):
			return utils.NotFoundResponse(c, "Profile not found")
		default:
			logger.Error("Failed to update profile", logger.Err(err), logger.String("profile_id", id.String()))
			return utils.InternalServerErrorResponse(c, "Failed to update profile")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", profile)
}

// DeleteAccount handles account deletion with the required confirmation
// text
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AccountDeleteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.profileUC.DeleteAccount(c.Request().Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, profiles.ErrConfirmationRequired):
			return utils.BadRequestResponse(c, "Confirmation text is required to delete the account")
		case errors.Is(err, profiles.ErrProfileNotFound):
			return utils.NotFoundResponse(c, "Profile not found")
		default:
			logger.Error("Failed to delete account", logger.Err(err), logger.String("user_id", userID.String()))
			return utils.InternalServerErrorResponse(c, "Failed to delete account")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account deleted", nil)
}
