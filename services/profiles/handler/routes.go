package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/tutorcito/tutorcito/internal/pkg/middleware"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/profiles"
	httpHandler "github.com/tutorcito/tutorcito/services/profiles/handler/http"
)

// Handler bundles the profile HTTP handlers for route registration
type Handler struct {
	profile *httpHandler.ProfileHandler
	cfg     *models.Config
}

// NewHandler creates the profiles handler bundle
func NewHandler(profileUC profiles.ProfileUC, cfg *models.Config) *Handler {
	return &Handler{
		profile: httpHandler.NewProfileHandler(profileUC),
		cfg:     cfg,
	}
}

// RegisterRoutes registers the profile routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/profiles/:id", h.profile.GetProfile)

	g := e.Group("/api/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))
	g.PUT("/profiles/:id", h.profile.UpdateProfile)
	g.POST("/accounts/delete", h.profile.DeleteAccount)
}
