package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/tutorcito/tutorcito/internal/pkg/middleware"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/tutors"
	httpHandler "github.com/tutorcito/tutorcito/services/tutors/handler/http"
)

// Handler bundles the tutor HTTP handlers for route registration
type Handler struct {
	tutor *httpHandler.TutorHandler
	cfg   *models.Config
}

// NewHandler creates the tutors handler bundle
func NewHandler(tutorUC tutors.TutorUC, cfg *models.Config) *Handler {
	return &Handler{
		tutor: httpHandler.NewTutorHandler(tutorUC),
		cfg:   cfg,
	}
}

// RegisterRoutes registers the tutor routes. Discovery is public; pricing
// edits require authentication.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/subjects", h.tutor.ListSubjects)
	e.GET("/api/v1/tutors", h.tutor.SearchTutors)
	e.GET("/api/v1/tutors/:tutorID/pricing", h.tutor.GetPricing)

	g := e.Group("/api/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))
	g.POST("/tutors/:tutorID/pricing", h.tutor.ReplacePricing)
}
