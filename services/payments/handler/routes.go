package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/tutorcito/tutorcito/internal/pkg/middleware"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/payments"
	httpHandler "github.com/tutorcito/tutorcito/services/payments/handler/http"
)

// Handler bundles the payment HTTP handlers for route registration
type Handler struct {
	payment *httpHandler.PaymentHandler
	webhook *httpHandler.WebhookHandler
	cfg     *models.Config
}

// NewHandler creates the payments handler bundle
func NewHandler(paymentUC payments.PaymentUC, cfg *models.Config) *Handler {
	return &Handler{
		payment: httpHandler.NewPaymentHandler(paymentUC),
		webhook: httpHandler.NewWebhookHandler(paymentUC),
		cfg:     cfg,
	}
}

// RegisterRoutes registers the payment routes. The webhook stays outside
// the authenticated group: the provider calls it server-to-server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/webhooks/mercadopago", h.webhook.HandleMercadoPago)

	g := e.Group("/api/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))
	g.POST("/checkout/preferences", h.payment.CreatePreference)
	g.POST("/checkout/reconcile", h.payment.Reconcile)
	g.GET("/payments/status/:paymentID", h.payment.GetPaymentStatus)
	g.POST("/payments/class", h.payment.ChargeClass)
	g.POST("/payments/subscription", h.payment.ChargeSubscription)
}
