package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/payments"
)

// WebhookHandler receives asynchronous notifications from the payment
// provider
type WebhookHandler struct {
	paymentUC payments.PaymentUC
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(paymentUC payments.PaymentUC) *WebhookHandler {
	return &WebhookHandler{
		paymentUC: paymentUC,
	}
}

// HandleMercadoPago processes a provider notification. The response status
// is always 200: any non-200 would make the provider retry, and retries are
// handled by the guarded transition plus dead-letter events instead.
func (h *WebhookHandler) HandleMercadoPago(c echo.Context) error {
	var notification models.WebhookNotification
	if err := c.Bind(&notification); err != nil {
		logger.Warn("Malformed webhook payload", logger.Err(err))
		return c.JSON(http.StatusOK, map[string]interface{}{"error": "malformed payload"})
	}

	if err := h.paymentUC.HandleWebhook(c.Request().Context(), notification); err != nil {
		logger.Error("Webhook processing failed",
			logger.Err(err),
			logger.String("type", notification.Type),
			logger.String("notification_id", notification.Data.ID),
		)
		return c.JSON(http.StatusOK, map[string]interface{}{"error": "processing failed"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"received": true})
}
