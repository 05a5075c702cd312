package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/mercadopago"
	"github.com/tutorcito/tutorcito/internal/pkg/middleware"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/internal/utils"
	"github.com/tutorcito/tutorcito/services/payments"
)

// PaymentHandler handles HTTP requests for checkout and payment operations
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// CreatePreference handles checkout preference creation requests
func (h *PaymentHandler) CreatePreference(c echo.Context) error {
	var req models.PreferenceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	studentID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	req.StudentID = studentID

	resp, err := h.paymentUC.CreatePreference(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create checkout preference")
	}

	return c.JSON(http.StatusOK, resp)
}

// Reconcile handles the success-page reconciliation callback
func (h *PaymentHandler) Reconcile(c echo.Context) error {
	var req models.ReconcileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	// The success page forwards the provider's redirect parameters in the
	// query string; Bind only picks those up on GET/DELETE, so bind them
	// explicitly on this POST route
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	studentID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	resp, err := h.paymentUC.Reconcile(c.Request().Context(), studentID, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to reconcile payment")
	}

	return c.JSON(http.StatusOK, resp)
}

// GetPaymentStatus handles payment status lookups against the provider
func (h *PaymentHandler) GetPaymentStatus(c echo.Context) error {
	paymentID := c.Param("paymentID")
	if paymentID == "" {
		return utils.BadRequestResponse(c, "Payment id is required")
	}

	details, err := h.paymentUC.GetPaymentStatus(c.Request().Context(), paymentID)
	if err != nil {
		return h.mapError(c, err, "Failed to fetch payment status")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"id":            details.ID,
		"status":        details.Status,
		"status_detail": details.StatusDetail,
	})
}

// ChargeClass handles direct card-token charges for classes
func (h *PaymentHandler) ChargeClass(c echo.Context) error {
	return h.charge(c, h.paymentUC.ChargeClass)
}

// ChargeSubscription handles direct card-token charges for subscriptions
func (h *PaymentHandler) ChargeSubscription(c echo.Context) error {
	return h.charge(c, h.paymentUC.ChargeSubscription)
}

type chargeFunc func(ctx context.Context, studentID uuid.UUID, req *models.ChargeRequest) (*models.Transaction, error)

func (h *PaymentHandler) charge(c echo.Context, fn chargeFunc) error {
	var req models.ChargeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	studentID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tx, err := fn(c.Request().Context(), studentID, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to process charge")
	}

	return c.JSON(http.StatusCreated, tx)
}

// mapError translates usecase errors into HTTP responses: caller mistakes
// and provider rejections surface as 400, missing records as 404,
// everything else as 500.
func (h *PaymentHandler) mapError(c echo.Context, err error, fallback string) error {
	if errors.Is(err, payments.ErrValidation) {
		return utils.BadRequestResponse(c, err.Error())
	}

	var provErr *mercadopago.ProviderError
	if errors.As(err, &provErr) {
		detail := provErr.Description
		if detail == "" {
			detail = provErr.Message
		}
		return utils.ErrorResponseWithDetails(c, http.StatusBadRequest, "Payment provider rejected the request", detail)
	}

	if errors.Is(err, payments.ErrTransactionNotFound) {
		return utils.NotFoundResponse(c, "Transaction not found")
	}

	logger.Error(fallback, logger.Err(err), logger.String("path", c.Request().URL.Path))
	return utils.InternalServerErrorResponse(c, fallback)
}
