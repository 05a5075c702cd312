package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/mercadopago"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/internal/utils"
	"github.com/tutorcito/tutorcito/services/payments"
)

// preferenceExpiry is the window during which a checkout preference stays
// payable
const preferenceExpiry = 24 * time.Hour

// CreatePreference builds a provider checkout preference from the submitted
// cart and persists the pending transaction correlated with it. The caller
// is redirected to the returned init point.
func (uc *PaymentUC) CreatePreference(ctx context.Context, req *models.PreferenceRequest) (*models.PreferenceResponse, error) {
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}

	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = models.PaymentTypeClass
	}
	if !paymentType.Valid() {
		return nil, fmt.Errorf("%w: unknown payment type %q", payments.ErrValidation, req.PaymentType)
	}

	externalRef := req.ExternalReference
	if externalRef == "" {
		externalRef = models.NewExternalReference(paymentType, req.StudentID.String())
	}

	items := make([]models.PreferenceItem, len(req.Items))
	var amountCents int64
	for i, item := range req.Items {
		if item.CurrencyID == "" {
			item.CurrencyID = uc.cfg.MercadoPago.DefaultCurrency
		}
		items[i] = item
		amountCents += int64(item.Quantity) * utils.FloatToCents(item.UnitPrice)
	}

	installments := uc.cfg.MercadoPago.DefaultInstallments
	var excludedTypes []string
	if req.PaymentMethods != nil {
		if req.PaymentMethods.Installments > 0 {
			installments = req.PaymentMethods.Installments
		}
		excludedTypes = req.PaymentMethods.ExcludedPaymentTypes
	}

	backURLs := uc.backURLs()
	expirationFrom := time.Now().UTC()
	expirationTo := expirationFrom.Add(preferenceExpiry)

	payload := &mercadopago.PreferencePayload{
		Items:               items,
		Payer:               req.Payer,
		BackURLs:            mercadopago.BackURLs(backURLs),
		AutoReturn:          "approved",
		NotificationURL:     uc.cfg.App.APIBaseURL + "/api/v1/webhooks/mercadopago",
		ExternalReference:   externalRef,
		StatementDescriptor: req.StatementDescriptor,
		Expires:             true,
		ExpirationDateFrom:  expirationFrom.Format(time.RFC3339),
		ExpirationDateTo:    expirationTo.Format(time.RFC3339),
		PaymentMethods: &mercadopago.PaymentMethods{
			Installments:         installments,
			ExcludedPaymentTypes: mercadopago.ExcludePaymentTypes(excludedTypes...),
		},
		Metadata:            req.Metadata,
	}

	result, err := uc.provider.CreatePreference(ctx, payload)
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		ExternalReference:    externalRef,
		PaymentType:          paymentType,
		Status:               models.TransactionStatusPending,
		AmountCents:          amountCents,
		Currency:             items[0].CurrencyID,
		StudentID:            req.StudentID,
		TutorID:              req.TutorID,
		ClassDurationMinutes: req.ClassDurationMinutes,
		Description:          items[0].Title,
		Metadata: models.JSONMap{
			"preference_id": result.ID,
		},
	}
	if req.BookingID != nil {
		tx.Metadata["booking_id"] = req.BookingID.String()
	}
	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to persist pending transaction: %w", err)
	}

	if req.BookingID != nil {
		if err := uc.bookings.AttachTransaction(ctx, *req.BookingID, tx.ID); err != nil {
			logger.Warn("failed to link booking to transaction",
				logger.Err(err),
				logger.String("booking_id", req.BookingID.String()),
				logger.String("transaction_id", tx.ID.String()))
		}
	}

	return &models.PreferenceResponse{
		ID:               result.ID,
		InitPoint:        result.InitPoint,
		SandboxInitPoint: result.SandboxInitPoint,
		BackURLs:         backURLs,
	}, nil
}

func (uc *PaymentUC) backURLs() models.BackURLs {
	base := uc.cfg.App.BaseURL
	return models.BackURLs{
		Success: base + "/checkout/success",
		Failure: base + "/checkout/failure",
		Pending: base + "/checkout/pending",
	}
}

func validateItems(items []models.PreferenceItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: items are required", payments.ErrValidation)
	}
	for i, item := range items {
		if item.Title == "" {
			return fmt.Errorf("%w: item %d is missing a title", payments.ErrValidation, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d has no quantity", payments.ErrValidation, i)
		}
		if item.UnitPrice <= 0 {
			return fmt.Errorf("%w: item %d has no unit price", payments.ErrValidation, i)
		}
	}
	return nil
}
