package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/mercadopago"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/internal/utils"
	"github.com/tutorcito/tutorcito/services/payments"
)

// ChargeClass performs a direct card-token charge for a class
func (uc *PaymentUC) ChargeClass(ctx context.Context, studentID uuid.UUID, req *models.ChargeRequest) (*models.Transaction, error) {
	return uc.charge(ctx, studentID, models.PaymentTypeClass, req)
}

// ChargeSubscription performs a direct card-token charge for a sponsorship
// subscription
func (uc *PaymentUC) ChargeSubscription(ctx context.Context, studentID uuid.UUID, req *models.ChargeRequest) (*models.Transaction, error) {
	req.TutorID = nil
	req.ClassDurationMinutes = nil
	return uc.charge(ctx, studentID, models.PaymentTypeSubscription, req)
}

// charge persists a pending transaction, submits the card-token charge to
// the provider and applies the synchronously returned status through the
// same guarded transition the webhook uses.
func (uc *PaymentUC) charge(ctx context.Context, studentID uuid.UUID, paymentType models.PaymentType, req *models.ChargeRequest) (*models.Transaction, error) {
	if err := validateCharge(req); err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = uc.cfg.MercadoPago.DefaultCurrency
	}
	installments := req.Installments
	if installments <= 0 {
		installments = 1
	}

	externalRef := models.NewExternalReference(paymentType, studentID.String())

	tx := &models.Transaction{
		ExternalReference:    externalRef,
		PaymentType:          paymentType,
		Status:               models.TransactionStatusPending,
		AmountCents:          req.AmountCents,
		Currency:             currency,
		StudentID:            studentID,
		TutorID:              req.TutorID,
		ClassDurationMinutes: req.ClassDurationMinutes,
		Description:          req.Description,
	}
	if req.BookingID != nil {
		tx.Metadata = models.JSONMap{"booking_id": req.BookingID.String()}
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

	details, err := uc.provider.CreatePayment(ctx, &mercadopago.ChargePayload{
		Token:             req.CardToken,
		TransactionAmount: utils.CentsToFloat(req.AmountCents),
		Installments:      installments,
		Description:       req.Description,
		ExternalReference: externalRef,
		Payer:             mercadopago.ChargePayer{Email: req.PayerEmail},
	})
	if err != nil {
		return nil, err
	}

	updated, err := uc.applyTransition(ctx, tx, models.TransactionStatus(details.Status), &details.ID)
	if err != nil {
		if errors.Is(err, payments.ErrTransitionNotAllowed) {
			return tx, nil
		}
		return nil, fmt.Errorf("failed to record charge outcome: %w", err)
	}

	return updated, nil
}

// CancelPendingByStudent cancels every pending transaction of a student;
// consumed by account deletion
func (uc *PaymentUC) CancelPendingByStudent(ctx context.Context, studentID uuid.UUID) error {
	if err := uc.repo.CancelPendingByStudent(ctx, studentID); err != nil {
		return fmt.Errorf("failed to cancel pending transactions: %w", err)
	}
	return nil
}

// GetPaymentStatus proxies the provider's payment state by id
func (uc *PaymentUC) GetPaymentStatus(ctx context.Context, paymentID string) (*models.PaymentDetails, error) {
	if paymentID == "" {
		return nil, fmt.Errorf("%w: payment id is required", payments.ErrValidation)
	}
	return uc.provider.GetPayment(ctx, paymentID)
}

func validateCharge(req *models.ChargeRequest) error {
	if req.CardToken == "" {
		return fmt.Errorf("%w: card token is required", payments.ErrValidation)
	}
	if req.AmountCents <= 0 {
		return fmt.Errorf("%w: amount must be positive", payments.ErrValidation)
	}
	if req.PayerEmail == "" {
		return fmt.Errorf("%w: payer email is required", payments.ErrValidation)
	}
	return nil
}
