package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/payments"
)

// Reconcile applies the success-page redirect parameters to the matching
// local transaction. The provider is inconsistent about which parameters it
// attaches, so the lookup is attempted in order of reliability: external
// reference, provider payment id (either alias), then the caller's most
// recent pending class transaction. Reaching the success page at all is
// treated as weak evidence of approval when no status parameter arrived.
func (uc *PaymentUC) Reconcile(ctx context.Context, studentID uuid.UUID, req *models.ReconcileRequest) (*models.ReconcileResponse, error) {
	paymentID := req.PaymentID
	if paymentID == "" {
		paymentID = req.CollectionID
	}

	status := models.TransactionStatus(req.Status)
	if status == "" {
		status = models.TransactionStatus(req.CollectionStatus)
	}
	if status == "" {
		status = models.TransactionStatusApproved
	}

	tx, matchedBy, err := uc.findForReconcile(ctx, studentID, req.ExternalReference, paymentID)
	if err != nil {
		if errors.Is(err, payments.ErrTransactionNotFound) {
			// Degrade gracefully: the page still reports success, just
			// without transaction enrichment
			logger.Warn("Success-page reconcile matched no transaction",
				logger.String("student_id", studentID.String()),
				logger.String("external_reference", req.ExternalReference),
				logger.String("payment_id", paymentID),
			)
			return &models.ReconcileResponse{Reconciled: false}, nil
		}
		return nil, err
	}

	var providerPaymentID *string
	if paymentID != "" {
		providerPaymentID = &paymentID
	}

	updated, err := uc.applyTransition(ctx, tx, status, providerPaymentID)
	if err != nil {
		if errors.Is(err, payments.ErrTransitionNotAllowed) {
			// The row already reached a different terminal state, most
			// likely via the webhook; report it as-is
			return &models.ReconcileResponse{Reconciled: true, MatchedBy: matchedBy, Transaction: tx}, nil
		}
		return nil, fmt.Errorf("failed to reconcile transaction %s: %w", tx.ID, err)
	}

	return &models.ReconcileResponse{Reconciled: true, MatchedBy: matchedBy, Transaction: updated}, nil
}

func (uc *PaymentUC) findForReconcile(ctx context.Context, studentID uuid.UUID, externalRef, paymentID string) (*models.Transaction, string, error) {
	if externalRef != "" {
		tx, err := uc.repo.GetTransactionByExternalReference(ctx, externalRef)
		if err == nil {
			return tx, models.ReconcileMatchExternalReference, nil
		}
		if !errors.Is(err, payments.ErrTransactionNotFound) {
			return nil, "", err
		}
	}

	if paymentID != "" {
		tx, err := uc.repo.GetTransactionByProviderPaymentID(ctx, paymentID)
		if err == nil {
			return tx, models.ReconcileMatchPaymentID, nil
		}
		if !errors.Is(err, payments.ErrTransactionNotFound) {
			return nil, "", err
		}
	}

	tx, err := uc.repo.GetLatestPendingClassTransaction(ctx, studentID)
	if err != nil {
		return nil, "", err
	}
	return tx, models.ReconcileMatchLatestPending, nil
}
