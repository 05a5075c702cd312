package usecase

import (
	"context"
	"time"

	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
)

// sponsorshipPeriod is how long an approved subscription payment keeps a
// profile sponsored
const sponsorshipPeriod = 30 * 24 * time.Hour

// applyTransition performs the guarded status write and, when the row
// reaches a terminal state for the first time, fires the downstream side
// effects. Duplicate terminal notifications update nothing and fire
// nothing.
func (uc *PaymentUC) applyTransition(ctx context.Context, tx *models.Transaction, newStatus models.TransactionStatus, providerPaymentID *string) (*models.Transaction, error) {
	var paidAt *time.Time
	if newStatus == models.TransactionStatusApproved {
		now := time.Now().UTC()
		paidAt = &now
	}

	updated, err := uc.repo.ApplyStatusTransition(ctx, tx.ID, newStatus, providerPaymentID, paidAt)
	if err != nil {
		return nil, err
	}

	// Side effects run only on the first arrival at a terminal state
	if tx.Status.Terminal() || !newStatus.Terminal() {
		return updated, nil
	}

	uc.fireSideEffects(ctx, updated)
	return updated, nil
}

func (uc *PaymentUC) fireSideEffects(ctx context.Context, tx *models.Transaction) {
	if tx.Status == models.TransactionStatusApproved {
		switch tx.PaymentType {
		case models.PaymentTypeSubscription:
			until := time.Now().UTC().Add(sponsorshipPeriod)
			if err := uc.profiles.SetSponsored(ctx, tx.StudentID, &until); err != nil {
				logger.Error("Failed to set sponsored flag",
					logger.Err(err),
					logger.String("student_id", tx.StudentID.String()),
					logger.String("transaction_id", tx.ID.String()),
				)
			}
		case models.PaymentTypeClass:
			if err := uc.bookings.ConfirmByTransaction(ctx, tx.ID); err != nil {
				logger.Error("Failed to confirm booking for approved class payment",
					logger.Err(err),
					logger.String("transaction_id", tx.ID.String()),
				)
			}
		}
	}

	providerPaymentID := ""
	if tx.ProviderPaymentID != nil {
		providerPaymentID = *tx.ProviderPaymentID
	}

	uc.events.PublishPaymentEvent(ctx, models.PaymentEvent{
		TransactionID:     tx.ID,
		ExternalReference: tx.ExternalReference,
		ProviderPaymentID: providerPaymentID,
		PaymentType:       tx.PaymentType,
		Status:            tx.Status,
		AmountCents:       tx.AmountCents,
		StudentID:         tx.StudentID,
		Timestamp:         time.Now().UTC(),
	})
}
