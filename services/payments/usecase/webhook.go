package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tutorcito/tutorcito/internal/pkg/constants"
	"github.com/tutorcito/tutorcito/internal/pkg/logger"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/payments"
)

// HandleWebhook applies an asynchronous provider notification. Errors are
// returned for logging only; the HTTP layer acknowledges 200 regardless so
// the provider never retries. Anything that cannot be applied is published
// as a dead-letter event instead of being lost silently.
func (uc *PaymentUC) HandleWebhook(ctx context.Context, notification models.WebhookNotification) error {
	switch notification.Type {
	case models.WebhookTypePayment:
		return uc.handlePaymentNotification(ctx, notification)
	case models.WebhookTypeSubscriptionPreapproval:
		// Preapproval plans are managed provider-side; nothing to apply yet
		logger.Info("Subscription preapproval notification acknowledged",
			logger.String("notification_id", notification.Data.ID),
		)
		return nil
	default:
		logger.Info("Ignoring webhook notification of unknown type",
			logger.String("type", notification.Type),
			logger.String("notification_id", notification.Data.ID),
		)
		return nil
	}
}

func (uc *PaymentUC) handlePaymentNotification(ctx context.Context, notification models.WebhookNotification) error {
	notificationID := notification.Data.ID
	if notificationID == "" {
		uc.deadLetter(ctx, notification, "notification is missing a payment id")
		return fmt.Errorf("payment notification without id")
	}

	details, err := uc.provider.GetPayment(ctx, notificationID)
	if err != nil {
		uc.deadLetter(ctx, notification, "failed to fetch payment from provider: "+err.Error())
		return fmt.Errorf("failed to fetch payment %s: %w", notificationID, err)
	}

	// The provider reuses the same payment id for every status-change
	// notification, so the dedup key carries the fetched status: identical
	// redeliveries are skipped, a later status for the same payment is not.
	// Replays that slip through are harmless thanks to the guarded
	// transition.
	if uc.cache != nil {
		key := constants.KeyWebhookSeenBase + notificationID + ":" + details.Status
		fresh, err := uc.cache.SetNX(ctx, key, "1", constants.TTLWebhookSeen)
		if err == nil && !fresh {
			logger.Info("Skipping already processed payment notification",
				logger.String("notification_id", notificationID),
				logger.String("status", details.Status),
			)
			return nil
		}
	}

	tx, err := uc.lookupTransaction(ctx, details)
	if err != nil {
		if errors.Is(err, payments.ErrTransactionNotFound) {
			logger.Warn("Payment notification matched no local transaction",
				logger.String("provider_payment_id", details.ID),
				logger.String("external_reference", details.ExternalReference),
			)
			uc.deadLetter(ctx, notification, "no matching transaction")
			return nil
		}
		uc.deadLetter(ctx, notification, "transaction lookup failed: "+err.Error())
		return err
	}

	newStatus := models.TransactionStatus(details.Status)
	_, err = uc.applyTransition(ctx, tx, newStatus, &details.ID)
	if err != nil {
		if errors.Is(err, payments.ErrTransitionNotAllowed) {
			logger.Info("Skipping status downgrade on terminal transaction",
				logger.String("transaction_id", tx.ID.String()),
				logger.String("current_status", string(tx.Status)),
				logger.String("notified_status", string(newStatus)),
			)
			return nil
		}
		uc.deadLetter(ctx, notification, "failed to update transaction: "+err.Error())
		return fmt.Errorf("failed to update transaction %s: %w", tx.ID, err)
	}

	return nil
}

// lookupTransaction locates the local transaction for a provider payment:
// first by the provider-assigned payment id, falling back to the external
// reference the provider echoes back
func (uc *PaymentUC) lookupTransaction(ctx context.Context, details *models.PaymentDetails) (*models.Transaction, error) {
	tx, err := uc.repo.GetTransactionByProviderPaymentID(ctx, details.ID)
	if err == nil {
		return tx, nil
	}
	if !errors.Is(err, payments.ErrTransactionNotFound) {
		return nil, err
	}

	if details.ExternalReference == "" {
		return nil, payments.ErrTransactionNotFound
	}
	return uc.repo.GetTransactionByExternalReference(ctx, details.ExternalReference)
}

func (uc *PaymentUC) deadLetter(ctx context.Context, notification models.WebhookNotification, reason string) {
	uc.events.PublishDeadLetter(ctx, models.DeadLetterEvent{
		NotificationType: notification.Type,
		NotificationID:   notification.Data.ID,
		Reason:           reason,
		Timestamp:        time.Now().UTC(),
	})
}
