package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tutorcito/tutorcito/internal/pkg/constants"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/payments"
	"github.com/tutorcito/tutorcito/services/payments/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{
			BaseURL:    "https://tutorcito.app",
			APIBaseURL: "https://api.tutorcito.app",
		},
		MercadoPago: models.MercadoPagoConfig{
			DefaultCurrency:     "ARS",
			DefaultInstallments: 12,
		},
	}
}

func paymentNotification(id string) models.WebhookNotification {
	n := models.WebhookNotification{Type: models.WebhookTypePayment}
	n.Data.ID = id
	return n
}

func TestHandleWebhook_ApprovedClassPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockProvider := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)
	mockProfiles := mocks.NewMockProfileGW(ctrl)
	mockBookings := mocks.NewMockBookingGW(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mockProvider, mockEvents, mockProfiles, mockBookings, nil)

	txID := uuid.New()
	studentID := uuid.New()
	pending := &models.Transaction{
		ID:          txID,
		PaymentType: models.PaymentTypeClass,
		Status:      models.TransactionStatusPending,
		StudentID:   studentID,
	}
	approved := &models.Transaction{
		ID:          txID,
		PaymentType: models.PaymentTypeClass,
		Status:      models.TransactionStatusApproved,
		StudentID:   studentID,
	}

	mockProvider.EXPECT().GetPayment(gomock.Any(), "mp-123").Return(&models.PaymentDetails{
		ID:                "mp-123",
		Status:            "approved",
		ExternalReference: "class-ref",
	}, nil)
	mockRepo.EXPECT().GetTransactionByProviderPaymentID(gomock.Any(), "mp-123").Return(pending, nil)
	mockRepo.EXPECT().ApplyStatusTransition(gomock.Any(), txID, models.TransactionStatusApproved, gomock.Any(), gomock.Any()).Return(approved, nil)
	mockBookings.EXPECT().ConfirmByTransaction(gomock.Any(), txID).Return(nil)
	mockEvents.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any())

	err := uc.HandleWebhook(context.Background(), paymentNotification("mp-123"))

	assert.NoError(t, err)
}

func TestHandleWebhook_ApprovedSubscriptionSponsorsProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockProvider := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)
	mockProfiles := mocks.NewMockProfileGW(ctrl)
	mockBookings := mocks.NewMockBookingGW(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mockProvider, mockEvents, mockProfiles, mockBookings, nil)

	txID := uuid.New()
	studentID := uuid.New()
	pending := &models.Transaction{
		ID:          txID,
		PaymentType: models.PaymentTypeSubscription,
		Status:      models.TransactionStatusPending,
		StudentID:   studentID,
	}
	approved := &models.Transaction{
		ID:          txID,
		PaymentType: models.PaymentTypeSubscription,
		Status:      models.TransactionStatusApproved,
		StudentID:   studentID,
	}

	mockProvider.EXPECT().GetPayment(gomock.Any(), "mp-456").Return(&models.PaymentDetails{
		ID:     "mp-456",
		Status: "approved",
	}, nil)
	mockRepo.EXPECT().GetTransactionByProviderPaymentID(gomock.Any(), "mp-456").Return(pending, nil)
	mockRepo.EXPECT().ApplyStatusTransition(gomock.Any(), txID, models.TransactionStatusApproved, gomock.Any(), gomock.Any()).Return(approved, nil)
	mockProfiles.EXPECT().SetSponsored(gomock.Any(), studentID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, until *time.Time) error {
			assert.NotNil(t, until)
			assert.True(t, until.After(time.Now().Add(29*24*time.Hour)))
			return nil
		})
	mockEvents.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any())

	err := uc.HandleWebhook(context.Background(), paymentNotification("mp-456"))

	assert.NoError(t, err)
}

func TestHandleWebhook_MissingIDDeadLetters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockProvider := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mockProvider, mockEvents, nil, nil, nil)

	mockEvents.EXPECT().PublishDeadLetter(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event models.DeadLetterEvent) {
			assert.Equal(t, models.WebhookTypePayment, event.NotificationType)
			assert.Contains(t, event.Reason, "missing")
		})

	err := uc.HandleWebhook(context.Background(), paymentNotification(""))

	assert.Error(t, err)
}

func TestHandleWebhook_ProviderFetchFailureDeadLetters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockProvider := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mockProvider, mockEvents, nil, nil, nil)

	mockProvider.EXPECT().GetPayment(gomock.Any(), "mp-789").Return(nil, errors.New("provider down"))
	mockEvents.EXPECT().PublishDeadLetter(gomock.Any(), gomock.Any())

	err := uc.HandleWebhook(context.Background(), paymentNotification("mp-789"))

	assert.Error(t, err)
}

func TestHandleWebhook_NoMatchingTransactionDeadLettersWithoutError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockProvider := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mockProvider, mockEvents, nil, nil, nil)

	mockProvider.EXPECT().GetPayment(gomock.Any(), "mp-000").Return(&models.PaymentDetails{
		ID:                "mp-000",
		Status:            "approved",
		ExternalReference: "unknown-ref",
	}, nil)
	mockRepo.EXPECT().GetTransactionByProviderPaymentID(gomock.Any(), "mp-000").Return(nil, payments.ErrTransactionNotFound)
	mockRepo.EXPECT().GetTransactionByExternalReference(gomock.Any(), "unknown-ref").Return(nil, payments.ErrTransactionNotFound)
	mockEvents.EXPECT().PublishDeadLetter(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event models.DeadLetterEvent) {
			assert.Equal(t, "no matching transaction", event.Reason)
		})

	err := uc.HandleWebhook(context.Background(), paymentNotification("mp-000"))

	// the webhook must still acknowledge; a stray notification is recorded,
	// never an error and never a write
	assert.NoError(t, err)
}

func TestHandleWebhook_DedupAllowsLaterStatusForSamePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockProvider := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)
	mockBookings := mocks.NewMockBookingGW(ctrl)
	mockCache := mocks.NewMockDedupCache(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mockProvider, mockEvents, nil, mockBookings, mockCache)

	txID := uuid.New()
	studentID := uuid.New()
	pending := &models.Transaction{
		ID:          txID,
		PaymentType: models.PaymentTypeClass,
		Status:      models.TransactionStatusPending,
		StudentID:   studentID,
	}
	inProcess := &models.Transaction{
		ID:          txID,
		PaymentType: models.PaymentTypeClass,
		Status:      models.TransactionStatusInProcess,
		StudentID:   studentID,
	}
	approved := &models.Transaction{
		ID:          txID,
		PaymentType: models.PaymentTypeClass,
		Status:      models.TransactionStatusApproved,
		StudentID:   studentID,
	}

	// The provider reuses one payment id across status changes; the first
	// notification carries in_process, the second approved
	mockProvider.EXPECT().GetPayment(gomock.Any(), "mp-777").Return(&models.PaymentDetails{
		ID:     "mp-777",
		Status: "in_process",
	}, nil)
	mockProvider.EXPECT().GetPayment(gomock.Any(), "mp-777").Return(&models.PaymentDetails{
		ID:     "mp-777",
		Status: "approved",
	}, nil)

	mockCache.EXPECT().SetNX(gomock.Any(), constants.KeyWebhookSeenBase+"mp-777:in_process", gomock.Any(), constants.TTLWebhookSeen).Return(true, nil)
	mockCache.EXPECT().SetNX(gomock.Any(), constants.KeyWebhookSeenBase+"mp-777:approved", gomock.Any(), constants.TTLWebhookSeen).Return(true, nil)

	mockRepo.EXPECT().GetTransactionByProviderPaymentID(gomock.Any(), "mp-777").Return(pending, nil)
	mockRepo.EXPECT().GetTransactionByProviderPaymentID(gomock.Any(), "mp-777").Return(inProcess, nil)
	mockRepo.EXPECT().ApplyStatusTransition(gomock.Any(), txID, models.TransactionStatusInProcess, gomock.Any(), gomock.Any()).Return(inProcess, nil)
	mockRepo.EXPECT().ApplyStatusTransition(gomock.Any(), txID, models.TransactionStatusApproved, gomock.Any(), gomock.Any()).Return(approved, nil)
	mockBookings.EXPECT().ConfirmByTransaction(gomock.Any(), txID).Return(nil)
	mockEvents.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any())

	assert.NoError(t, uc.HandleWebhook(context.Background(), paymentNotification("mp-777")))
	assert.NoError(t, uc.HandleWebhook(context.Background(), paymentNotification("mp-777")))
}

func TestHandleWebhook_IdenticalRedeliveryIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProvider := mocks.NewMockProviderGW(ctrl)
	mockCache := mocks.NewMockDedupCache(ctrl)

	// No repo, events or booking expectations: a redelivery of an already
	// seen (payment, status) pair must stop at the cache
	uc := NewPaymentUC(testConfig(), mocks.NewMockPaymentRepo(ctrl), mockProvider, mocks.NewMockEventsGW(ctrl), nil, nil, mockCache)

	mockProvider.EXPECT().GetPayment(gomock.Any(), "mp-888").Return(&models.PaymentDetails{
		ID:     "mp-888",
		Status: "approved",
	}, nil)
	mockCache.EXPECT().SetNX(gomock.Any(), constants.KeyWebhookSeenBase+"mp-888:approved", gomock.Any(), constants.TTLWebhookSeen).Return(false, nil)

	err := uc.HandleWebhook(context.Background(), paymentNotification("mp-888"))

	assert.NoError(t, err)
}

func TestHandleWebhook_TerminalDowngradeIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockProvider := mocks.NewMockProviderGW(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mockProvider, mockEvents, nil, nil, nil)

	txID := uuid.New()
	approvedTx := &models.Transaction{
		ID:          txID,
		PaymentType: models.PaymentTypeClass,
		Status:      models.TransactionStatusApproved,
	}

	mockProvider.EXPECT().GetPayment(gomock.Any(), "mp-111").Return(&models.PaymentDetails{
		ID:     "mp-111",
		Status: "rejected",
	}, nil)
	mockRepo.EXPECT().GetTransactionByProviderPaymentID(gomock.Any(), "mp-111").Return(approvedTx, nil)
	mockRepo.EXPECT().ApplyStatusTransition(gomock.Any(), txID, models.TransactionStatusRejected, gomock.Any(), gomock.Any()).
		Return(nil, payments.ErrTransitionNotAllowed)

	err := uc.HandleWebhook(context.Background(), paymentNotification("mp-111"))

	// a conflicting late notification is logged and swallowed, no dead letter
	assert.NoError(t, err)
}

func TestHandleWebhook_SubscriptionPreapprovalAcknowledged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewPaymentUC(testConfig(), mocks.NewMockPaymentRepo(ctrl), mocks.NewMockProviderGW(ctrl), mocks.NewMockEventsGW(ctrl), nil, nil, nil)

	n := models.WebhookNotification{Type: models.WebhookTypeSubscriptionPreapproval}
	n.Data.ID = "preapproval-1"

	err := uc.HandleWebhook(context.Background(), n)

	assert.NoError(t, err)
}

func TestHandleWebhook_UnknownTypeIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewPaymentUC(testConfig(), mocks.NewMockPaymentRepo(ctrl), mocks.NewMockProviderGW(ctrl), mocks.NewMockEventsGW(ctrl), nil, nil, nil)

	n := models.WebhookNotification{Type: "merchant_order"}
	n.Data.ID = "order-1"

	err := uc.HandleWebhook(context.Background(), n)

	assert.NoError(t, err)
}
