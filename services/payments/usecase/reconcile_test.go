package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/payments"
	"github.com/tutorcito/tutorcito/services/payments/mocks"
)

func TestReconcile_ByExternalReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)
	mockBookings := mocks.NewMockBookingGW(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mocks.NewMockProviderGW(ctrl), mockEvents, nil, mockBookings, nil)

	studentID := uuid.New()
	txID := uuid.New()
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

	mockRepo.EXPECT().GetTransactionByExternalReference(gomock.Any(), "class-ref-1").Return(pending, nil)
	mockRepo.EXPECT().ApplyStatusTransition(gomock.Any(), txID, models.TransactionStatusApproved, gomock.Any(), gomock.Any()).Return(approved, nil)
	mockBookings.EXPECT().ConfirmByTransaction(gomock.Any(), txID).Return(nil)
	mockEvents.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any())

	resp, err := uc.Reconcile(context.Background(), studentID, &models.ReconcileRequest{
		ExternalReference: "class-ref-1",
		PaymentID:         "mp-1",
		Status:            "approved",
	})

	assert.NoError(t, err)
	assert.True(t, resp.Reconciled)
	assert.Equal(t, models.ReconcileMatchExternalReference, resp.MatchedBy)
	assert.Equal(t, models.TransactionStatusApproved, resp.Transaction.Status)
}

func TestReconcile_CollectionAliasesAndDefaultStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)
	mockBookings := mocks.NewMockBookingGW(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mocks.NewMockProviderGW(ctrl), mockEvents, nil, mockBookings, nil)

	studentID := uuid.New()
	txID := uuid.New()
	pending := &models.Transaction{ID: txID, PaymentType: models.PaymentTypeClass, Status: models.TransactionStatusPending, StudentID: studentID}
	approved := &models.Transaction{ID: txID, PaymentType: models.PaymentTypeClass, Status: models.TransactionStatusApproved, StudentID: studentID}

	// only collection_id arrived and no status at all: the payment id alias
	// must be used and approval assumed
	mockRepo.EXPECT().GetTransactionByProviderPaymentID(gomock.Any(), "col-9").Return(pending, nil)
	mockRepo.EXPECT().ApplyStatusTransition(gomock.Any(), txID, models.TransactionStatusApproved, gomock.Any(), gomock.Any()).Return(approved, nil)
	mockBookings.EXPECT().ConfirmByTransaction(gomock.Any(), txID).Return(nil)
	mockEvents.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any())

	resp, err := uc.Reconcile(context.Background(), studentID, &models.ReconcileRequest{
		CollectionID: "col-9",
	})

	assert.NoError(t, err)
	assert.True(t, resp.Reconciled)
}

func TestReconcile_FallsBackToLatestPendingClass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockEvents := mocks.NewMockEventsGW(ctrl)
	mockBookings := mocks.NewMockBookingGW(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mocks.NewMockProviderGW(ctrl), mockEvents, nil, mockBookings, nil)

	studentID := uuid.New()
	txID := uuid.New()
	pending := &models.Transaction{ID: txID, PaymentType: models.PaymentTypeClass, Status: models.TransactionStatusPending, StudentID: studentID}
	approved := &models.Transaction{ID: txID, PaymentType: models.PaymentTypeClass, Status: models.TransactionStatusApproved, StudentID: studentID}

	mockRepo.EXPECT().GetLatestPendingClassTransaction(gomock.Any(), studentID).Return(pending, nil)
	mockRepo.EXPECT().ApplyStatusTransition(gomock.Any(), txID, models.TransactionStatusApproved, gomock.Any(), gomock.Any()).Return(approved, nil)
	mockBookings.EXPECT().ConfirmByTransaction(gomock.Any(), txID).Return(nil)
	mockEvents.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any())

	resp, err := uc.Reconcile(context.Background(), studentID, &models.ReconcileRequest{})

	assert.NoError(t, err)
	assert.True(t, resp.Reconciled)
	assert.Equal(t, models.ReconcileMatchLatestPending, resp.MatchedBy)
}

func TestReconcile_NothingFoundDegradesGracefully(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mocks.NewMockProviderGW(ctrl), mocks.NewMockEventsGW(ctrl), nil, nil, nil)

	studentID := uuid.New()

	mockRepo.EXPECT().GetTransactionByExternalReference(gomock.Any(), "gone-ref").Return(nil, payments.ErrTransactionNotFound)
	mockRepo.EXPECT().GetLatestPendingClassTransaction(gomock.Any(), studentID).Return(nil, payments.ErrTransactionNotFound)

	resp, err := uc.Reconcile(context.Background(), studentID, &models.ReconcileRequest{
		ExternalReference: "gone-ref",
	})

	assert.NoError(t, err)
	assert.False(t, resp.Reconciled)
	assert.Nil(t, resp.Transaction)
}

func TestReconcile_AlreadyTerminalReportsExistingRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mocks.NewMockProviderGW(ctrl), mocks.NewMockEventsGW(ctrl), nil, nil, nil)

	studentID := uuid.New()
	txID := uuid.New()
	rejected := &models.Transaction{ID: txID, PaymentType: models.PaymentTypeClass, Status: models.TransactionStatusRejected, StudentID: studentID}

	mockRepo.EXPECT().GetTransactionByExternalReference(gomock.Any(), "ref-2").Return(rejected, nil)
	mockRepo.EXPECT().ApplyStatusTransition(gomock.Any(), txID, models.TransactionStatusApproved, gomock.Any(), gomock.Any()).
		Return(nil, payments.ErrTransitionNotAllowed)

	resp, err := uc.Reconcile(context.Background(), studentID, &models.ReconcileRequest{
		ExternalReference: "ref-2",
		Status:            "approved",
	})

	assert.NoError(t, err)
	assert.True(t, resp.Reconciled)
	assert.Equal(t, models.TransactionStatusRejected, resp.Transaction.Status)
}
