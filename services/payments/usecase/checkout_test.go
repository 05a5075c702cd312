package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tutorcito/tutorcito/internal/pkg/mercadopago"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/payments"
	"github.com/tutorcito/tutorcito/services/payments/mocks"
)

func TestCreatePreference_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockProvider := mocks.NewMockProviderGW(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mockProvider, mocks.NewMockEventsGW(ctrl), nil, mocks.NewMockBookingGW(ctrl), nil)

	studentID := uuid.New()
	req := &models.PreferenceRequest{
		Items: []models.PreferenceItem{
			{Title: "Clase de Matemática", Quantity: 1, UnitPrice: 5000.50},
		},
		Payer:     models.PreferencePayer{Email: "student@example.com"},
		StudentID: studentID,
	}

	mockProvider.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload *mercadopago.PreferencePayload) (*mercadopago.PreferenceResult, error) {
			assert.Equal(t, "approved", payload.AutoReturn)
			assert.Equal(t, "https://api.tutorcito.app/api/v1/webhooks/mercadopago", payload.NotificationURL)
			assert.True(t, payload.Expires)
			assert.NotEmpty(t, payload.ExternalReference)
			assert.Equal(t, "ARS", payload.Items[0].CurrencyID)
			assert.Equal(t, 12, payload.PaymentMethods.Installments)

			from, err := time.Parse(time.RFC3339, payload.ExpirationDateFrom)
			assert.NoError(t, err)
			to, err := time.Parse(time.RFC3339, payload.ExpirationDateTo)
			assert.NoError(t, err)
			assert.Equal(t, 24*time.Hour, to.Sub(from))

			return &mercadopago.PreferenceResult{
				ID:               "pref-1",
				InitPoint:        "https://mp.example.com/init",
				SandboxInitPoint: "https://mp.example.com/sandbox",
			}, nil
		})
	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
			assert.Equal(t, models.TransactionStatusPending, tx.Status)
			assert.Equal(t, models.PaymentTypeClass, tx.PaymentType)
			assert.Equal(t, int64(500050), tx.AmountCents)
			assert.Equal(t, studentID, tx.StudentID)
			assert.Equal(t, "pref-1", tx.Metadata["preference_id"])
			return nil
		})

	resp, err := uc.CreatePreference(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "pref-1", resp.ID)
	assert.Equal(t, "https://mp.example.com/init", resp.InitPoint)
	assert.Equal(t, "https://tutorcito.app/checkout/success", resp.BackURLs.Success)
	assert.Equal(t, "https://tutorcito.app/checkout/failure", resp.BackURLs.Failure)
	assert.Equal(t, "https://tutorcito.app/checkout/pending", resp.BackURLs.Pending)
}

func TestCreatePreference_ForwardsPaymentMethodOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockProvider := mocks.NewMockProviderGW(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mockProvider, mocks.NewMockEventsGW(ctrl), nil, mocks.NewMockBookingGW(ctrl), nil)

	req := &models.PreferenceRequest{
		Items: []models.PreferenceItem{
			{Title: "Clase de Química", Quantity: 1, UnitPrice: 4000},
		},
		StudentID: uuid.New(),
		PaymentMethods: &models.PreferencePaymentMethods{
			Installments:         3,
			ExcludedPaymentTypes: []string{"ticket", "atm"},
		},
	}

	mockProvider.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload *mercadopago.PreferencePayload) (*mercadopago.PreferenceResult, error) {
			assert.Equal(t, 3, payload.PaymentMethods.Installments)
			assert.Len(t, payload.PaymentMethods.ExcludedPaymentTypes, 2)
			assert.Equal(t, "ticket", payload.PaymentMethods.ExcludedPaymentTypes[0].ID)
			assert.Equal(t, "atm", payload.PaymentMethods.ExcludedPaymentTypes[1].ID)
			return &mercadopago.PreferenceResult{ID: "pref-3"}, nil
		})
	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.CreatePreference(context.Background(), req)

	assert.NoError(t, err)
}

func TestCreatePreference_LinksBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPaymentRepo(ctrl)
	mockProvider := mocks.NewMockProviderGW(ctrl)
	mockBookings := mocks.NewMockBookingGW(ctrl)

	uc := NewPaymentUC(testConfig(), mockRepo, mockProvider, mocks.NewMockEventsGW(ctrl), nil, mockBookings, nil)

	bookingID := uuid.New()
	req := &models.PreferenceRequest{
		Items: []models.PreferenceItem{
			{Title: "Clase de Física", Quantity: 1, UnitPrice: 3000},
		},
		StudentID: uuid.New(),
		BookingID: &bookingID,
	}

	mockProvider.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).
		Return(&mercadopago.PreferenceResult{ID: "pref-2"}, nil)
	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
			assert.Equal(t, bookingID.String(), tx.Metadata["booking_id"])
			return nil
		})
	mockBookings.EXPECT().AttachTransaction(gomock.Any(), bookingID, gomock.Any()).Return(nil)

	_, err := uc.CreatePreference(context.Background(), req)

	assert.NoError(t, err)
}

func TestCreatePreference_EmptyItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the provider must never be called for an invalid cart
	uc := NewPaymentUC(testConfig(), mocks.NewMockPaymentRepo(ctrl), mocks.NewMockProviderGW(ctrl), mocks.NewMockEventsGW(ctrl), nil, nil, nil)

	_, err := uc.CreatePreference(context.Background(), &models.PreferenceRequest{
		StudentID: uuid.New(),
	})

	assert.ErrorIs(t, err, payments.ErrValidation)
}

func TestCreatePreference_InvalidItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewPaymentUC(testConfig(), mocks.NewMockPaymentRepo(ctrl), mocks.NewMockProviderGW(ctrl), mocks.NewMockEventsGW(ctrl), nil, nil, nil)

	tests := []struct {
		name string
		item models.PreferenceItem
	}{
		{"missing title", models.PreferenceItem{Quantity: 1, UnitPrice: 100}},
		{"zero quantity", models.PreferenceItem{Title: "Clase", UnitPrice: 100}},
		{"zero price", models.PreferenceItem{Title: "Clase", Quantity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreatePreference(context.Background(), &models.PreferenceRequest{
				Items:     []models.PreferenceItem{tt.item},
				StudentID: uuid.New(),
			})
			assert.ErrorIs(t, err, payments.ErrValidation)
		})
	}
}

func TestCreatePreference_UnknownPaymentType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewPaymentUC(testConfig(), mocks.NewMockPaymentRepo(ctrl), mocks.NewMockProviderGW(ctrl), mocks.NewMockEventsGW(ctrl), nil, nil, nil)

	_, err := uc.CreatePreference(context.Background(), &models.PreferenceRequest{
		Items: []models.PreferenceItem{
			{Title: "Clase", Quantity: 1, UnitPrice: 100},
		},
		PaymentType: "donation",
		StudentID:   uuid.New(),
	})

	assert.ErrorIs(t, err, payments.ErrValidation)
}
