package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/bookings"
	"github.com/tutorcito/tutorcito/services/bookings/mocks"
)

func TestCreateBooking_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(mockRepo)

	studentID := uuid.New()
	tutorID := uuid.New()
	subjectID := uuid.New()

	mockRepo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) error {
			assert.Equal(t, models.BookingStatusPendingPayment, b.Status)
			assert.Equal(t, studentID, b.StudentID)
			assert.NotEqual(t, uuid.Nil, b.ID)
			return nil
		})

	booking, err := uc.CreateBooking(context.Background(), studentID, &models.BookingRequest{
		TutorID:         tutorID,
		SubjectID:       subjectID,
		ScheduledAt:     time.Now().Add(48 * time.Hour),
		DurationMinutes: 60,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusPendingPayment, booking.Status)
}

func TestCreateBooking_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewBookingUC(mocks.NewMockBookingRepo(ctrl))

	studentID := uuid.New()
	tutorID := uuid.New()
	subjectID := uuid.New()
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name string
		req  *models.BookingRequest
	}{
		{"missing tutor", &models.BookingRequest{SubjectID: subjectID, ScheduledAt: future, DurationMinutes: 60}},
		{"self booking", &models.BookingRequest{TutorID: studentID, SubjectID: subjectID, ScheduledAt: future, DurationMinutes: 60}},
		{"missing subject", &models.BookingRequest{TutorID: tutorID, ScheduledAt: future, DurationMinutes: 60}},
		{"past schedule", &models.BookingRequest{TutorID: tutorID, SubjectID: subjectID, ScheduledAt: time.Now().Add(-time.Hour), DurationMinutes: 60}},
		{"zero duration", &models.BookingRequest{TutorID: tutorID, SubjectID: subjectID, ScheduledAt: future}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateBooking(context.Background(), studentID, tt.req)
			assert.ErrorIs(t, err, bookings.ErrValidation)
		})
	}
}

func TestCancelBooking_ByParticipant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(mockRepo)

	studentID := uuid.New()
	bookingID := uuid.New()

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).Return(&models.Booking{
		ID:        bookingID,
		StudentID: studentID,
		TutorID:   uuid.New(),
		Status:    models.BookingStatusConfirmed,
	}, nil)
	mockRepo.EXPECT().UpdateStatus(gomock.Any(), bookingID, models.BookingStatusCancelled).Return(nil)

	err := uc.CancelBooking(context.Background(), studentID, bookingID)

	assert.NoError(t, err)
}

func TestCancelBooking_StrangerSeesNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(mockRepo)

	bookingID := uuid.New()

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).Return(&models.Booking{
		ID:        bookingID,
		StudentID: uuid.New(),
		TutorID:   uuid.New(),
		Status:    models.BookingStatusConfirmed,
	}, nil)

	err := uc.CancelBooking(context.Background(), uuid.New(), bookingID)

	assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
}

func TestCancelBooking_AlreadyCancelledIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(mockRepo)

	studentID := uuid.New()
	bookingID := uuid.New()

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).Return(&models.Booking{
		ID:        bookingID,
		StudentID: studentID,
		TutorID:   uuid.New(),
		Status:    models.BookingStatusCancelled,
	}, nil)

	err := uc.CancelBooking(context.Background(), studentID, bookingID)

	assert.NoError(t, err)
}

func TestCancelBooking_CompletedIsNotCancellable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(mockRepo)

	studentID := uuid.New()
	bookingID := uuid.New()

	mockRepo.EXPECT().GetBookingByID(gomock.Any(), bookingID).Return(&models.Booking{
		ID:        bookingID,
		StudentID: studentID,
		TutorID:   uuid.New(),
		Status:    models.BookingStatusCompleted,
	}, nil)

	err := uc.CancelBooking(context.Background(), studentID, bookingID)

	assert.ErrorIs(t, err, bookings.ErrNotCancellable)
}

func TestConfirmByTransaction_NoLinkedBookingIsANoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(mockRepo)

	txID := uuid.New()
	mockRepo.EXPECT().ConfirmByTransaction(gomock.Any(), txID).Return(int64(0), nil)

	err := uc.ConfirmByTransaction(context.Background(), txID)

	assert.NoError(t, err)
}

func TestConfirmByTransaction_ConfirmsLinkedBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(mockRepo)

	txID := uuid.New()
	mockRepo.EXPECT().ConfirmByTransaction(gomock.Any(), txID).Return(int64(1), nil)

	err := uc.ConfirmByTransaction(context.Background(), txID)

	assert.NoError(t, err)
}

func TestCancelOpenByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBookingRepo(ctrl)
	uc := NewBookingUC(mockRepo)

	userID := uuid.New()
	mockRepo.EXPECT().CancelOpenByUser(gomock.Any(), userID).Return(int64(2), nil)

	err := uc.CancelOpenByUser(context.Background(), userID)

	assert.NoError(t, err)
}
