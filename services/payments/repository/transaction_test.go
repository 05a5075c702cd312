package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorcito/tutorcito/internal/pkg/models"
	"github.com/tutorcito/tutorcito/services/payments"
)

func setupPaymentRepoTest(t *testing.T) (*PostgresPaymentRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &PostgresPaymentRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func transactionRows(tx *models.Transaction) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "external_reference", "provider_payment_id", "payment_type", "status",
		"amount_cents", "currency", "student_id", "tutor_id", "class_duration_minutes",
		"description", "metadata", "paid_at", "created_at", "updated_at",
	}).AddRow(
		tx.ID, tx.ExternalReference, tx.ProviderPaymentID, tx.PaymentType, tx.Status,
		tx.AmountCents, tx.Currency, tx.StudentID, tx.TutorID, tx.ClassDurationMinutes,
		tx.Description, []byte("{}"), tx.PaidAt, tx.CreatedAt, tx.UpdatedAt,
	)
}

func TestCreateTransaction_AssignsIDAndDefaults(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx := &models.Transaction{
		ExternalReference: "class-ref-1",
		PaymentType:       models.PaymentTypeClass,
		AmountCents:       500000,
		Currency:          "ARS",
		StudentID:         uuid.New(),
	}

	err := repo.CreateTransaction(context.Background(), tx)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.Equal(t, models.TransactionStatusPending, tx.Status)
	assert.False(t, tx.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactionByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	tx, err := repo.GetTransactionByID(context.Background(), id)

	assert.Nil(t, tx)
	assert.ErrorIs(t, err, payments.ErrTransactionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTransactionByExternalReference_Success(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	expected := &models.Transaction{
		ID:                uuid.New(),
		ExternalReference: "class-ref-2",
		PaymentType:       models.PaymentTypeClass,
		Status:            models.TransactionStatusPending,
		AmountCents:       300000,
		Currency:          "ARS",
		StudentID:         uuid.New(),
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE external_reference").
		WithArgs("class-ref-2").
		WillReturnRows(transactionRows(expected))

	tx, err := repo.GetTransactionByExternalReference(context.Background(), "class-ref-2")

	assert.NoError(t, err)
	assert.Equal(t, expected.ID, tx.ID)
	assert.Equal(t, int64(300000), tx.AmountCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyStatusTransition_Success(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	id := uuid.New()
	providerID := "mp-1"
	now := time.Now()

	mock.ExpectExec("UPDATE transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated := &models.Transaction{
		ID:          id,
		Status:      models.TransactionStatusApproved,
		PaymentType: models.PaymentTypeClass,
		StudentID:   uuid.New(),
		PaidAt:      &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id").
		WithArgs(id).
		WillReturnRows(transactionRows(updated))

	tx, err := repo.ApplyStatusTransition(context.Background(), id, models.TransactionStatusApproved, &providerID, &now)

	assert.NoError(t, err)
	assert.Equal(t, models.TransactionStatusApproved, tx.Status)
	assert.NotNil(t, tx.PaidAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyStatusTransition_GuardBlocksTerminalDowngrade(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	id := uuid.New()
	now := time.Now()

	// the guarded update matches nothing because the row is terminal
	mock.ExpectExec("UPDATE transactions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	approved := &models.Transaction{
		ID:          id,
		Status:      models.TransactionStatusApproved,
		PaymentType: models.PaymentTypeClass,
		StudentID:   uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id").
		WithArgs(id).
		WillReturnRows(transactionRows(approved))

	tx, err := repo.ApplyStatusTransition(context.Background(), id, models.TransactionStatusRejected, nil, nil)

	assert.Nil(t, tx)
	assert.ErrorIs(t, err, payments.ErrTransitionNotAllowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyStatusTransition_MissingRow(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectExec("UPDATE transactions").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM transactions WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	tx, err := repo.ApplyStatusTransition(context.Background(), id, models.TransactionStatusApproved, nil, nil)

	assert.Nil(t, tx)
	assert.ErrorIs(t, err, payments.ErrTransactionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelPendingByStudent(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	studentID := uuid.New()

	mock.ExpectExec("UPDATE transactions").
		WithArgs(models.TransactionStatusCancelled, studentID, models.TransactionStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := repo.CancelPendingByStudent(context.Background(), studentID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
