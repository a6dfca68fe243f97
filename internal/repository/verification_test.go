package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibe-gaming/verify/internal/domain"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	return sqlx.NewDb(mockDB, "mysql"), mock
}

func TestVerificationRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newVerificationRepository(db)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	record := &domain.VerificationRecord{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     "a@example.com",
		Code:      "123456",
		ExpiresAt: now.Add(30 * time.Minute),
		CreatedAt: now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO verification_records")).
		WithArgs(sqlmock.AnyArg(), "a@example.com", "123456", record.ExpiresAt, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), record))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVerificationRepository_CreateNoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newVerificationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO verification_records")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Create(context.Background(), &domain.VerificationRecord{ID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrNoRowsAffected)
}

func TestVerificationRepository_ExistsValid(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newVerificationRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(")).
		WithArgs("a@example.com", "123456", now).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(")).
		WithArgs("a@example.com", "000000", now).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

	ok, err := repo.ExistsValid(context.Background(), "a@example.com", "123456", now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsValid(context.Background(), "a@example.com", "000000", now)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVerificationRepository_ExistsValidDriverError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newVerificationRepository(db)
	boom := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(")).WillReturnError(boom)

	_, err := repo.ExistsValid(context.Background(), "a@example.com", "123456", time.Now())
	assert.ErrorIs(t, err, boom)
}

func TestVerificationRepository_GetAllEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newVerificationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM verification_records")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "code", "expires_at", "created_at"}))

	records, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestVerificationRepository_DeleteByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newVerificationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM verification_records WHERE email = ?")).
		WithArgs("a@example.com").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeleteByEmail(context.Background(), "a@example.com"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_UpdatePasswordHashNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newAccountRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE accounts SET password_hash = ? WHERE email = ?")).
		WithArgs("hash", "nobody@example.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePasswordHash(context.Background(), "nobody@example.com", "hash")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPasswordResetRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newPasswordResetRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO password_resets")).
		WithArgs(sqlmock.AnyArg(), "a@example.com", "test-agent", "2026-01-02T03:04:05Z", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &domain.PasswordReset{
		ID:              uuid.New(),
		Email:           "a@example.com",
		UserAgent:       "test-agent",
		ClientTimestamp: "2026-01-02T03:04:05Z",
		CreatedAt:       time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
