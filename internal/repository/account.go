package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/vibe-gaming/verify/internal/domain"
)

type accountRepository struct {
	db *sqlx.DB
}

func newAccountRepository(db *sqlx.DB) *accountRepository {
	return &accountRepository{
		db: db,
	}
}

func (r *accountRepository) UpdatePasswordHash(ctx context.Context, email string, passwordHash string) error {
	const op = "repository.account.UpdatePasswordHash"

	const query = `UPDATE accounts SET password_hash = ? WHERE email = ?`

	res, err := r.db.ExecContext(ctx, query, passwordHash, email)
	if err != nil {
		return errors.Wrapf(err, "%s: update account failed", op)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "%s: get rows affected failed", op)
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}

type passwordResetRepository struct {
	db *sqlx.DB
}

func newPasswordResetRepository(db *sqlx.DB) *passwordResetRepository {
	return &passwordResetRepository{
		db: db,
	}
}

func (r *passwordResetRepository) Create(ctx context.Context, reset *domain.PasswordReset) error {
	const op = "repository.passwordReset.Create"

	const query = `
    INSERT INTO password_resets (id, email, user_agent, client_timestamp, created_at)
    VALUES (uuid_to_bin(:id), :email, :user_agent, :client_timestamp, :created_at)
    `

	if _, err := r.db.NamedExecContext(ctx, query, reset); err != nil {
		return errors.Wrapf(err, "%s: insert password reset failed", op)
	}

	return nil
}
