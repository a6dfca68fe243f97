package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/vibe-gaming/verify/internal/domain"
)

type verificationRepository struct {
	db *sqlx.DB
}

func newVerificationRepository(db *sqlx.DB) *verificationRepository {
	return &verificationRepository{
		db: db,
	}
}

func (r *verificationRepository) Create(ctx context.Context, record *domain.VerificationRecord) error {
	const op = "repository.verification.Create"

	const query = `
    INSERT INTO verification_records (id, email, code, expires_at, created_at)
    VALUES (uuid_to_bin(:id), :email, :code, :expires_at, :created_at)
    `

	res, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		return errors.Wrapf(err, "%s: insert verification record failed", op)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "%s: get rows affected failed", op)
	}

	if rows != 1 {
		return errors.Wrapf(domain.ErrNoRowsAffected, "%s: expected 1 row affected, got %d", op, rows)
	}

	return nil
}

func (r *verificationRepository) ExistsValid(ctx context.Context, email string, code string, now time.Time) (bool, error) {
	const op = "repository.verification.ExistsValid"

	const query = `
    SELECT EXISTS(
        SELECT 1 FROM verification_records
        WHERE email = ? AND code = ? AND expires_at > ?
    )
    `

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email, code, now); err != nil {
		return false, errors.Wrapf(err, "%s: select verification record failed", op)
	}

	return exists, nil
}

func (r *verificationRepository) GetAll(ctx context.Context) ([]domain.VerificationRecord, error) {
	const op = "repository.verification.GetAll"

	const query = `
    SELECT id, email, code, expires_at, created_at
    FROM verification_records
    ORDER BY created_at DESC
    `

	records := make([]domain.VerificationRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, errors.Wrapf(err, "%s: select verification records failed", op)
	}

	return records, nil
}

func (r *verificationRepository) DeleteByEmail(ctx context.Context, email string) error {
	const op = "repository.verification.DeleteByEmail"

	const query = `DELETE FROM verification_records WHERE email = ?`

	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		return errors.Wrapf(err, "%s: delete verification records failed", op)
	}

	return nil
}
