package repository

import (
	"context"
	"time"

	"github.com/vibe-gaming/verify/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Verifications  Verifications
	Accounts       Accounts
	PasswordResets PasswordResets
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Verifications:  newVerificationRepository(db),
		Accounts:       newAccountRepository(db),
		PasswordResets: newPasswordResetRepository(db),
	}
}

type Verifications interface {
	Create(ctx context.Context, record *domain.VerificationRecord) error
	// ExistsValid reports whether any record matches email and code with expires_at after now.
	ExistsValid(ctx context.Context, email string, code string, now time.Time) (bool, error)
	GetAll(ctx context.Context) ([]domain.VerificationRecord, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type Accounts interface {
	UpdatePasswordHash(ctx context.Context, email string, passwordHash string) error
}

type PasswordResets interface {
	Create(ctx context.Context, reset *domain.PasswordReset) error
}
