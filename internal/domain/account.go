package domain

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// PasswordReset is the audit trail of a completed reset. It carries no password material.
type PasswordReset struct {
	ID              uuid.UUID `db:"id"`
	Email           string    `db:"email"`
	UserAgent       string    `db:"user_agent"`
	ClientTimestamp string    `db:"client_timestamp"`
	CreatedAt       time.Time `db:"created_at"`
}
