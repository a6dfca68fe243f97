package domain

import (
	"time"

	"github.com/google/uuid"
)

// VerificationRecord is one issued code. A new record is written per request.
type VerificationRecord struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// IsValidAt reports whether the record can still be used at now.
func (r *VerificationRecord) IsValidAt(now time.Time) bool {
	return now.Before(r.ExpiresAt)
}
