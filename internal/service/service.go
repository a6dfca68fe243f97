package service

import (
	"context"
	"time"

	"github.com/vibe-gaming/verify/internal/config"
	"github.com/vibe-gaming/verify/internal/domain"
	"github.com/vibe-gaming/verify/internal/repository"
	"github.com/vibe-gaming/verify/pkg/hash"
	"github.com/vibe-gaming/verify/pkg/otp"
)

type Services struct {
	Verification Verification
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	OtpGenerator otp.Generator
	Mailer       CodeMailer
	Repos        *repository.Repositories
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

func NewServices(deps Deps) *Services {
	return &Services{
		Verification: newVerificationService(
			deps.Repos.Verifications,
			deps.Repos.Accounts,
			deps.Repos.PasswordResets,
			deps.Hasher,
			deps.OtpGenerator,
			deps.Mailer,
			deps.Config.Auth,
			deps.Now,
		),
	}
}

// CodeMailer delivers an issued code to its owner.
type CodeMailer interface {
	SendUserVerificationEmail(ctx context.Context, email string, verificationCode string) error
}

type Verification interface {
	RequestCode(ctx context.Context, email string) (string, error)
	VerifyCode(ctx context.Context, email string, code string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
	ListCredentials(ctx context.Context) ([]domain.VerificationRecord, error)
}

type ResetPasswordInput struct {
	Email     string
	Code      string
	Password  string
	UserAgent string
	Timestamp string
}
