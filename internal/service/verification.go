package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vibe-gaming/verify/internal/config"
	"github.com/vibe-gaming/verify/internal/domain"
	"github.com/vibe-gaming/verify/internal/repository"
	"github.com/vibe-gaming/verify/pkg/hash"
	"github.com/vibe-gaming/verify/pkg/logger"
	"github.com/vibe-gaming/verify/pkg/otp"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MinPasswordLength = 8

type verificationService struct {
	verificationRepository  repository.Verifications
	accountRepository       repository.Accounts
	passwordResetRepository repository.PasswordResets
	hasher                  hash.PasswordHasher
	otpGenerator            otp.Generator
	mailer                  CodeMailer
	authConfig              config.AuthConfig
	now                     func() time.Time
}

func newVerificationService(
	verificationRepository repository.Verifications,
	accountRepository repository.Accounts,
	passwordResetRepository repository.PasswordResets,
	hasher hash.PasswordHasher,
	otpGenerator otp.Generator,
	mailer CodeMailer,
	authConfig config.AuthConfig,
	now func() time.Time,
) *verificationService {
	if now == nil {
		now = time.Now
	}
	return &verificationService{
		verificationRepository:  verificationRepository,
		accountRepository:       accountRepository,
		passwordResetRepository: passwordResetRepository,
		hasher:                  hasher,
		otpGenerator:            otpGenerator,
		mailer:                  mailer,
		authConfig:              authConfig,
		now:                     now,
	}
}

// RequestCode issues a new code for email, stores it and mails it.
// The code is returned for the caller's bookkeeping and must not be sent back over HTTP.
func (s *verificationService) RequestCode(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", &ValidationError{Field: "email", Message: "Email is required"}
	}

	code, err := s.otpGenerator.RandomCode(s.authConfig.VerificationCodeLength)
	if err != nil {
		return "", &UpstreamError{Op: "generate verification code", Err: err}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", &UpstreamError{Op: "generate verification id", Err: err}
	}

	now := s.now()
	record := &domain.VerificationRecord{
		ID:        id,
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(s.authConfig.VerificationCodeTTL),
		CreatedAt: now,
	}

	if err := s.verificationRepository.Create(ctx, record); err != nil {
		return "", &UpstreamError{Op: "store verification code", Err: err}
	}

	logger.Info("verification code stored", zap.String("email", email), zap.Time("expires_at", record.ExpiresAt))

	if err := s.mailer.SendUserVerificationEmail(ctx, email, code); err != nil {
		return "", &UpstreamError{Op: "send verification email", Err: err}
	}

	return code, nil
}

// VerifyCode succeeds while any unexpired record matches email and code.
// Records are left untouched, so the same code verifies repeatedly until it expires.
func (s *verificationService) VerifyCode(ctx context.Context, email string, code string) error {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)
	if email == "" {
		return &ValidationError{Field: "email", Message: "Email is required"}
	}
	if code == "" {
		return &ValidationError{Field: "code", Message: "Verification code is required"}
	}

	ok, err := s.verificationRepository.ExistsValid(ctx, email, code, s.now())
	if err != nil {
		return &UpstreamError{Op: "look up verification code", Err: err}
	}
	if !ok {
		return ErrInvalidCode
	}

	return nil
}

func (s *verificationService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if err := s.VerifyCode(ctx, input.Email, input.Code); err != nil {
		return err
	}
	email := strings.TrimSpace(input.Email)

	if utf8.RuneCountInString(input.Password) < MinPasswordLength {
		return &ValidationError{Field: "password", Message: "Password must be at least 8 characters long"}
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return &UpstreamError{Op: "hash password", Err: err}
	}

	if err := s.accountRepository.UpdatePasswordHash(ctx, email, passwordHash); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAccountNotFound
		}
		return &UpstreamError{Op: "update password", Err: err}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return &UpstreamError{Op: "generate password reset id", Err: err}
	}

	reset := &domain.PasswordReset{
		ID:              id,
		Email:           email,
		UserAgent:       input.UserAgent,
		ClientTimestamp: input.Timestamp,
		CreatedAt:       s.now(),
	}
	if err := s.passwordResetRepository.Create(ctx, reset); err != nil {
		logger.Warn("password reset audit not stored", zap.String("email", email), zap.Error(err))
	}

	// a code drives at most one reset
	if err := s.verificationRepository.DeleteByEmail(ctx, email); err != nil {
		return &UpstreamError{Op: "invalidate verification codes", Err: err}
	}

	logger.Info("password reset completed", zap.String("email", email))

	return nil
}

func (s *verificationService) ListCredentials(ctx context.Context) ([]domain.VerificationRecord, error) {
	records, err := s.verificationRepository.GetAll(ctx)
	if err != nil {
		return nil, &UpstreamError{Op: "list verification records", Err: err}
	}

	if records == nil {
		records = []domain.VerificationRecord{}
	}

	return records, nil
}
