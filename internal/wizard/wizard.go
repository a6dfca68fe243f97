// Package wizard drives the four-screen password recovery flow.
//
// A Session holds the captured email and code and only moves forward when
// the guard for the current screen passes and the backend confirms the step.
// Any failure leaves the session on the screen it was on.
package wizard

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

type State int

const (
	CollectEmail State = iota
	AwaitCodeRequest
	EnterCode
	ResetPassword
	Done
)

func (s State) String() string {
	switch s {
	case CollectEmail:
		return "collect-email"
	case AwaitCodeRequest:
		return "await-code-request"
	case EnterCode:
		return "enter-code"
	case ResetPassword:
		return "reset-password"
	case Done:
		return "done"
	}
	return "unknown"
}

const MinPasswordLength = 8

var (
	ErrEmailRequired    = errors.New("please enter an email address")
	ErrCodeRequired     = errors.New("please enter the verification code")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWrongState       = errors.New("action not available on this screen")
)

// Service is the backend the wizard talks to.
type Service interface {
	SendCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email string, code string) error
	ResetPassword(ctx context.Context, req ResetRequest) (string, error)
}

type ResetRequest struct {
	Email     string `json:"email"`
	Code      string `json:"code"`
	Password  string `json:"password"`
	UserAgent string `json:"userAgent"`
	Timestamp string `json:"timestamp"`
}

type Session struct {
	svc       Service
	userAgent string
	now       func() time.Time

	state    State
	email    string
	code     string
	redirect string
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithUserAgent(ua string) Option {
	return func(s *Session) { s.userAgent = ua }
}

func NewSession(svc Service, opts ...Option) *Session {
	s := &Session{
		svc:       svc,
		userAgent: "verify-wizard",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State { return s.state }
func (s *Session) Email() string { return s.email }
func (s *Session) RedirectURL() string { return s.redirect }

// SubmitEmail captures the email and moves to AwaitCodeRequest.
func (s *Session) SubmitEmail(raw string) error {
	if s.state != CollectEmail {
		return ErrWrongState
	}

	email := strings.TrimSpace(raw)
	if email == "" {
		return ErrEmailRequired
	}

	s.email = email
	s.state = AwaitCodeRequest

	return nil
}

func (s *Session) RequestCode(ctx context.Context) error {
	if s.state != AwaitCodeRequest {
		return ErrWrongState
	}

	if err := s.svc.SendCode(ctx, s.email); err != nil {
		return err
	}

	s.state = EnterCode

	return nil
}

func (s *Session) SubmitCode(ctx context.Context, raw string) error {
	if s.state != EnterCode {
		return ErrWrongState
	}

	code := strings.TrimSpace(raw)
	if code == "" {
		return ErrCodeRequired
	}

	if err := s.svc.VerifyCode(ctx, s.email, code); err != nil {
		return err
	}

	s.code = code
	s.state = ResetPassword

	return nil
}

// ValidatePassword is the local check run before any reset request.
func ValidatePassword(password, confirm string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

func (s *Session) SubmitPassword(ctx context.Context, password, confirm string) error {
	if s.state != ResetPassword {
		return ErrWrongState
	}

	if err := ValidatePassword(password, confirm); err != nil {
		return err
	}

	redirect, err := s.svc.ResetPassword(ctx, ResetRequest{
		Email:     s.email,
		Code:      s.code,
		Password:  password,
		UserAgent: s.userAgent,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	s.redirect = redirect
	s.state = Done

	return nil
}

// Cancel returns to CollectEmail and forgets everything captured so far.
func (s *Session) Cancel() {
	if s.state == Done {
		return
	}

	s.state = CollectEmail
	s.email = ""
	s.code = ""
	s.redirect = ""
}
