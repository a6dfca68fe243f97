package apiHttp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vibe-gaming/verify/internal/config"
	"github.com/vibe-gaming/verify/internal/domain"
	"github.com/vibe-gaming/verify/internal/service"
)

type verificationMock struct {
	mock.Mock
}

func (m *verificationMock) RequestCode(_ context.Context, email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func (m *verificationMock) VerifyCode(_ context.Context, email string, code string) error {
	return m.Called(email, code).Error(0)
}

func (m *verificationMock) ResetPassword(_ context.Context, input service.ResetPasswordInput) error {
	return m.Called(input).Error(0)
}

func (m *verificationMock) ListCredentials(context.Context) ([]domain.VerificationRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]domain.VerificationRecord)
	return records, args.Error(1)
}

type body struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Error       string `json:"error"`
	RedirectURL string `json:"redirectUrl"`
}

func newRouter(t *testing.T, svc *verificationMock) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth.AdminToken = "admin-secret"
	cfg.Wizard.LoginURL = "https://accounts.example.com/login"
	cfg.Wizard.AllowedOrigins = []string{"http://localhost:8000"}

	return NewHandlers(&service.Services{Verification: svc}, cfg).Init(cfg)
}

func do(t *testing.T, h http.Handler, method, path, payload string, header map[string]string) (*httptest.ResponseRecorder, body) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	if payload != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var b body
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") && strings.HasPrefix(w.Body.String(), "{") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	}

	return w, b
}

func TestSendCode(t *testing.T) {
	svc := new(verificationMock)
	svc.On("RequestCode", "a@example.com").Return("123456", nil).Once()
	h := newRouter(t, svc)

	w, b := do(t, h, http.MethodPost, "/send-code", `{"email":"a@example.com"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, b.Success)
	assert.Equal(t, "Verification code sent successfully", b.Message)
	assert.NotContains(t, w.Body.String(), "123456")
	svc.AssertExpectations(t)
}

func TestSendCode_EmailRequired(t *testing.T) {
	svc := new(verificationMock)
	h := newRouter(t, svc)

	w, b := do(t, h, http.MethodPost, "/send-code", `{}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, b.Success)
	assert.Equal(t, "email is required", b.Message)
	svc.AssertNotCalled(t, "RequestCode", mock.Anything)
}

func TestSendCode_UpstreamFailure(t *testing.T) {
	svc := new(verificationMock)
	svc.On("RequestCode", "a@example.com").
		Return("", &service.UpstreamError{Op: "send verification email", Err: errors.New("smtp refused")})
	h := newRouter(t, svc)

	w, b := do(t, h, http.MethodPost, "/send-code", `{"email":"a@example.com"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, b.Success)
	assert.Equal(t, "Failed to send verification code", b.Message)
	assert.Equal(t, "smtp refused", b.Error)
}

func TestVerifyCode(t *testing.T) {
	svc := new(verificationMock)
	svc.On("VerifyCode", "a@example.com", "123456").Return(nil)
	svc.On("VerifyCode", "a@example.com", "000000").Return(service.ErrInvalidCode)
	h := newRouter(t, svc)

	w, b := do(t, h, http.MethodPost, "/verify-code", `{"email":"a@example.com","code":"123456"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, b.Success)

	w, b = do(t, h, http.MethodPost, "/verify-code", `{"email":"a@example.com","code":"000000"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, b.Success)
	assert.Equal(t, "Invalid or expired code", b.Message)
}

func TestVerifyCode_MalformedBody(t *testing.T) {
	h := newRouter(t, new(verificationMock))

	w, b := do(t, h, http.MethodPost, "/verify-code", `{"email":`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", b.Message)
}

func TestResetPassword(t *testing.T) {
	svc := new(verificationMock)
	svc.On("ResetPassword", service.ResetPasswordInput{
		Email:     "a@example.com",
		Code:      "123456",
		Password:  "s3cure-pass",
		UserAgent: "agent/1.0",
		Timestamp: "2026-03-01T12:00:00Z",
	}).Return(nil).Once()
	h := newRouter(t, svc)

	w, b := do(t, h, http.MethodPost, "/reset-password",
		`{"email":"a@example.com","code":"123456","password":"s3cure-pass","userAgent":"agent/1.0","timestamp":"2026-03-01T12:00:00Z"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, b.Success)
	assert.Equal(t, "https://accounts.example.com/login", b.RedirectURL)
	svc.AssertExpectations(t)
}

func TestResetPassword_ShortPasswordRejected(t *testing.T) {
	svc := new(verificationMock)
	h := newRouter(t, svc)

	w, b := do(t, h, http.MethodPost, "/reset-password", `{"email":"a@example.com","code":"123456","password":"short"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "password must be at least 8 characters long", b.Message)
	svc.AssertNotCalled(t, "ResetPassword", mock.Anything)
}

func TestResetPassword_AccountNotFound(t *testing.T) {
	svc := new(verificationMock)
	svc.On("ResetPassword", mock.Anything).Return(service.ErrAccountNotFound)
	h := newRouter(t, svc)

	w, b := do(t, h, http.MethodPost, "/reset-password", `{"email":"x@example.com","code":"123456","password":"s3cure-pass"}`, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Account not found", b.Message)
}

func TestGetCredentials_RequiresAdminToken(t *testing.T) {
	svc := new(verificationMock)
	h := newRouter(t, svc)

	w, b := do(t, h, http.MethodGet, "/get-credentials", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, b.Success)

	w, _ = do(t, h, http.MethodGet, "/get-credentials", "", map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	svc.AssertNotCalled(t, "ListCredentials")
}

func TestGetCredentials_Empty(t *testing.T) {
	svc := new(verificationMock)
	svc.On("ListCredentials").Return([]domain.VerificationRecord{}, nil)
	h := newRouter(t, svc)

	w, _ := do(t, h, http.MethodGet, "/get-credentials", "", map[string]string{"Authorization": "Bearer admin-secret"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetCredentials_OmitsCodes(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := new(verificationMock)
	svc.On("ListCredentials").Return([]domain.VerificationRecord{{
		Email:     "a@example.com",
		Code:      "123456",
		CreatedAt: created,
		ExpiresAt: created.Add(30 * time.Minute),
	}}, nil)
	h := newRouter(t, svc)

	w, _ := do(t, h, http.MethodGet, "/get-credentials", "", map[string]string{"Authorization": "Bearer admin-secret"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"email":"a@example.com","createdAt":"2026-03-01T12:00:00Z","expiresAt":"2026-03-01T12:30:00Z"}]`, w.Body.String())
}

func TestIndexPage(t *testing.T) {
	h := newRouter(t, new(verificationMock))

	w, _ := do(t, h, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `id="step4"`)
}

func TestCORSPreflight(t *testing.T) {
	h := newRouter(t, new(verificationMock))

	w, _ := do(t, h, http.MethodOptions, "/send-code", "", map[string]string{"Origin": "http://localhost:8000"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:8000", w.Header().Get("Access-Control-Allow-Origin"))

	w, _ = do(t, h, http.MethodOptions, "/send-code", "", map[string]string{"Origin": "https://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
