package config

import (
	"testing"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	for k, v := range map[string]string{
		"ENV":         "test",
		"DB_SERVER":   "127.0.0.1:3306",
		"DB_NAME":     "verify",
		"DB_USER":     "verify",
		"DB_PASSWORD": "secret",
		"SMTP_HOST":   "smtp.example.com",
		"SMTP_PORT":   "587",
		"SMTP_FROM":   "no-reply@example.com",
		"SMTP_PASS":   "secret",
	} {
		t.Setenv(k, v)
	}
}

func TestReadEnv_Defaults(t *testing.T) {
	setRequired(t)

	var cfg Config
	require.NoError(t, cleanenv.ReadEnv(&cfg))

	assert.Equal(t, "8000", cfg.HttpServer.Port)
	assert.Equal(t, 6, cfg.Auth.VerificationCodeLength)
	assert.Equal(t, 30*time.Minute, cfg.Auth.VerificationCodeTTL)
	assert.Empty(t, cfg.Auth.AdminToken)
	assert.False(t, cfg.Email.Async)
	assert.Equal(t, "verification_code.html", cfg.Email.Templates.Verification)
	assert.Equal(t, []string{"http://localhost:8000", "http://127.0.0.1:8000"}, cfg.Wizard.AllowedOrigins)
}

func TestReadEnv_MissingRequired(t *testing.T) {
	t.Setenv("ENV", "test")

	var cfg Config
	assert.Error(t, cleanenv.ReadEnv(&cfg))
}
