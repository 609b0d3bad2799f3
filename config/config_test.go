package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_URL", "postgres://localhost:5432/accounts")
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")
	t.Setenv("EMAIL_VERIFY_TOKEN_SECRET", "email-verify-secret")
	t.Setenv("FORGOT_PASSWORD_TOKEN_SECRET", "forgot-password-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://localhost:5432/accounts", cfg.DBURL)
	assert.Equal(t, "access-secret", cfg.AccessTokenSecret)
	assert.Equal(t, "refresh-secret", cfg.RefreshTokenSecret)
	assert.Equal(t, "email-verify-secret", cfg.EmailVerifySecret)
	assert.Equal(t, "forgot-password-secret", cfg.ForgotPasswordSecret)
	assert.Equal(t, 15, cfg.AccessExpiryMin)
	assert.Equal(t, 10080, cfg.RefreshExpiryMin)
	assert.Equal(t, 10080, cfg.EmailVerifyExpiryMin)
	assert.Equal(t, 1440, cfg.ForgotPasswordExpiryMin)
	assert.Equal(t, "https://send.api.mailtrap.io/api/send", cfg.MailAPIURL)
	assert.Equal(t, "noreply@example.com", cfg.MailFromEmail)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "30")
	t.Setenv("REFRESH_TOKEN_EXPIRY", "2880")
	t.Setenv("EMAIL_VERIFY_TOKEN_EXPIRY", "60")
	t.Setenv("FORGOT_PASSWORD_TOKEN_EXPIRY", "120")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
	t.Setenv("GOOGLE_REDIRECT_URI", "https://example.com/oauth/callback")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 30, cfg.AccessExpiryMin)
	assert.Equal(t, 2880, cfg.RefreshExpiryMin)
	assert.Equal(t, 60, cfg.EmailVerifyExpiryMin)
	assert.Equal(t, 120, cfg.ForgotPasswordExpiryMin)
	assert.Equal(t, "client-id", cfg.GoogleClientID)
	assert.Equal(t, "client-secret", cfg.GoogleClientSecret)
	assert.Equal(t, "https://example.com/oauth/callback", cfg.GoogleRedirectURI)
}

func TestGetEnvAsInt_Invalid(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ACCESS_TOKEN_EXPIRY", "not-a-number")

	cfg := Load()

	assert.Equal(t, 15, cfg.AccessExpiryMin)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_KEY", "value")

	assert.Equal(t, "value", getEnv("SOME_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("SOME_MISSING_KEY", "fallback"))
}
