package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env   string
	Port  string
	DBURL string

	AccessTokenSecret    string
	RefreshTokenSecret   string
	EmailVerifySecret    string
	ForgotPasswordSecret string

	AccessExpiryMin         int
	RefreshExpiryMin        int
	EmailVerifyExpiryMin    int
	ForgotPasswordExpiryMin int

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string

	MailAPIURL    string
	MailAPIKey    string
	MailFromEmail string
	MailFromName  string

	SentryDSN string
}

func Load() *Config {
	return &Config{
		Env:   getEnv("ENV", "development"),
		Port:  getEnv("PORT", "8080"),
		DBURL: mustGetEnv("DB_URL"),

		AccessTokenSecret:    mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret:   mustGetEnv("REFRESH_TOKEN_SECRET"),
		EmailVerifySecret:    mustGetEnv("EMAIL_VERIFY_TOKEN_SECRET"),
		ForgotPasswordSecret: mustGetEnv("FORGOT_PASSWORD_TOKEN_SECRET"),

		AccessExpiryMin:         getEnvAsInt("ACCESS_TOKEN_EXPIRY", 15),
		RefreshExpiryMin:        getEnvAsInt("REFRESH_TOKEN_EXPIRY", 10080),
		EmailVerifyExpiryMin:    getEnvAsInt("EMAIL_VERIFY_TOKEN_EXPIRY", 10080),
		ForgotPasswordExpiryMin: getEnvAsInt("FORGOT_PASSWORD_TOKEN_EXPIRY", 1440),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", ""),

		MailAPIURL:    getEnv("MAIL_API_URL", "https://send.api.mailtrap.io/api/send"),
		MailAPIKey:    getEnv("MAIL_API_KEY", ""),
		MailFromEmail: getEnv("MAIL_FROM_EMAIL", "noreply@example.com"),
		MailFromName:  getEnv("MAIL_FROM_NAME", "Account Service"),

		SentryDSN: getEnv("SENTRY_DSN", ""),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
