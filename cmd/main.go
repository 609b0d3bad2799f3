package main

import (
	"context"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"

	"github.com/Baoaxid/TwitterProject/config"
	"github.com/Baoaxid/TwitterProject/db"
	"github.com/Baoaxid/TwitterProject/internal/auth/handler"
	repo "github.com/Baoaxid/TwitterProject/internal/auth/repository/postgres"
	"github.com/Baoaxid/TwitterProject/internal/auth/service"
	"github.com/Baoaxid/TwitterProject/internal/auth/token"
	"github.com/Baoaxid/TwitterProject/internal/mailer"
)

func main() {
	cfg := config.Load()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Env,
	}); err != nil {
		log.Printf("sentry init failed: %v", err)
	}
	defer sentry.Flush(2 * time.Second)

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	userRepo := repo.NewUserRepository(dbPool)
	refreshTokenRepo := repo.NewRefreshTokenRepository(dbPool)

	signer := token.NewSigner(cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.EmailVerifySecret, cfg.ForgotPasswordSecret)
	tokenService := service.NewTokenService(signer, cfg.AccessExpiryMin, cfg.RefreshExpiryMin,
		cfg.EmailVerifyExpiryMin, cfg.ForgotPasswordExpiryMin)

	mailService := mailer.New(cfg.MailAPIURL, cfg.MailAPIKey, cfg.MailFromEmail, cfg.MailFromName)
	googleOAuth := service.NewGoogleOAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)

	userService := service.NewUserService(userRepo, refreshTokenRepo, tokenService, mailService, googleOAuth)
	authHandler := handler.NewAuthHandler(userService)
	authMiddleware := handler.NewMiddleware(signer, userRepo, refreshTokenRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handler.ErrorHandler,
	})
	handler.RegisterRoutes(app, authHandler, authMiddleware)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
