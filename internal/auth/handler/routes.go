package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, m *Middleware) {
	users := app.Group("/users")

	users.Post("/register", h.Register)
	users.Post("/login", h.Login)
	users.Post("/logout", m.RequireAccessToken, m.RequireRefreshToken, h.Logout)
	users.Post("/refresh-token", m.RequireRefreshToken, h.Refresh)

	users.Post("/verify-email", m.RequireEmailVerifyToken, h.VerifyEmail)
	users.Post("/resend-verify-email", m.RequireAccessToken, h.ResendVerifyEmail)

	users.Post("/forgot-password", h.ForgotPassword)
	users.Post("/verify-forgot-password", m.RequireForgotPasswordToken, h.VerifyForgotPassword)
	users.Post("/reset-password", m.RequireForgotPasswordToken, h.ResetPassword)
	users.Put("/change-password", m.RequireAccessToken, m.RequireVerifiedUser, h.ChangePassword)

	users.Get("/oauth/google", h.OAuthGoogle)

	users.Get("/me", m.RequireAccessToken, h.GetMe)
	users.Get("/:username", h.GetProfile)
}
