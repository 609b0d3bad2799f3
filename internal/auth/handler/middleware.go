package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Baoaxid/TwitterProject/internal/apperror"
	"github.com/Baoaxid/TwitterProject/internal/auth/domain"
	"github.com/Baoaxid/TwitterProject/internal/auth/dto"
	"github.com/Baoaxid/TwitterProject/internal/auth/token"
	"github.com/Baoaxid/TwitterProject/pkg/constant"
)

// Middleware is the request authentication pipeline: an ordered chain of
// validators that either attach decoded claims/loaded accounts to the
// request or halt it with a classified error. Signature checks run before
// store lookups, and existence checks before state checks.
type Middleware struct {
	signer        *token.Signer
	users         domain.UserRepository
	refreshTokens domain.RefreshTokenRepository
}

func NewMiddleware(signer *token.Signer, users domain.UserRepository, refreshTokens domain.RefreshTokenRepository) *Middleware {
	return &Middleware{
		signer:        signer,
		users:         users,
		refreshTokens: refreshTokens,
	}
}

// RequireAccessToken extracts the bearer credential, verifies it as an
// Access-purpose token and attaches the decoded claims.
func (m *Middleware) RequireAccessToken(c *fiber.Ctx) error {
	authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authHeader == "" {
		return apperror.Unauthorized("access token is required")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], constant.BearerScheme) || parts[1] == "" {
		return apperror.Unauthorized("access token is required")
	}

	claims, err := m.signer.Verify(parts[1], token.PurposeAccess)
	if err != nil {
		return err
	}

	c.Locals(constant.LocalsAccessClaims, claims)

	return c.Next()
}

// RequireRefreshToken verifies the refresh-purpose signature and then
// requires a live record in the refresh token store; the store is the source
// of truth for "not yet consumed / not logged out".
func (m *Middleware) RequireRefreshToken(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.RefreshToken) == "" {
		return apperror.Unauthorized("refresh token is required")
	}

	claims, err := m.signer.Verify(input.RefreshToken, token.PurposeRefresh)
	if err != nil {
		return err
	}

	record, err := m.refreshTokens.FindByToken(c.Context(), input.RefreshToken)
	if err != nil {
		return err
	}
	if record == nil {
		return apperror.Unauthorized("used refresh token or not exist")
	}

	c.Locals(constant.LocalsRefreshClaims, claims)

	return c.Next()
}

// RequireEmailVerifyToken verifies the email-verification token, loads the
// owning account and rejects stale tokens that no longer match the stored
// value.
func (m *Middleware) RequireEmailVerifyToken(c *fiber.Ctx) error {
	var input dto.VerifyEmailInput
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.EmailVerifyToken) == "" {
		return apperror.Unauthorized("email verify token is required")
	}

	claims, err := m.signer.Verify(input.EmailVerifyToken, token.PurposeEmailVerify)
	if err != nil {
		return err
	}

	user, err := m.users.FindByID(c.Context(), claims.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("user not found")
	}
	if user.Verify == domain.Banned {
		return apperror.Forbidden("user is banned")
	}
	if user.Verify != domain.Verified && user.EmailVerifyToken != input.EmailVerifyToken {
		return apperror.Unauthorized("email verify token does not match")
	}

	c.Locals(constant.LocalsEmailVerifyClaims, claims)
	c.Locals(constant.LocalsAuthUser, user)

	return c.Next()
}

// RequireForgotPasswordToken is the reset-token counterpart of
// RequireEmailVerifyToken, comparing against the stored reset token.
func (m *Middleware) RequireForgotPasswordToken(c *fiber.Ctx) error {
	var input dto.VerifyForgotPasswordInput
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.ForgotPasswordToken) == "" {
		return apperror.Unauthorized("forgot password token is required")
	}

	claims, err := m.signer.Verify(input.ForgotPasswordToken, token.PurposeForgotPassword)
	if err != nil {
		return err
	}

	user, err := m.users.FindByID(c.Context(), claims.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("user not found")
	}
	if user.Verify == domain.Banned {
		return apperror.Forbidden("user is banned")
	}
	if user.ForgotPasswordToken != input.ForgotPasswordToken {
		return apperror.Unauthorized("forgot password token does not match")
	}

	c.Locals(constant.LocalsForgotPasswordClaims, claims)
	c.Locals(constant.LocalsAuthUser, user)

	return c.Next()
}

// RequireVerifiedUser is a pure context check on the access claims; it does
// no I/O and must run after RequireAccessToken.
func (m *Middleware) RequireVerifiedUser(c *fiber.Ctx) error {
	claims, ok := c.Locals(constant.LocalsAccessClaims).(*token.Claims)
	if !ok {
		return apperror.Unauthorized("access token is required")
	}
	if claims.Verify != domain.Verified {
		return apperror.Forbidden("user is not verified")
	}

	return c.Next()
}
