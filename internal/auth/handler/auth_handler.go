package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Baoaxid/TwitterProject/internal/apperror"
	"github.com/Baoaxid/TwitterProject/internal/auth/dto"
	"github.com/Baoaxid/TwitterProject/internal/auth/service"
	"github.com/Baoaxid/TwitterProject/internal/auth/token"
	"github.com/Baoaxid/TwitterProject/pkg/constant"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.Malformed("invalid input")
	}
	if err := input.Validate(); err != nil {
		return apperror.Malformed(err.Error())
	}

	result, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "register success",
		"result":  result,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.Malformed("invalid input")
	}
	if err := input.Validate(); err != nil {
		return apperror.Malformed(err.Error())
	}

	result, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "login success",
		"result":  result,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.Malformed("invalid input")
	}

	if err := h.userService.Logout(c.Context(), input.RefreshToken); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "logout success",
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	claims, ok := c.Locals(constant.LocalsRefreshClaims).(*token.Claims)
	if !ok {
		return apperror.Unauthorized("refresh token is required")
	}

	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.Malformed("invalid input")
	}

	result, err := h.userService.Refresh(c.Context(), input.RefreshToken, claims)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "refresh token success",
		"result":  result,
	})
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	claims, ok := c.Locals(constant.LocalsEmailVerifyClaims).(*token.Claims)
	if !ok {
		return apperror.Unauthorized("email verify token is required")
	}

	result, alreadyVerified, err := h.userService.VerifyEmail(c.Context(), claims.UserID)
	if err != nil {
		return err
	}
	if alreadyVerified {
		return c.JSON(fiber.Map{
			"message": "email already verified before",
		})
	}

	return c.JSON(fiber.Map{
		"message": "email verify success",
		"result":  result,
	})
}

func (h *AuthHandler) ResendVerifyEmail(c *fiber.Ctx) error {
	claims, ok := c.Locals(constant.LocalsAccessClaims).(*token.Claims)
	if !ok {
		return apperror.Unauthorized("access token is required")
	}

	alreadyVerified, err := h.userService.ResendEmailVerify(c.Context(), claims.UserID)
	if err != nil {
		return err
	}
	if alreadyVerified {
		return c.JSON(fiber.Map{
			"message": "email already verified before",
		})
	}

	return c.JSON(fiber.Map{
		"message": "resend verify email success",
	})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.Malformed("invalid input")
	}
	if err := input.Validate(); err != nil {
		return apperror.Malformed(err.Error())
	}

	if err := h.userService.ForgotPassword(c.Context(), input.Email); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "check email to reset password",
	})
}

// VerifyForgotPassword only confirms the presented reset token; the
// middleware has already done the verification work.
func (h *AuthHandler) VerifyForgotPassword(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "verify forgot password success",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	claims, ok := c.Locals(constant.LocalsForgotPasswordClaims).(*token.Claims)
	if !ok {
		return apperror.Unauthorized("forgot password token is required")
	}

	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.Malformed("invalid input")
	}
	if err := input.Validate(); err != nil {
		return apperror.Malformed(err.Error())
	}

	if err := h.userService.ResetPassword(c.Context(), claims.UserID, input.Password); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "reset password success",
	})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := c.Locals(constant.LocalsAccessClaims).(*token.Claims)
	if !ok {
		return apperror.Unauthorized("access token is required")
	}

	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.Malformed("invalid input")
	}
	if err := input.Validate(); err != nil {
		return apperror.Malformed(err.Error())
	}

	if err := h.userService.ChangePassword(c.Context(), claims.UserID, input); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "change password success",
	})
}

func (h *AuthHandler) OAuthGoogle(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return apperror.Malformed("code is required")
	}

	result, err := h.userService.OAuthGoogle(c.Context(), code)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "oauth success",
		"result":  result,
	})
}

func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	claims, ok := c.Locals(constant.LocalsAccessClaims).(*token.Claims)
	if !ok {
		return apperror.Unauthorized("access token is required")
	}

	result, err := h.userService.GetMe(c.Context(), claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "get me success",
		"result":  result,
	})
}

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	result, err := h.userService.GetProfile(c.Context(), c.Params("username"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "get profile success",
		"result":  result,
	})
}
