package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type VerifyEmailInput struct {
	EmailVerifyToken string `json:"email_verify_token"`
}

type ForgotPasswordInput struct {
	Email string `json:"email"`
}

func (f ForgotPasswordInput) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required, is.Email),
	)
}

type VerifyForgotPasswordInput struct {
	ForgotPasswordToken string `json:"forgot_password_token"`
}

type ResetPasswordInput struct {
	ForgotPasswordToken string `json:"forgot_password_token"`
	Password            string `json:"password"`
	ConfirmPassword     string `json:"confirm_password"`
}

func (r ResetPasswordInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required, validation.Length(8, 50), validation.By(strongPassword)),
		validation.Field(&r.ConfirmPassword, validation.Required,
			validation.In(r.Password).Error("must be the same as password")),
	)
}
