package dto

import validation "github.com/go-ozzo/ozzo-validation"

type ChangePasswordInput struct {
	OldPassword     string `json:"old_password"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (c ChangePasswordInput) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.OldPassword, validation.Required, validation.Length(8, 50)),
		validation.Field(&c.Password, validation.Required, validation.Length(8, 50), validation.By(strongPassword)),
		validation.Field(&c.ConfirmPassword, validation.Required,
			validation.In(c.Password).Error("must be the same as password")),
	)
}
