package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	DateOfBirth     string `json:"date_of_birth"`
}

func (r RegisterInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 50), validation.By(strongPassword)),
		validation.Field(&r.ConfirmPassword, validation.Required,
			validation.In(r.Password).Error("must be the same as password")),
		validation.Field(&r.DateOfBirth, validation.Required, validation.By(isoDate)),
	)
}

// DOB returns the parsed date of birth. Validate must have passed first.
func (r RegisterInput) DOB() time.Time {
	t, _ := parseDate(r.DateOfBirth)
	return t
}
