package dto

import validation "github.com/go-ozzo/ozzo-validation"

// RefreshInput carries the refresh token string for both rotation and
// logout.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken, validation.Required),
	)
}
