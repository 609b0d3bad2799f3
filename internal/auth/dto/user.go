package dto

import (
	"time"

	"github.com/Baoaxid/TwitterProject/internal/auth/domain"
)

// UserOutput is the self projection. The password digest and the stored
// verification/reset tokens never appear in any outward projection.
type UserOutput struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Verify      int       `json:"verify"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileOutput is the public projection, which additionally hides the
// verification state and timestamps.
type ProfileOutput struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

func NewUserOutput(u *domain.User) *UserOutput {
	return &UserOutput{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Username:    u.Username,
		DateOfBirth: u.DateOfBirth,
		Verify:      int(u.Verify),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func NewProfileOutput(u *domain.User) *ProfileOutput {
	return &ProfileOutput{
		ID:          u.ID,
		Name:        u.Name,
		Username:    u.Username,
		DateOfBirth: u.DateOfBirth,
	}
}
