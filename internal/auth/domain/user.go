package domain

import "time"

// VerifyStatus is the account's standing. The only legal transition inside
// this service is Unverified -> Verified; Banned is set administratively and
// is terminal for every flow here.
type VerifyStatus int

const (
	Unverified VerifyStatus = iota
	Verified
	Banned
)

type User struct {
	ID           string
	Name         string
	Email        string
	Username     string
	PasswordHash string
	DateOfBirth  time.Time
	Verify       VerifyStatus
	// EmailVerifyToken and ForgotPasswordToken hold the single currently
	// active token of each kind; issuing a new one overwrites the stored
	// value, which is what invalidates the previous token.
	EmailVerifyToken    string
	ForgotPasswordToken string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RefreshToken is the persistent record backing a signed refresh token.
// IssuedAt and ExpiresAt mirror the token's own claims so housekeeping can
// range-scan without re-verifying signatures.
type RefreshToken struct {
	Token     string
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
	CreatedAt time.Time
}

// OAuthToken is the provider token pair returned by the authorization-code
// exchange.
type OAuthToken struct {
	AccessToken string
	IDToken     string
}

// OAuthProfile is the subset of the provider's userinfo response the
// federation flow needs.
type OAuthProfile struct {
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}
