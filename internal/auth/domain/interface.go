package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/Baoaxid/TwitterProject/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_refresh_token_repository.go -package=mocks github.com/Baoaxid/TwitterProject/internal/auth/domain RefreshTokenRepository
//go:generate mockgen -destination=../../mocks/mock_mailer.go -package=mocks github.com/Baoaxid/TwitterProject/internal/auth/domain Mailer
//go:generate mockgen -destination=../../mocks/mock_oauth_provider.go -package=mocks github.com/Baoaxid/TwitterProject/internal/auth/domain OAuthProvider

import "context"

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Insert(ctx context.Context, user *User) error
	// SetVerified marks the account Verified and clears the stored
	// email-verification token in one atomic update.
	SetVerified(ctx context.Context, id string) error
	SetEmailVerifyToken(ctx context.Context, id, token string) error
	SetForgotPasswordToken(ctx context.Context, id, token string) error
	// SetPassword writes the new digest and clears the stored reset token.
	SetPassword(ctx context.Context, id, passwordHash string) error
}

type RefreshTokenRepository interface {
	Insert(ctx context.Context, rt *RefreshToken) error
	FindByToken(ctx context.Context, token string) (*RefreshToken, error)
	// DeleteByToken removes the record and reports how many rows went away.
	// Rotation treats a zero count as "already consumed".
	DeleteByToken(ctx context.Context, token string) (int64, error)
}

// Mailer is the fire-and-forget outbound notifier. Implementations log their
// own failures; nothing is surfaced to the request path.
type Mailer interface {
	SendVerificationEmail(to, token string)
	SendPasswordResetEmail(to, token string)
}

// OAuthProvider abstracts the identity provider's two HTTP calls.
type OAuthProvider interface {
	ExchangeCode(ctx context.Context, code string) (*OAuthToken, error)
	FetchProfile(ctx context.Context, token *OAuthToken) (*OAuthProfile, error)
}
