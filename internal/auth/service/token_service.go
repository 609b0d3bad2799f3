package service

//go:generate mockgen -destination=../../mocks/mock_token_issuer.go -package=mocks github.com/Baoaxid/TwitterProject/internal/auth/service TokenIssuer

import (
	"time"

	"github.com/Baoaxid/TwitterProject/internal/auth/domain"
	"github.com/Baoaxid/TwitterProject/internal/auth/token"
)

// TokenPair is an access/refresh pair plus the refresh token's decoded
// validity window, which the lifecycle persists alongside the token string.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	RefreshIssuedAt  time.Time
	RefreshExpiresAt time.Time
}

// TokenIssuer mints the four token kinds for the lifecycle operations.
type TokenIssuer interface {
	GeneratePair(userID string, verify domain.VerifyStatus) (*TokenPair, error)
	// GeneratePairWithExpiry pins the refresh token to an absolute expiry so
	// rotation never extends the session.
	GeneratePairWithExpiry(userID string, verify domain.VerifyStatus, expiresAt time.Time) (*TokenPair, error)
	SignEmailVerifyToken(userID string, verify domain.VerifyStatus) (string, error)
	SignForgotPasswordToken(userID string, verify domain.VerifyStatus) (string, error)
}

type TokenService struct {
	signer *token.Signer

	AccessTokenExpiry         time.Duration
	RefreshTokenExpiry        time.Duration
	EmailVerifyTokenExpiry    time.Duration
	ForgotPasswordTokenExpiry time.Duration
}

func NewTokenService(signer *token.Signer, accessMinutes, refreshMinutes, emailVerifyMinutes, forgotPasswordMinutes int) *TokenService {
	return &TokenService{
		signer:                    signer,
		AccessTokenExpiry:         time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry:        time.Duration(refreshMinutes) * time.Minute,
		EmailVerifyTokenExpiry:    time.Duration(emailVerifyMinutes) * time.Minute,
		ForgotPasswordTokenExpiry: time.Duration(forgotPasswordMinutes) * time.Minute,
	}
}

func (ts *TokenService) GeneratePair(userID string, verify domain.VerifyStatus) (*TokenPair, error) {
	accessToken, err := ts.signer.Sign(token.PurposeAccess, userID, verify, ts.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	refreshToken, err := ts.signer.Sign(token.PurposeRefresh, userID, verify, ts.RefreshTokenExpiry)
	if err != nil {
		return nil, err
	}

	return ts.pairWithWindow(accessToken, refreshToken)
}

func (ts *TokenService) GeneratePairWithExpiry(userID string, verify domain.VerifyStatus, expiresAt time.Time) (*TokenPair, error) {
	accessToken, err := ts.signer.Sign(token.PurposeAccess, userID, verify, ts.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	refreshToken, err := ts.signer.SignWithExpiry(token.PurposeRefresh, userID, verify, expiresAt)
	if err != nil {
		return nil, err
	}

	return ts.pairWithWindow(accessToken, refreshToken)
}

// pairWithWindow decodes the freshly minted refresh token so the persisted
// record mirrors the token's own iat/exp claims.
func (ts *TokenService) pairWithWindow(accessToken, refreshToken string) (*TokenPair, error) {
	claims, err := ts.signer.Verify(refreshToken, token.PurposeRefresh)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshIssuedAt:  claims.IssuedAt.Time,
		RefreshExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (ts *TokenService) SignEmailVerifyToken(userID string, verify domain.VerifyStatus) (string, error) {
	return ts.signer.Sign(token.PurposeEmailVerify, userID, verify, ts.EmailVerifyTokenExpiry)
}

func (ts *TokenService) SignForgotPasswordToken(userID string, verify domain.VerifyStatus) (string, error) {
	return ts.signer.Sign(token.PurposeForgotPassword, userID, verify, ts.ForgotPasswordTokenExpiry)
}
