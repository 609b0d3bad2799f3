// Package token produces and validates the purpose-scoped JWTs used across
// the service. Each purpose signs with its own HS256 secret, so a token
// minted for one purpose can never verify under another even when the
// payload shapes overlap.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Baoaxid/TwitterProject/internal/apperror"
	"github.com/Baoaxid/TwitterProject/internal/auth/domain"
)

type Purpose int

const (
	PurposeAccess Purpose = iota
	PurposeRefresh
	PurposeEmailVerify
	PurposeForgotPassword
)

func (p Purpose) String() string {
	switch p {
	case PurposeAccess:
		return "access"
	case PurposeRefresh:
		return "refresh"
	case PurposeEmailVerify:
		return "email_verify"
	case PurposeForgotPassword:
		return "forgot_password"
	}
	return fmt.Sprintf("purpose(%d)", int(p))
}

// Claims is the signed payload. Verify carries the account's verification
// state at issuance so access-token gates need no extra lookup.
type Claims struct {
	UserID    string              `json:"user_id"`
	TokenType Purpose             `json:"token_type"`
	Verify    domain.VerifyStatus `json:"verify"`
	jwt.RegisteredClaims
}

type Signer struct {
	secrets map[Purpose][]byte
}

func NewSigner(accessSecret, refreshSecret, emailVerifySecret, forgotPasswordSecret string) *Signer {
	return &Signer{
		secrets: map[Purpose][]byte{
			PurposeAccess:         []byte(accessSecret),
			PurposeRefresh:        []byte(refreshSecret),
			PurposeEmailVerify:    []byte(emailVerifySecret),
			PurposeForgotPassword: []byte(forgotPasswordSecret),
		},
	}
}

// Sign mints a token for the given purpose with a relative lifetime.
func (s *Signer) Sign(purpose Purpose, userID string, verify domain.VerifyStatus, lifetime time.Duration) (string, error) {
	now := time.Now()
	return s.sign(purpose, userID, verify, now, now.Add(lifetime))
}

// SignWithExpiry mints a token with an absolute expiry. Rotation uses this
// to carry the original session expiry onto the replacement refresh token.
func (s *Signer) SignWithExpiry(purpose Purpose, userID string, verify domain.VerifyStatus, expiresAt time.Time) (string, error) {
	return s.sign(purpose, userID, verify, time.Now(), expiresAt)
}

func (s *Signer) sign(purpose Purpose, userID string, verify domain.VerifyStatus, issuedAt, expiresAt time.Time) (string, error) {
	claims := Claims{
		UserID:    userID,
		TokenType: purpose,
		Verify:    verify,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secrets[purpose])
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", purpose, err)
	}

	return signed, nil
}

// Verify parses and validates tokenString under the purpose's secret. The
// returned error is always classified so callers can distinguish a pure
// expiry from a forged or malformed token.
func (s *Signer) Verify(tokenString string, purpose Purpose) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secrets[purpose], nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, apperror.Expired(fmt.Sprintf("%s token is expired", purpose))
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, apperror.Malformed(fmt.Sprintf("%s token is malformed", purpose))
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, apperror.InvalidSignature(fmt.Sprintf("%s token signature is invalid", purpose))
		default:
			return nil, apperror.InvalidSignature(fmt.Sprintf("%s token is invalid", purpose))
		}
	}

	if !parsed.Valid {
		return nil, apperror.InvalidSignature(fmt.Sprintf("%s token is invalid", purpose))
	}

	return claims, nil
}
