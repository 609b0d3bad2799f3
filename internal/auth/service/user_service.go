package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Baoaxid/TwitterProject/internal/apperror"
	"github.com/Baoaxid/TwitterProject/internal/auth/domain"
	"github.com/Baoaxid/TwitterProject/internal/auth/dto"
	"github.com/Baoaxid/TwitterProject/internal/auth/token"
	"github.com/Baoaxid/TwitterProject/pkg/constant"
)

// UserService orchestrates the token lifecycle: which tokens each operation
// mints, and the account/refresh-store writes that go with them.
type UserService struct {
	users         domain.UserRepository
	refreshTokens domain.RefreshTokenRepository
	tokens        TokenIssuer
	mailer        domain.Mailer
	oauth         domain.OAuthProvider
}

func NewUserService(
	users domain.UserRepository,
	refreshTokens domain.RefreshTokenRepository,
	tokens TokenIssuer,
	mailer domain.Mailer,
	oauth domain.OAuthProvider,
) *UserService {
	return &UserService{
		users:         users,
		refreshTokens: refreshTokens,
		tokens:        tokens,
		mailer:        mailer,
		oauth:         oauth,
	}
}

// Register creates an Unverified account and returns its first token pair.
// Uniqueness conflicts surface before any token is minted.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.TokenResponse, error) {
	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("email already exists")
	}

	userID := uuid.NewString()

	emailVerifyToken, err := s.tokens.SignEmailVerifyToken(userID, domain.Unverified)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:               userID,
		Name:             input.Name,
		Email:            input.Email,
		Username:         constant.DefaultUsernamePrefix + userID,
		PasswordHash:     string(hashed),
		DateOfBirth:      input.DOB(),
		Verify:           domain.Unverified,
		EmailVerifyToken: emailVerifyToken,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	pair, err := s.issuePair(ctx, userID, domain.Unverified)
	if err != nil {
		return nil, err
	}

	s.mailer.SendVerificationEmail(user.Email, emailVerifyToken)

	return pair, nil
}

// Login checks credentials and mints a fresh pair.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, apperror.Unauthorized("email or password is incorrect")
	}

	if user.Verify == domain.Banned {
		return nil, apperror.Forbidden("user is banned")
	}

	return s.issuePair(ctx, user.ID, user.Verify)
}

// Logout deletes the presented refresh token's record. Deleting an absent
// token is treated as success: the refresh-token middleware has already
// rejected tokens with no live record, and a repeat logout changes nothing.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	_, err := s.refreshTokens.DeleteByToken(ctx, refreshToken)
	return err
}

// Refresh rotates the presented refresh token: the old record is deleted
// first, and only the caller that observes the delete mints a replacement.
// The new refresh token keeps the original absolute expiry.
func (s *UserService) Refresh(ctx context.Context, refreshToken string, claims *token.Claims) (*dto.TokenResponse, error) {
	deleted, err := s.refreshTokens.DeleteByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, apperror.Unauthorized("used refresh token or not exist")
	}

	pair, err := s.tokens.GeneratePairWithExpiry(claims.UserID, claims.Verify, claims.ExpiresAt.Time)
	if err != nil {
		return nil, err
	}

	return s.storePair(ctx, claims.UserID, pair)
}

// VerifyEmail transitions Unverified -> Verified and mints a pair carrying
// the new state. A second call reports alreadyVerified without mutating
// anything.
func (s *UserService) VerifyEmail(ctx context.Context, userID string) (resp *dto.TokenResponse, alreadyVerified bool, err error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if user == nil {
		return nil, false, apperror.NotFound("user not found")
	}

	if user.Verify == domain.Verified || user.EmailVerifyToken == "" {
		return nil, true, nil
	}

	if err := s.users.SetVerified(ctx, userID); err != nil {
		return nil, false, err
	}

	pair, err := s.issuePair(ctx, userID, domain.Verified)
	if err != nil {
		return nil, false, err
	}

	return pair, false, nil
}

// ResendEmailVerify overwrites the stored verification token with a freshly
// minted one; the previous token stops matching from that point on.
func (s *UserService) ResendEmailVerify(ctx context.Context, userID string) (alreadyVerified bool, err error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, apperror.NotFound("user not found")
	}
	if user.Verify == domain.Banned {
		return false, apperror.Forbidden("user is banned")
	}
	if user.Verify == domain.Verified {
		return true, nil
	}

	emailVerifyToken, err := s.tokens.SignEmailVerifyToken(userID, domain.Unverified)
	if err != nil {
		return false, err
	}

	if err := s.users.SetEmailVerifyToken(ctx, userID, emailVerifyToken); err != nil {
		return false, err
	}

	s.mailer.SendVerificationEmail(user.Email, emailVerifyToken)

	return false, nil
}

// ForgotPassword mints a reset token, stores it on the account and notifies
// the address on file.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("user not found")
	}
	if user.Verify == domain.Banned {
		return apperror.Forbidden("user is banned")
	}

	forgotPasswordToken, err := s.tokens.SignForgotPasswordToken(user.ID, user.Verify)
	if err != nil {
		return err
	}

	if err := s.users.SetForgotPasswordToken(ctx, user.ID, forgotPasswordToken); err != nil {
		return err
	}

	s.mailer.SendPasswordResetEmail(user.Email, forgotPasswordToken)

	return nil
}

// ResetPassword writes the new digest and clears the stored reset token. The
// presented token has already been checked against the stored value by the
// middleware.
func (s *UserService) ResetPassword(ctx context.Context, userID, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.SetPassword(ctx, userID, string(hashed))
}

// ChangePassword requires the old password to match the stored digest; it is
// independent of the reset-token flow.
func (s *UserService) ChangePassword(ctx context.Context, userID string, input dto.ChangePasswordInput) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("user not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)) != nil {
		return apperror.Unauthorized("old password does not match")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.SetPassword(ctx, userID, string(hashed))
}

// OAuthGoogle exchanges the authorization code, requires a provider-verified
// email, then either logs the existing account in or auto-provisions a new
// one with a throwaway password.
func (s *UserService) OAuthGoogle(ctx context.Context, code string) (*dto.OAuthResult, error) {
	providerToken, err := s.oauth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	profile, err := s.oauth.FetchProfile(ctx, providerToken)
	if err != nil {
		return nil, err
	}

	if !profile.EmailVerified {
		return nil, apperror.Malformed("email is not verified by the provider")
	}

	user, err := s.users.FindByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}

	if user != nil {
		if user.Verify == domain.Banned {
			return nil, apperror.Forbidden("user is banned")
		}

		pair, err := s.issuePair(ctx, user.ID, user.Verify)
		if err != nil {
			return nil, err
		}

		return &dto.OAuthResult{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			NewUser:      false,
			Verify:       int(user.Verify),
		}, nil
	}

	password := uuid.NewString()
	pair, err := s.Register(ctx, dto.RegisterInput{
		Name:            profile.Name,
		Email:           profile.Email,
		Password:        password,
		ConfirmPassword: password,
		DateOfBirth:     time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	return &dto.OAuthResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		NewUser:      true,
		Verify:       int(domain.Unverified),
	}, nil
}

func (s *UserService) GetMe(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	return dto.NewUserOutput(user), nil
}

func (s *UserService) GetProfile(ctx context.Context, username string) (*dto.ProfileOutput, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	return dto.NewProfileOutput(user), nil
}

func (s *UserService) issuePair(ctx context.Context, userID string, verify domain.VerifyStatus) (*dto.TokenResponse, error) {
	pair, err := s.tokens.GeneratePair(userID, verify)
	if err != nil {
		return nil, err
	}

	return s.storePair(ctx, userID, pair)
}

func (s *UserService) storePair(ctx context.Context, userID string, pair *TokenPair) (*dto.TokenResponse, error) {
	err := s.refreshTokens.Insert(ctx, &domain.RefreshToken{
		Token:     pair.RefreshToken,
		UserID:    userID,
		IssuedAt:  pair.RefreshIssuedAt,
		ExpiresAt: pair.RefreshExpiresAt,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
