package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Baoaxid/TwitterProject/internal/apperror"
	"github.com/Baoaxid/TwitterProject/internal/auth/domain"
)

// DB is the subset of pgxpool.Pool the repositories use; pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const uniqueViolationCode = "23505"

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, username, password_hash, date_of_birth,
		verify, email_verify_token, forgot_password_token, created_at, updated_at`

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1;`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1;`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 LIMIT 1;`
	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Username, &user.PasswordHash,
		&user.DateOfBirth, &user.Verify, &user.EmailVerifyToken, &user.ForgotPasswordToken,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, email, username, password_hash, date_of_birth,
			verify, email_verify_token, forgot_password_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, user.ID, user.Name, user.Email, user.Username, user.PasswordHash, user.DateOfBirth,
		user.Verify, user.EmailVerifyToken, user.ForgotPasswordToken, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperror.Conflict("email or username already exists")
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// SetVerified flips the account to Verified and clears the stored
// verification token in a single UPDATE; updated_at is server-assigned.
func (r *UserRepository) SetVerified(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET verify = $2, email_verify_token = '', updated_at = now()
		WHERE id = $1
	`, id, domain.Verified)
	if err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	return nil
}

func (r *UserRepository) SetEmailVerifyToken(ctx context.Context, id, token string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET email_verify_token = $2, updated_at = now()
		WHERE id = $1
	`, id, token)
	if err != nil {
		return fmt.Errorf("failed to set email verify token: %w", err)
	}

	return nil
}

func (r *UserRepository) SetForgotPasswordToken(ctx context.Context, id, token string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET forgot_password_token = $2, updated_at = now()
		WHERE id = $1
	`, id, token)
	if err != nil {
		return fmt.Errorf("failed to set forgot password token: %w", err)
	}

	return nil
}

// SetPassword writes the new digest and clears any outstanding reset token.
func (r *UserRepository) SetPassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, forgot_password_token = '', updated_at = now()
		WHERE id = $1
	`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to set password: %w", err)
	}

	return nil
}
