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

type RefreshTokenRepository struct {
	db DB
}

func NewRefreshTokenRepository(db DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Insert(ctx context.Context, rt *domain.RefreshToken) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO refresh_tokens (token, user_id, iat, exp, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, rt.Token, rt.UserID, rt.IssuedAt, rt.ExpiresAt, rt.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperror.Conflict("refresh token already exists")
		}
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}

	return nil
}

func (r *RefreshTokenRepository) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	query := `SELECT token, user_id, iat, exp, created_at FROM refresh_tokens WHERE token = $1 LIMIT 1;`

	var rt domain.RefreshToken
	err := r.db.QueryRow(ctx, query, token).Scan(&rt.Token, &rt.UserID, &rt.IssuedAt, &rt.ExpiresAt, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &rt, nil
}

// DeleteByToken removes the record for the exact token string. The returned
// count is the rotation serialization point: of two racing rotations only
// one can observe an affected row.
func (r *RefreshTokenRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token)
	if err != nil {
		return 0, fmt.Errorf("failed to delete refresh token: %w", err)
	}

	return tag.RowsAffected(), nil
}
