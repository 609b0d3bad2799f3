package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Baoaxid/TwitterProject/internal/apperror"
	"github.com/Baoaxid/TwitterProject/internal/auth/domain"
	repo "github.com/Baoaxid/TwitterProject/internal/auth/repository/postgres"
)

func TestInsertRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRefreshTokenRepository(mock)
	ctx := context.Background()

	rt := &domain.RefreshToken{
		Token:     "refresh-token-string",
		UserID:    "user-123",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		CreatedAt: time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO refresh_tokens").
			WithArgs(rt.Token, rt.UserID, rt.IssuedAt, rt.ExpiresAt, rt.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Insert(ctx, rt)
		assert.NoError(t, err)
	})

	t.Run("duplicate token maps to conflict", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO refresh_tokens").
			WithArgs(rt.Token, rt.UserID, rt.IssuedAt, rt.ExpiresAt, rt.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		err := r.Insert(ctx, rt)
		assert.True(t, apperror.IsCode(err, apperror.CodeConflict))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO refresh_tokens").
			WithArgs(rt.Token, rt.UserID, rt.IssuedAt, rt.ExpiresAt, rt.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Insert(ctx, rt)
		assert.Error(t, err)
	})
}

func TestFindRefreshTokenByToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRefreshTokenRepository(mock)
	ctx := context.Background()

	expected := &domain.RefreshToken{
		Token:     "refresh-token-string",
		UserID:    "user-123",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		CreatedAt: time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"token", "user_id", "iat", "exp", "created_at"}).
			AddRow(expected.Token, expected.UserID, expected.IssuedAt, expected.ExpiresAt, expected.CreatedAt)

		mock.ExpectQuery("SELECT (.+) FROM refresh_tokens WHERE token").
			WithArgs(expected.Token).
			WillReturnRows(rows)

		rt, err := r.FindByToken(ctx, expected.Token)
		require.NoError(t, err)
		require.NotNil(t, rt)
		assert.Equal(t, expected.UserID, rt.UserID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM refresh_tokens WHERE token").
			WithArgs(expected.Token).
			WillReturnError(pgx.ErrNoRows)

		rt, err := r.FindByToken(ctx, expected.Token)
		require.NoError(t, err)
		assert.Nil(t, rt)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM refresh_tokens WHERE token").
			WithArgs(expected.Token).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.FindByToken(ctx, expected.Token)
		assert.Error(t, err)
	})
}

// TestDeleteRefreshTokenByToken checks the affected-row count used as the
// rotation serialization point.
func TestDeleteRefreshTokenByToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRefreshTokenRepository(mock)
	ctx := context.Background()

	t.Run("deletes one row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM refresh_tokens").
			WithArgs("refresh-token-string").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := r.DeleteByToken(ctx, "refresh-token-string")
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})

	t.Run("absent token deletes zero rows", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM refresh_tokens").
			WithArgs("already-rotated").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := r.DeleteByToken(ctx, "already-rotated")
		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM refresh_tokens").
			WithArgs("refresh-token-string").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.DeleteByToken(ctx, "refresh-token-string")
		assert.Error(t, err)
	})
}
