package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Baoaxid/TwitterProject/internal/apperror"
	"github.com/Baoaxid/TwitterProject/internal/auth/domain"
)

func newTestGoogleOAuth(tokenURL, userInfoURL string) *GoogleOAuth {
	g := NewGoogleOAuth("client-id", "client-secret", "https://example.com/oauth/callback")
	if tokenURL != "" {
		g.tokenURL = tokenURL
	}
	if userInfoURL != "" {
		g.userInfoURL = userInfoURL
	}
	return g
}

func TestExchangeCode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "auth-code", r.PostFormValue("code"))
			assert.Equal(t, "client-id", r.PostFormValue("client_id"))
			assert.Equal(t, "authorization_code", r.PostFormValue("grant_type"))

			json.NewEncoder(w).Encode(map[string]string{
				"access_token": "provider-access",
				"id_token":     "provider-id",
			})
		}))
		defer srv.Close()

		g := newTestGoogleOAuth(srv.URL, "")
		tok, err := g.ExchangeCode(context.Background(), "auth-code")
		require.NoError(t, err)
		assert.Equal(t, "provider-access", tok.AccessToken)
		assert.Equal(t, "provider-id", tok.IDToken)
	})

	t.Run("provider rejects the code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		g := newTestGoogleOAuth(srv.URL, "")
		_, err := g.ExchangeCode(context.Background(), "bad-code")
		assert.True(t, apperror.IsCode(err, apperror.CodeUpstream))
	})

	t.Run("provider unreachable", func(t *testing.T) {
		g := newTestGoogleOAuth("http://127.0.0.1:1", "")
		_, err := g.ExchangeCode(context.Background(), "auth-code")
		assert.True(t, apperror.IsCode(err, apperror.CodeUpstream))
	})
}

func TestFetchProfile(t *testing.T) {
	providerToken := &domain.OAuthToken{AccessToken: "provider-access", IDToken: "provider-id"}

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "provider-access", r.URL.Query().Get("access_token"))
			assert.Equal(t, "Bearer provider-id", r.Header.Get("Authorization"))

			json.NewEncoder(w).Encode(map[string]any{
				"email":          "test@example.com",
				"email_verified": true,
				"name":           "Test User",
				"picture":        "https://example.com/avatar.png",
			})
		}))
		defer srv.Close()

		g := newTestGoogleOAuth("", srv.URL)
		profile, err := g.FetchProfile(context.Background(), providerToken)
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", profile.Email)
		assert.True(t, profile.EmailVerified)
	})

	t.Run("malformed response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		g := newTestGoogleOAuth("", srv.URL)
		_, err := g.FetchProfile(context.Background(), providerToken)
		assert.True(t, apperror.IsCode(err, apperror.CodeUpstream))
	})
}
