package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Baoaxid/TwitterProject/internal/apperror"
	"github.com/Baoaxid/TwitterProject/internal/auth/domain"
)

const (
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
)

// GoogleOAuth implements domain.OAuthProvider against Google's OAuth2
// endpoints: authorization-code exchange followed by a userinfo fetch.
type GoogleOAuth struct {
	clientID     string
	clientSecret string
	redirectURI  string

	tokenURL    string
	userInfoURL string
	httpClient  *http.Client
}

func NewGoogleOAuth(clientID, clientSecret, redirectURI string) *GoogleOAuth {
	return &GoogleOAuth{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		tokenURL:     googleTokenURL,
		userInfoURL:  googleUserInfoURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *GoogleOAuth) ExchangeCode(ctx context.Context, code string) (*domain.OAuthToken, error) {
	form := url.Values{
		"code":          {code},
		"client_id":     {g.clientID},
		"client_secret": {g.clientSecret},
		"redirect_uri":  {g.redirectURI},
		"grant_type":    {"authorization_code"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, apperror.Upstream("failed to reach identity provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperror.Upstream(fmt.Sprintf("token exchange returned status %d", resp.StatusCode))
	}

	var body struct {
		AccessToken string `json:"access_token"`
		IDToken     string `json:"id_token"`
	}
	if err := decodeJSON(resp.Body, &body); err != nil {
		return nil, apperror.Upstream("malformed token exchange response")
	}

	return &domain.OAuthToken{AccessToken: body.AccessToken, IDToken: body.IDToken}, nil
}

func (g *GoogleOAuth) FetchProfile(ctx context.Context, token *domain.OAuthToken) (*domain.OAuthProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build userinfo request: %w", err)
	}

	q := req.URL.Query()
	q.Set("access_token", token.AccessToken)
	q.Set("alt", "json")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "Bearer "+token.IDToken)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, apperror.Upstream("failed to reach identity provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperror.Upstream(fmt.Sprintf("userinfo fetch returned status %d", resp.StatusCode))
	}

	var body struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := decodeJSON(resp.Body, &body); err != nil {
		return nil, apperror.Upstream("malformed userinfo response")
	}

	return &domain.OAuthProfile{
		Email:         body.Email,
		EmailVerified: body.EmailVerified,
		Name:          body.Name,
		Picture:       body.Picture,
	}, nil
}

func decodeJSON(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
