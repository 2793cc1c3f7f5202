// Package identity talks to the external identity provider (Firebase).
// The Client drives the Identity Toolkit REST endpoints the way the
// storefront signs users in; the Verifier checks ID tokens with the admin
// SDK the way the backend-facing middleware does.
package identity

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/guonaihong/gout"

	"github.com/trendora/storefront-api/models"
)

// Account is the provider's view of a signed-in identity.
type Account struct {
	UID          string
	Email        string
	DisplayName  string
	IDToken      string
	RefreshToken string
	ExpiresIn    time.Duration
}

type Client struct {
	apiKey     string
	toolkitURL string
	tokenURL   string
	timeout    time.Duration
}

// NewClient builds a provider client. toolkitURL and tokenURL are the
// Identity Toolkit and Secure Token origins; tests point them at httptest
// servers.
func NewClient(apiKey, toolkitURL, tokenURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		toolkitURL: toolkitURL,
		tokenURL:   tokenURL,
		timeout:    15 * time.Second,
	}
}

type toolkitResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	Error        struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignUp creates a new email/password identity with the provider.
func (c *Client) SignUp(ctx context.Context, email, password string) (*Account, error) {
	return c.call(ctx, "accounts:signUp", gout.H{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
}

// SignInWithPassword authenticates an existing email/password identity.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Account, error) {
	return c.call(ctx, "accounts:signInWithPassword", gout.H{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
}

// SignInWithGoogle exchanges a Google ID token for a provider session. This
// is the non-interactive half of the provider's social login flow; the
// browser popup happens on the caller's side.
func (c *Client) SignInWithGoogle(ctx context.Context, googleIDToken string) (*Account, error) {
	return c.call(ctx, "accounts:signInWithIdp", gout.H{
		"postBody":          "id_token=" + googleIDToken + "&providerId=google.com",
		"requestUri":        "http://localhost",
		"returnSecureToken": true,
	})
}

func (c *Client) call(ctx context.Context, endpoint string, body gout.H) (*Account, error) {
	var resp toolkitResponse
	var code int
	url := fmt.Sprintf("%s/%s?key=%s", c.toolkitURL, endpoint, c.apiKey)
	err := gout.POST(url).
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetJSON(body).
		BindJSON(&resp).
		Code(&code).
		Do()
	if err != nil {
		return nil, fmt.Errorf("identity provider request: %w", err)
	}
	if code != 200 {
		return nil, fmt.Errorf("%w: %s", models.ErrAuthFailed, resp.Error.Message)
	}
	return &Account{
		UID:          resp.LocalID,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    parseExpiry(resp.ExpiresIn),
	}, nil
}

type refreshResponse struct {
	UserID       string `json:"user_id"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
	Error        struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Refresh exchanges a refresh token for a fresh ID token. A rejected refresh
// token means the provider session is gone and surfaces as ErrAuthFailed.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Account, error) {
	var resp refreshResponse
	var code int
	url := fmt.Sprintf("%s/token?key=%s", c.tokenURL, c.apiKey)
	err := gout.POST(url).
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetWWWForm(gout.H{
			"grant_type":    "refresh_token",
			"refresh_token": refreshToken,
		}).
		BindJSON(&resp).
		Code(&code).
		Do()
	if err != nil {
		return nil, fmt.Errorf("identity provider refresh: %w", err)
	}
	if code != 200 {
		return nil, fmt.Errorf("%w: %s", models.ErrAuthFailed, resp.Error.Message)
	}
	return &Account{
		UID:          resp.UserID,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    parseExpiry(resp.ExpiresIn),
	}, nil
}

func parseExpiry(s string) time.Duration {
	secs, err := strconv.Atoi(s)
	if err != nil || secs <= 0 {
		return time.Hour
	}
	return time.Duration(secs) * time.Second
}
