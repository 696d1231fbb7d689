// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package pixiv

import (
	"context"
	"crypto/md5" // #nosec:G501 // The API mandates MD5 for its client hash.
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/TheFunny/async-pixiv/model"
	"github.com/TheFunny/async-pixiv/requests"
)

// OAuth client credentials of the official Android app. These are baked into
// the app binary and required by the token endpoint; they are not secrets in
// any meaningful sense.
const (
	oauthClientID     = "MOBrBDS8blbauoSck0ZfDbtuzpyT"
	oauthClientSecret = "lsACyCD94FhDUtGTXi3QzcFE2uU1hqtDaKeqrdwj"
	oauthHashSecret   = "28c1fdd170a5204386cb1313c7077b34f83e4aaf4aa829ce78c231e05b0bae2c"
)

// clientTimeFormat is the timestamp layout the token endpoint expects in
// X-Client-Time. It is RFC 3339 with a mandatory numeric zone offset.
const clientTimeFormat = "2006-01-02T15:04:05-07:00"

// refreshMargin is how long before the reported expiry the access token is
// treated as stale, absorbing clock skew and request latency.
const refreshMargin = time.Minute

// authenticator holds the OAuth2 session state and refreshes the access
// token on demand. Safe for concurrent use.
type authenticator struct {
	backend *requests.Backend
	authURL string

	mu           sync.Mutex
	refreshToken string
	accessToken  string
	expiresAt    time.Time
	account      *model.Account

	// now is swapped out in tests.
	now func() time.Time
}

func newAuthenticator(backend *requests.Backend, authBase, refreshToken string) *authenticator {
	return &authenticator{
		backend:      backend,
		authURL:      authTokenURL(authBase),
		refreshToken: refreshToken,
		now:          time.Now,
	}
}

// tokenResponse is the payload of the token endpoint. The interesting fields
// are nested under "response"; the duplicated top-level copies are ignored.
type tokenResponse struct {
	Response struct {
		AccessToken  string        `json:"access_token"`
		ExpiresIn    int           `json:"expires_in"`
		TokenType    string        `json:"token_type"`
		Scope        string        `json:"scope"`
		RefreshToken string        `json:"refresh_token"`
		User         model.Account `json:"user"`
	} `json:"response"`
}

// Token returns a valid access token, refreshing it first when the cached
// one is missing or within refreshMargin of expiry.
func (a *authenticator) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.accessToken != "" && a.now().Add(refreshMargin).Before(a.expiresAt) {
		return a.accessToken, nil
	}

	if err := a.refresh(ctx); err != nil {
		return "", err
	}

	return a.accessToken, nil
}

// Account returns the account record from the last token exchange,
// refreshing the session first if none happened yet.
func (a *authenticator) Account(ctx context.Context) (*model.Account, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.account == nil {
		if err := a.refresh(ctx); err != nil {
			return nil, err
		}
	}

	return a.account, nil
}

// scope returns a stable identifier for this session, used to partition the
// response cache between accounts.
func (a *authenticator) scope() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.refreshToken
}

// refresh exchanges the refresh token for a fresh access token.
// Callers must hold a.mu.
func (a *authenticator) refresh(ctx context.Context) error {
	form := url.Values{}
	form.Set("client_id", oauthClientID)
	form.Set("client_secret", oauthClientSecret)
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", a.refreshToken)
	form.Set("get_secure_url", "1")
	form.Set("include_policy", "true")

	clientTime := a.now().Format(clientTimeFormat)

	headers := http.Header{}
	headers.Set("User-Agent", appUserAgent)
	headers.Set("X-Client-Time", clientTime)
	headers.Set("X-Client-Hash", clientHash(clientTime))

	body, err := a.backend.PostJSON(ctx, a.authURL, requests.RequestOptions{
		Headers: headers,
		Form:    form,
	})
	if err != nil {
		return fmt.Errorf("token refresh failed: %w", err)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}

	a.accessToken = token.Response.AccessToken
	a.expiresAt = a.now().Add(time.Duration(token.Response.ExpiresIn) * time.Second)
	a.account = &token.Response.User

	// The endpoint may rotate the refresh token.
	if token.Response.RefreshToken != "" {
		a.refreshToken = token.Response.RefreshToken
	}

	log.Debug().
		Str("sys", "auth").
		Time("expires_at", a.expiresAt).
		Str("account", a.account.Account).
		Msg("Access token refreshed")

	return nil
}

// clientHash derives the X-Client-Hash header value for a given
// X-Client-Time timestamp.
func clientHash(clientTime string) string {
	sum := md5.Sum([]byte(clientTime + oauthHashSecret)) // #nosec:G401

	return hex.EncodeToString(sum[:])
}
