// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package pixiv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/TheFunny/async-pixiv/model"
	"github.com/TheFunny/async-pixiv/requests"
)

// Default response cache dimensions. The cache holds validated GET bodies
// keyed by URL and session; volatile feeds are never cached.
const (
	defaultCacheSize = 128
	defaultCacheTTL  = 30 * time.Minute
)

// Client is a session against the pixiv App API.
//
// Construct with New; the zero value is not usable. All exported methods are
// safe for concurrent use.
type Client struct {
	backend *requests.Backend
	auth    *authenticator

	baseURL        string
	acceptLanguage string
	filter         SearchFilter

	// Illust, User and Novel group the API operations by subject.
	Illust *IllustService
	User   *UserService
	Novel  *NovelService
}

type clientOptions struct {
	httpClient     *http.Client
	limiter        *rate.Limiter
	cacheSize      int
	cacheTTL       time.Duration
	cacheDisabled  bool
	acceptLanguage string
	baseURL        string
	authBaseURL    string
	filter         SearchFilter
}

// Option configures a Client during construction.
type Option func(*clientOptions)

// WithHTTPClient substitutes the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithRateLimit caps outgoing API calls at r requests per second with the
// given burst. A zero r disables rate limiting.
func WithRateLimit(r float64, burst int) Option {
	return func(o *clientOptions) {
		if r <= 0 {
			o.limiter = nil

			return
		}

		o.limiter = rate.NewLimiter(rate.Limit(r), burst)
	}
}

// WithCache sets the response cache capacity and TTL. A non-positive size
// disables caching.
func WithCache(size int, ttl time.Duration) Option {
	return func(o *clientOptions) {
		if size <= 0 {
			o.cacheDisabled = true

			return
		}

		o.cacheDisabled = false
		o.cacheSize = size
		o.cacheTTL = ttl
	}
}

// WithAcceptLanguage sets the Accept-Language header on API requests, which
// controls the language of translated tags and system messages.
func WithAcceptLanguage(lang string) Option {
	return func(o *clientOptions) {
		o.acceptLanguage = lang
	}
}

// WithFilter sets the platform filter parameter attached to requests.
func WithFilter(filter SearchFilter) Option {
	return func(o *clientOptions) {
		o.filter = filter
	}
}

// WithBaseURL overrides the App API host. Mostly useful for tests.
func WithBaseURL(base string) Option {
	return func(o *clientOptions) {
		o.baseURL = base
	}
}

// WithAuthBaseURL overrides the OAuth token host. Mostly useful for tests.
func WithAuthBaseURL(base string) Option {
	return func(o *clientOptions) {
		o.authBaseURL = base
	}
}

// New creates a Client authenticating with the given OAuth refresh token.
//
// An empty refreshToken yields an anonymous client: only the endpoints pixiv
// exposes without a bearer token work, and the rest return ErrAnonymous or a
// vendor error.
func New(refreshToken string, opts ...Option) (*Client, error) {
	options := clientOptions{
		cacheSize:      defaultCacheSize,
		cacheTTL:       defaultCacheTTL,
		acceptLanguage: "en-US",
		baseURL:        DefaultAppBaseURL,
		authBaseURL:    DefaultOAuthBaseURL,
		filter:         FilterForIOS,
	}

	for _, opt := range opts {
		opt(&options)
	}

	var cache *requests.Cache

	if !options.cacheDisabled {
		var err error

		cache, err = requests.NewCache(options.cacheSize, options.cacheTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to create response cache: %w", err)
		}
	}

	backend := requests.NewBackend(options.httpClient, options.limiter, cache)

	client := &Client{
		backend:        backend,
		baseURL:        options.baseURL,
		acceptLanguage: options.acceptLanguage,
		filter:         options.filter,
	}

	if refreshToken != "" {
		client.auth = newAuthenticator(backend, options.authBaseURL, refreshToken)
	}

	client.Illust = &IllustService{client: client}
	client.User = &UserService{client: client}
	client.Novel = &NovelService{client: client}

	return client, nil
}

// Anonymous reports whether the client was built without a refresh token.
func (c *Client) Anonymous() bool {
	return c.auth == nil
}

// Authenticate eagerly performs the token exchange and returns the account
// it belongs to. Calling it is optional; API methods authenticate lazily.
func (c *Client) Authenticate(ctx context.Context) (*model.Account, error) {
	if c.auth == nil {
		return nil, ErrAnonymous
	}

	return c.auth.Account(ctx)
}

// getJSON performs an authenticated API GET and unmarshals the validated
// payload into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	headers := http.Header{}
	headers.Set("User-Agent", appUserAgent)
	headers.Set("App-OS", appOS)
	headers.Set("App-OS-Version", appOSVersion)
	headers.Set("App-Version", appVersion)
	headers.Set("Accept-Language", c.acceptLanguage)

	var cacheScope string

	if c.auth != nil {
		token, err := c.auth.Token(ctx)
		if err != nil {
			return err
		}

		headers.Set("Authorization", "Bearer "+token)

		cacheScope = c.auth.scope()
	}

	body, err := c.backend.GetJSON(ctx, rawURL, headers, cacheScope)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse API response: %w", err)
	}

	return nil
}
