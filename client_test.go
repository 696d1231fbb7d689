// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package pixiv

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessToken = "test-access-token"

// newTestClient spins up a server handling both the token endpoint and the
// API routes registered on mux, and points a client at it.
func newTestClient(t *testing.T, mux *http.ServeMux, authenticated bool) (*Client, *httptest.Server) {
	t.Helper()

	mux.HandleFunc("/auth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"response": {
				"access_token": "` + testAccessToken + `",
				"expires_in": 3600,
				"token_type": "bearer",
				"refresh_token": "test-refresh",
				"user": {"id": "123", "name": "Someone", "account": "someone"}
			}
		}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	refreshToken := ""
	if authenticated {
		refreshToken = "test-refresh"
	}

	client, err := New(refreshToken,
		WithBaseURL(server.URL),
		WithAuthBaseURL(server.URL),
		WithHTTPClient(server.Client()),
		WithCache(0, 0),
	)
	require.NoError(t, err)

	return client, server
}

// requireAppHeaders asserts the mobile-app identification pixiv expects on
// every API request.
func requireAppHeaders(t *testing.T, r *http.Request, authenticated bool) {
	t.Helper()

	assert.Equal(t, appUserAgent, r.Header.Get("User-Agent"))
	assert.Equal(t, appOS, r.Header.Get("App-OS"))
	assert.Equal(t, appVersion, r.Header.Get("App-Version"))
	assert.NotEmpty(t, r.Header.Get("Accept-Language"))

	if authenticated {
		assert.Equal(t, "Bearer "+testAccessToken, r.Header.Get("Authorization"))
	} else {
		assert.Empty(t, r.Header.Get("Authorization"))
	}
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	client, err := New("refresh")
	require.NoError(t, err)

	assert.Equal(t, DefaultAppBaseURL, client.baseURL)
	assert.Equal(t, FilterForIOS, client.filter)
	assert.False(t, client.Anonymous())
	assert.NotNil(t, client.Illust)
	assert.NotNil(t, client.User)
	assert.NotNil(t, client.Novel)
}

func TestNegativeCacheSizeDisablesCache(t *testing.T) {
	t.Parallel()

	client, err := New("refresh", WithCache(-1, 0))
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestWithOptions(t *testing.T) {
	t.Parallel()

	client, err := New("refresh",
		WithAcceptLanguage("ja"),
		WithFilter(FilterForAndroid),
		WithBaseURL("http://example.invalid"),
	)
	require.NoError(t, err)

	assert.Equal(t, "ja", client.acceptLanguage)
	assert.Equal(t, FilterForAndroid, client.filter)
	assert.Equal(t, "http://example.invalid", client.baseURL)
}
