// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package requests

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON_OK(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"illusts": []}`))
	}))
	defer server.Close()

	backend := NewBackend(server.Client(), nil, nil)

	body, err := backend.GetJSON(t.Context(), server.URL, nil, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"illusts": []}`, string(body))
}

func TestGetJSON_ErrorEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"user_message": "Rate Limit", "message": "", "reason": "throttled"}}`))
	}))
	defer server.Close()

	backend := NewBackend(server.Client(), nil, nil)

	_, err := backend.GetJSON(t.Context(), server.URL, nil, "")
	require.Error(t, err)

	var apiErr *APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Rate Limit", apiErr.Message)
	assert.Equal(t, "throttled", apiErr.Reason)
}

func TestGetJSON_OAuthErrorEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"has_error": true, "errors": {"system": {"message": "Invalid refresh token", "code": 1508}}}`))
	}))
	defer server.Close()

	backend := NewBackend(server.Client(), nil, nil)

	_, err := backend.GetJSON(t.Context(), server.URL, nil, "")

	var apiErr *APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid refresh token", apiErr.Message)
}

func TestGetJSON_ErrorEnvelopeInOKResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"user_message": "Deleted work", "message": "", "reason": ""}}`))
	}))
	defer server.Close()

	backend := NewBackend(server.Client(), nil, nil)

	_, err := backend.GetJSON(t.Context(), server.URL, nil, "")

	var apiErr *APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Deleted work", apiErr.Message)
}

func TestGetJSON_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	backend := NewBackend(server.Client(), nil, nil)

	_, err := backend.GetJSON(t.Context(), server.URL, nil, "")
	require.ErrorIs(t, err, errInvalidJSON)
}

func TestGzipResponseDecoded(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept-Encoding"), "gzip")

		w.Header().Set("Content-Encoding", "gzip")

		zw := gzip.NewWriter(w)
		zw.Write([]byte(`{"ok": true}`))
		zw.Close()
	}))
	defer server.Close()

	backend := NewBackend(server.Client(), nil, nil)

	body, err := backend.GetJSON(t.Context(), server.URL, nil, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(body))
}

func TestCacheServesSecondRequest(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"illusts": []}`))
	}))
	defer server.Close()

	cache, err := NewCache(8, time.Minute)
	require.NoError(t, err)

	backend := NewBackend(server.Client(), nil, cache)

	url := server.URL + "/v1/illust/detail?illust_id=1"

	for range 2 {
		body, err := backend.GetJSON(t.Context(), url, nil, "scope")
		require.NoError(t, err)
		assert.JSONEq(t, `{"illusts": []}`, string(body))
	}

	assert.Equal(t, int32(1), hits.Load())
}

func TestCacheScopesDoNotMix(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cache, err := NewCache(8, time.Minute)
	require.NoError(t, err)

	backend := NewBackend(server.Client(), nil, cache)

	url := server.URL + "/v1/user/detail?user_id=1"

	_, err = backend.GetJSON(t.Context(), url, nil, "user-a")
	require.NoError(t, err)

	_, err = backend.GetJSON(t.Context(), url, nil, "user-b")
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
}

func TestVolatileFeedsNeverCached(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"illusts": []}`))
	}))
	defer server.Close()

	cache, err := NewCache(8, time.Minute)
	require.NoError(t, err)

	backend := NewBackend(server.Client(), nil, cache)

	url := server.URL + "/v1/illust/recommended?offset=0"

	for range 2 {
		_, err := backend.GetJSON(t.Context(), url, nil, "")
		require.NoError(t, err)
	}

	assert.Equal(t, int32(2), hits.Load())
}

func TestCacheTTLExpiry(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cache, err := NewCache(8, time.Millisecond)
	require.NoError(t, err)

	backend := NewBackend(server.Client(), nil, cache)

	url := server.URL + "/v1/user/detail?user_id=1"

	_, err = backend.GetJSON(t.Context(), url, nil, "")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = backend.GetJSON(t.Context(), url, nil, "")
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
}

func TestPostJSONSendsForm(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		w.Write([]byte(`{"response": {}}`))
	}))
	defer server.Close()

	backend := NewBackend(server.Client(), nil, nil)

	form := map[string][]string{"grant_type": {"refresh_token"}}

	body, err := backend.PostJSON(t.Context(), server.URL, RequestOptions{Form: form})
	require.NoError(t, err)
	assert.JSONEq(t, `{"response": {}}`, string(body))
}
