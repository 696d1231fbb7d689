// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

/*
Package requests is the HTTP layer shared by every pixiv API accessor.

It owns rate limiting, response caching, transparent content decoding,
validation of the vendor's JSON error envelope and per-request debug
logging. Callers hand it a fully built URL plus headers and get back the
raw response body, already checked for API-level errors.
*/
package requests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/TheFunny/async-pixiv/idgen"
)

var (
	errInvalidJSON      = errors.New("response contained invalid JSON")
	errAPIResponseError = errors.New("API response indicated error")
)

// APIError represents an error returned from the pixiv API.
type APIError struct {
	// StatusCode is the HTTP status code from the response.
	// Always >= 400 for API errors.
	StatusCode int

	// Message contains the error message from the API response, when the
	// response carried one.
	Message string

	// Reason is the machine-readable reason string some endpoints include.
	Reason string

	// Err is the underlying error cause.
	Err error
}

// Error returns a formatted error message including the status code and API
// message if available.
func (e *APIError) Error() string {
	var b strings.Builder

	b.WriteString(e.Err.Error())

	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}

	if e.Reason != "" {
		b.WriteString(" (")
		b.WriteString(e.Reason)
		b.WriteString(")")
	}

	fmt.Fprintf(&b, " (status code: %d)", e.StatusCode)

	return b.String()
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Backend performs HTTP exchanges on behalf of the API accessors.
//
// The zero value is not usable; construct with NewBackend. Limiter and Cache
// may be nil, disabling rate limiting and caching respectively.
type Backend struct {
	client  *http.Client
	limiter *rate.Limiter
	cache   *Cache
}

// NewBackend wraps an http.Client with the pixiv request pipeline.
func NewBackend(client *http.Client, limiter *rate.Limiter, cache *Cache) *Backend {
	if client == nil {
		client = http.DefaultClient
	}

	return &Backend{
		client:  client,
		limiter: limiter,
		cache:   cache,
	}
}

// GetJSON makes a GET request and returns the validated JSON payload.
//
// Returns an error if:
//   - The request fails
//   - The response contains invalid JSON
//   - The response carries the vendor's error envelope
func (b *Backend) GetJSON(ctx context.Context, url string, headers http.Header, cacheScope string) ([]byte, error) {
	body, err := b.checked(ctx, RequestOptions{
		Method:     http.MethodGet,
		URL:        url,
		Headers:    headers,
		CacheScope: cacheScope,
	})
	if err != nil {
		return nil, err
	}

	return processJSONResponse(body)
}

// PostJSON performs an urlencoded form POST and returns the validated JSON
// payload. POST responses are never cached.
func (b *Backend) PostJSON(ctx context.Context, url string, opts RequestOptions) ([]byte, error) {
	opts.Method = http.MethodPost
	opts.URL = url
	opts.NoCache = true

	body, err := b.checked(ctx, opts)
	if err != nil {
		return nil, err
	}

	return processJSONResponse(body)
}

// Do sends an HTTP request and returns the raw *http.Response and the
// response body as a byte slice.
//
// The `Body` field of the returned response is a NopCloser over the same
// bytes for convenience; callers should prefer the byte slice.
//
// Do does not check for non-OK status codes, leaving that to the caller.
func (b *Backend) Do(ctx context.Context, opts RequestOptions) (*http.Response, []byte, error) {
	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			return nil, nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	// For GET requests, check for a fresh cached response first.
	var storeInCache bool

	if opts.Method == http.MethodGet && !opts.NoCache && b.cache != nil {
		if item := b.cache.lookup(opts.URL, opts.CacheScope); item != nil {
			(&span{
				RequestID:  idgen.Make(),
				Method:     opts.Method,
				URL:        opts.URL,
				StatusCode: item.StatusCode,
				BodySize:   len(item.Body),
				Cached:     true,
			}).Log()

			return &http.Response{
				StatusCode: item.StatusCode,
				Header:     item.Header.Clone(),
				Body:       io.NopCloser(bytes.NewReader(item.Body)),
			}, item.Body, nil
		}

		storeInCache = !b.cache.excluded(opts.URL)
	}

	req, err := newRequest(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	resp, body, err := b.send(req)
	if err != nil {
		return nil, nil, err
	}

	if storeInCache && resp.StatusCode == http.StatusOK {
		b.cache.store(opts.URL, opts.CacheScope, resp.StatusCode, resp.Header, body)
	}

	return resp, body, nil
}

// checked performs a request and handles non-OK statuses, extracting the
// vendor's error message from the body when present.
func (b *Backend) checked(ctx context.Context, opts RequestOptions) ([]byte, error) {
	resp, body, err := b.Do(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, NewAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// NewAPIError builds an APIError from a non-OK response body.
//
// Two envelope shapes exist: App API endpoints use
// {"error": {"user_message": …, "message": …, "reason": …}} while the token
// endpoint uses {"has_error": true, "errors": {"system": {"message": …}}}.
// Non-JSON bodies fall back to the standard status text.
func NewAPIError(statusCode int, body []byte) *APIError {
	result := gjson.ParseBytes(body)

	message := result.Get("error.user_message").String()
	if message == "" {
		message = result.Get("error.message").String()
	}

	if message == "" {
		message = result.Get("errors.system.message").String()
	}

	if message == "" {
		message = http.StatusText(statusCode)
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Reason:     result.Get("error.reason").String(),
		Err:        errAPIResponseError,
	}
}

// processJSONResponse validates a raw JSON response body from the pixiv API.
//
// Unlike the web ajax API, the App API does not wrap payloads in a "body"
// field; the whole document is the payload. An "error" object in an OK
// response is still treated as a failure.
func processJSONResponse(respBody []byte) ([]byte, error) {
	if !gjson.ValidBytes(respBody) {
		return nil, fmt.Errorf("%w: %s", errInvalidJSON, string(respBody))
	}

	if gjson.GetBytes(respBody, "error").IsObject() {
		return nil, NewAPIError(http.StatusOK, respBody)
	}

	return respBody, nil
}

// newRequest constructs an *http.Request from RequestOptions.
func newRequest(ctx context.Context, opts RequestOptions) (*http.Request, error) {
	var reqBody io.Reader

	if opts.Method == http.MethodPost && opts.Form != nil {
		reqBody = strings.NewReader(opts.Form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, opts.URL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for name, values := range opts.Headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	if opts.Method == http.MethodPost && opts.Form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// Setting Accept-Encoding by hand disables the transport's automatic
	// gzip handling; decodeBody takes over below.
	req.Header.Set("Accept-Encoding", "gzip, zstd")

	return req, nil
}

// send executes the HTTP request, reads and decodes the body, and returns
// the response with a new, readable body stream alongside the raw bytes.
func (b *Backend) send(req *http.Request) (_ *http.Response, _ []byte, err error) {
	s := span{
		RequestID: idgen.Make(),
		Method:    req.Method,
		URL:       req.URL.String(),
	}

	s.Begin()

	defer func() {
		s.Error = err

		s.End()
		s.Log()
	}()

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	s.StatusCode = resp.StatusCode

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	body, err := decodeBody(resp.Header.Get("Content-Encoding"), raw)
	if err != nil {
		return nil, nil, err
	}

	s.BodySize = len(body)

	// Replace the consumed body with a new reader so the caller can still
	// read it.
	resp.Body = io.NopCloser(bytes.NewReader(body))

	return resp, body, nil
}

// decodeBody reverses the Content-Encoding applied by the server.
func decodeBody(encoding string, body []byte) ([]byte, error) {
	switch strings.ToLower(encoding) {
	case "", "identity":
		return body, nil

	case "gzip":
		zr, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to decode gzip response: %w", err)
		}
		defer zr.Close()

		decoded, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("failed to decode gzip response: %w", err)
		}

		return decoded, nil

	case "zstd":
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, err
		}
		defer dec.Close()

		decoded, err := dec.DecodeAll(body, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to decode zstd response: %w", err)
		}

		return decoded, nil

	default:
		// Unknown encodings pass through untouched.
		return body, nil
	}
}
