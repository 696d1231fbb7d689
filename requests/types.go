// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package requests

import (
	"net/http"
	"net/url"
)

// RequestOptions are parameters for a single HTTP exchange with pixiv.
type RequestOptions struct {
	Method  string
	URL     string
	Headers http.Header

	// Form is sent urlencoded as the POST body when non-nil.
	Form url.Values

	// CacheScope is extra cache key material binding cached responses to an
	// authentication identity. Responses for different scopes never mix.
	CacheScope string

	// NoCache skips both cache lookup and store for this request.
	NoCache bool
}
