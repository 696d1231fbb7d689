// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package pixiv

import "errors"

var (
	// ErrUgoiraArtwork is returned by Download when the work is an animated
	// ugoira; its frames live in a ZIP archive, use DownloadUgoira instead.
	ErrUgoiraArtwork = errors.New("artwork is an ugoira, use DownloadUgoira")

	// ErrNotUgoiraArtwork is returned by DownloadUgoira when the work is a
	// static illustration or manga; use Download instead.
	ErrNotUgoiraArtwork = errors.New("artwork is not an ugoira, use Download")

	// ErrMissingFrame is returned when the frame manifest names a file the
	// downloaded ZIP archive does not contain.
	ErrMissingFrame = errors.New("frame listed in manifest is missing from archive")

	// ErrAnonymous is returned by operations that require an authenticated
	// session when the client was built without a refresh token.
	ErrAnonymous = errors.New("operation requires authentication")
)
