// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package model

// ImageURLs is a bundle of resolution variants for a single image.
//
// Not every endpoint populates every variant; in particular "original" is
// only present on single-page works and ugoira archives.
type ImageURLs struct {
	SquareMedium string `json:"square_medium,omitempty"`
	Medium       string `json:"medium,omitempty"`
	Large        string `json:"large,omitempty"`
	Original     string `json:"original,omitempty"`
}

// Best returns the highest-resolution variant available, preferring
// original, then large, then medium, then square medium.
func (u ImageURLs) Best() string {
	switch {
	case u.Original != "":
		return u.Original
	case u.Large != "":
		return u.Large
	case u.Medium != "":
		return u.Medium
	default:
		return u.SquareMedium
	}
}

// IsZero reports whether no variant is populated.
func (u ImageURLs) IsZero() bool {
	return u == ImageURLs{}
}

// ProfileImageURLs holds the avatar variants returned for users.
//
// The App API only ever returns "medium" for most endpoints; the pixel-sized
// variants appear on the authenticated account payload.
type ProfileImageURLs struct {
	Px16  string `json:"px_16x16,omitempty"`
	Px50  string `json:"px_50x50,omitempty"`
	Px170 string `json:"px_170x170,omitempty"`
	Medium string `json:"medium,omitempty"`
}
