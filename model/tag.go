// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package model

// Tag is a work tag with an optional translation for the request's
// Accept-Language.
type Tag struct {
	Name           string `json:"name"`
	TranslatedName string `json:"translated_name,omitempty"`
}

// Series identifies the series a work belongs to, when any.
type Series struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
}
