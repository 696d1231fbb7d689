// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package model

import "time"

// UgoiraFrame names one still frame inside the ugoira ZIP archive and how
// long it stays on screen, in milliseconds.
type UgoiraFrame struct {
	File  string `json:"file"`
	Delay int    `json:"delay"`
}

// Duration returns the frame's display time as a time.Duration.
func (f UgoiraFrame) Duration() time.Duration {
	return time.Duration(f.Delay) * time.Millisecond
}

// UgoiraMetadata is the frame-timing manifest for an animated work: where to
// fetch the ZIP of still frames and the ordered per-frame delays.
type UgoiraMetadata struct {
	ZipURLs ImageURLs     `json:"zip_urls"`
	Frames  []UgoiraFrame `json:"frames"`
}
