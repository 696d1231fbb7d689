// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

// Package idgen makes short request IDs for correlating log entries.
package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

// Make makes a short ID from a wall-clock prefix and 3 bytes of entropy.
func Make() string {
	var entropy [3]byte

	_, _ = rand.Read(entropy[:])

	return time.Now().Format("150405") + base64.RawURLEncoding.EncodeToString(entropy[:])
}
