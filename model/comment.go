// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Comment is a single comment on a work. Replies reference their root
// comment through Parent.
type Comment struct {
	ID      uint64    `json:"id"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
	User    User      `json:"user"`

	// Parent is nil for root comments.
	Parent *Comment `json:"-"`
}

// UnmarshalJSON implements custom JSON unmarshaling for the Comment type.
//
// The API encodes the absence of a parent as an empty JSON object rather
// than null, so the parent is decoded by hand and collapsed to nil when it
// carries no fields.
func (c *Comment) UnmarshalJSON(data []byte) error {
	type alias Comment

	aux := &struct {
		*alias

		RawParent json.RawMessage `json:"parent_comment"`
	}{
		alias: (*alias)(c),
	}

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.RawParent)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte("{}")) {
		c.Parent = nil

		return nil
	}

	parent := new(Comment)
	if err := json.Unmarshal(raw, parent); err != nil {
		return err
	}

	c.Parent = parent

	return nil
}
