// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package requests

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// span represents one HTTP request in flight, for debug logging.
type span struct {
	start    time.Time
	duration time.Duration

	RequestID  string
	Method     string
	URL        string
	StatusCode int
	BodySize   int
	Cached     bool
	Error      error
}

func (s *span) Begin() {
	s.start = time.Now()
}

func (s *span) End() {
	if s.duration == 0 {
		s.duration = time.Since(s.start)
	}
}

func (s *span) Log() {
	event := log.Debug()

	event.Str("sys", "http")
	event.Str("method", s.Method)
	event.Str("url", s.URL)
	event.Int("status_code", s.StatusCode)
	event.Str("len", humanizeSize(s.BodySize))
	event.Dur("dur", s.duration)
	event.Str("request_id", s.RequestID)

	if s.Cached {
		event.Bool("cached", true)
	}

	if s.Error != nil {
		event.Err(s.Error)
	}

	event.Send()
}

const (
	bytesInKB = 1024
	bytesInMB = bytesInKB * bytesInKB
)

func humanizeSize(x int) string {
	switch {
	case x < bytesInKB:
		return strconv.Itoa(x)
	case x < bytesInMB:
		return fmt.Sprintf("%.2fK", float64(x)/bytesInKB)
	default:
		return fmt.Sprintf("%.2fM", float64(x)/bytesInMB)
	}
}
