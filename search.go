// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package pixiv

import (
	"net/url"
	"strconv"
	"strings"
)

// SearchSort controls the ordering of search results. Popularity sorting
// requires a pixiv Premium account; the API silently falls back to date
// ordering without one.
type SearchSort string

const (
	SortDateDesc    SearchSort = "date_desc"
	SortDateAsc     SearchSort = "date_asc"
	SortPopularDesc SearchSort = "popular_desc"
	SortPopularAsc  SearchSort = "popular_asc"
)

// ParseSearchSort converts a string into its corresponding SearchSort value.
//
// Normalizes the string to be case-insensitive before parsing. An empty
// SearchSort is returned for values the API does not know.
func ParseSearchSort(s string) SearchSort {
	switch strings.ToLower(s) {
	case "date_desc", "date-desc":
		return SortDateDesc
	case "date_asc", "date-asc":
		return SortDateAsc
	case "popular_desc", "popular-desc", "popular":
		return SortPopularDesc
	case "popular_asc", "popular-asc":
		return SortPopularAsc
	}

	return ""
}

// SearchTarget selects which fields of a work the search word matches
// against.
type SearchTarget string

const (
	TargetPartialTags SearchTarget = "partial_match_for_tags"
	TargetExactTags   SearchTarget = "exact_match_for_tags"
	TargetTitle       SearchTarget = "title_and_caption"

	// TargetKeyword and TargetText apply to novel search only.
	TargetKeyword SearchTarget = "keyword"
	TargetText    SearchTarget = "text"
)

// ParseSearchTarget converts a string into its corresponding SearchTarget
// value. An empty SearchTarget is returned for values the API does not know.
func ParseSearchTarget(s string) SearchTarget {
	switch strings.ToLower(s) {
	case "partial_match_for_tags", "partial", "tag":
		return TargetPartialTags
	case "exact_match_for_tags", "exact":
		return TargetExactTags
	case "title_and_caption", "title":
		return TargetTitle
	case "keyword":
		return TargetKeyword
	case "text":
		return TargetText
	}

	return ""
}

// SearchDuration restricts search results to a trailing window.
type SearchDuration string

const (
	WithinLastDay   SearchDuration = "within_last_day"
	WithinLastWeek  SearchDuration = "within_last_week"
	WithinLastMonth SearchDuration = "within_last_month"
)

// SearchFilter selects the client platform the API formats results for.
// The App API rejects some requests without one.
type SearchFilter string

const (
	FilterForIOS     SearchFilter = "for_ios"
	FilterForAndroid SearchFilter = "for_android"
)

// Restrict selects between a user's public and private listings, such as
// bookmarks and follows.
type Restrict string

const (
	RestrictPublic  Restrict = "public"
	RestrictPrivate Restrict = "private"
)

// SearchOption refines a search query. Options apply to both illustration
// and novel search unless noted otherwise.
type SearchOption func(url.Values)

// WithSort orders results by date or popularity.
func WithSort(sort SearchSort) SearchOption {
	return func(query url.Values) {
		query.Set("sort", string(sort))
	}
}

// WithTarget selects the fields the search word matches against.
func WithTarget(target SearchTarget) SearchOption {
	return func(query url.Values) {
		query.Set("search_target", string(target))
	}
}

// WithDuration restricts results to a trailing window.
func WithDuration(duration SearchDuration) SearchOption {
	return func(query url.Values) {
		query.Set("duration", string(duration))
	}
}

// WithOffset starts the result page at the given offset, as reported by the
// previous page's NextOffset.
func WithOffset(offset int) SearchOption {
	return func(query url.Values) {
		if offset > 0 {
			query.Set("offset", strconv.Itoa(offset))
		}
	}
}

// WithMinBookmarks drops results bookmarked fewer than n times.
func WithMinBookmarks(n int) SearchOption {
	return func(query url.Values) {
		query.Set("min_bookmarks", strconv.Itoa(n))
	}
}

// WithMaxBookmarks drops results bookmarked more than n times.
func WithMaxBookmarks(n int) SearchOption {
	return func(query url.Values) {
		query.Set("max_bookmarks", strconv.Itoa(n))
	}
}

// WithDateRange restricts results to works posted between start and end,
// each in YYYY-MM-DD form. Either bound may be empty.
func WithDateRange(start, end string) SearchOption {
	return func(query url.Values) {
		if start != "" {
			query.Set("start_date", start)
		}

		if end != "" {
			query.Set("end_date", end)
		}
	}
}

// searchQuery assembles the base query for a search word and applies the
// caller's options on top.
func searchQuery(word string, filter SearchFilter, defaultTarget SearchTarget, opts []SearchOption) url.Values {
	query := url.Values{}
	query.Set("word", word)
	query.Set("search_target", string(defaultTarget))
	query.Set("sort", string(SortDateDesc))
	query.Set("filter", string(filter))

	for _, opt := range opts {
		opt(query)
	}

	return query
}
