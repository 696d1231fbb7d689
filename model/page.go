// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package model

import (
	"net/url"
	"strconv"
)

// IllustsPage is a page of illustrations from search, feeds and listings.
type IllustsPage struct {
	Illusts []Illust `json:"illusts"`
	NextURL string   `json:"next_url"`

	// SearchSpanLimit is only populated by the search endpoint.
	SearchSpanLimit int `json:"search_span_limit,omitempty"`
}

// NextOffset extracts the pagination offset from the page's next URL.
// The second result reports whether another page exists.
func (p *IllustsPage) NextOffset() (int, bool) {
	return nextOffset(p.NextURL)
}

// IllustDetail wraps the single-work payload of the detail endpoint.
type IllustDetail struct {
	Illust Illust `json:"illust"`
}

// RecommendedPage extends an illustration page with the ranking works the
// recommendation endpoint interleaves.
type RecommendedPage struct {
	Illusts        []Illust `json:"illusts"`
	RankingIllusts []Illust `json:"ranking_illusts"`
	ContestExists  bool     `json:"contest_exists"`
	NextURL        string   `json:"next_url"`
}

// NextOffset extracts the pagination offset from the page's next URL.
// The second result reports whether another page exists.
func (p *RecommendedPage) NextOffset() (int, bool) {
	return nextOffset(p.NextURL)
}

// CommentsPage is a page of comments on a work.
type CommentsPage struct {
	TotalComments int       `json:"total_comments"`
	Comments      []Comment `json:"comments"`
	NextURL       string    `json:"next_url"`
}

// NextOffset extracts the pagination offset from the page's next URL.
// The second result reports whether another page exists.
func (p *CommentsPage) NextOffset() (int, bool) {
	return nextOffset(p.NextURL)
}

// NovelsPage is a page of novels from search and listings.
type NovelsPage struct {
	Novels  []Novel `json:"novels"`
	NextURL string  `json:"next_url"`
}

// NextOffset extracts the pagination offset from the page's next URL.
// The second result reports whether another page exists.
func (p *NovelsPage) NextOffset() (int, bool) {
	return nextOffset(p.NextURL)
}

// RecommendedNovelsPage extends a novel page with the ranking works the
// recommendation endpoint interleaves.
type RecommendedNovelsPage struct {
	Novels        []Novel `json:"novels"`
	RankingNovels []Novel `json:"ranking_novels"`
	NextURL       string  `json:"next_url"`
}

// NextOffset extracts the pagination offset from the page's next URL.
// The second result reports whether another page exists.
func (p *RecommendedNovelsPage) NextOffset() (int, bool) {
	return nextOffset(p.NextURL)
}

// NovelDetail wraps the single-work payload of the novel detail endpoint.
type NovelDetail struct {
	Novel Novel `json:"novel"`
}

// NovelSeriesPage is the payload of the novel series endpoint: the series
// record plus a page of its novels.
type NovelSeriesPage struct {
	Detail  NovelSeriesDetail `json:"novel_series_detail"`
	Novels  []Novel           `json:"novels"`
	NextURL string            `json:"next_url"`
}

// UserDetailResponse is the top-level payload of the user detail endpoint.
// The API flattens UserDetail's fields at the top level, so this is an alias
// for documentation purposes at call sites.
type UserDetailResponse = UserDetail

// UserPreviewsPage is a page of user previews from user search, related
// users and follower listings.
type UserPreviewsPage struct {
	UserPreviews []UserPreview `json:"user_previews"`
	NextURL      string        `json:"next_url"`
}

// NextOffset extracts the pagination offset from the page's next URL.
// The second result reports whether another page exists.
func (p *UserPreviewsPage) NextOffset() (int, bool) {
	return nextOffset(p.NextURL)
}

// UgoiraMetadataResponse wraps the manifest payload of the ugoira metadata
// endpoint.
type UgoiraMetadataResponse struct {
	Metadata UgoiraMetadata `json:"ugoira_metadata"`
}

// NextURLValues parses the query parameters of a next_url value. Feeding
// them back into the originating call reproduces the API's own pagination.
func NextURLValues(nextURL string) (url.Values, error) {
	if nextURL == "" {
		return url.Values{}, nil
	}

	u, err := url.Parse(nextURL)
	if err != nil {
		return nil, err
	}

	return u.Query(), nil
}

// nextOffset pulls the offset parameter out of a next_url. An empty or
// malformed URL means there is no further page.
func nextOffset(nextURL string) (int, bool) {
	values, err := NextURLValues(nextURL)
	if err != nil || nextURL == "" {
		return 0, false
	}

	offset, err := strconv.Atoi(values.Get("offset"))
	if err != nil {
		return 0, false
	}

	return offset, true
}
