// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package model

import (
	"strconv"
	"strings"
	"time"
)

// IllustType distinguishes the kinds of posted works.
type IllustType string

const (
	TypeIllust IllustType = "illust"
	TypeManga  IllustType = "manga"
	TypeUgoira IllustType = "ugoira"
	TypeNovel  IllustType = "novel"
)

// ParseIllustType converts a string into its corresponding IllustType value.
//
// Normalizes the string to be case-insensitive before parsing. An empty
// IllustType is returned for values the API does not know.
func ParseIllustType(s string) IllustType {
	switch strings.ToLower(s) {
	case "illust", "illustration":
		return TypeIllust
	case "manga":
		return TypeManga
	case "ugoira":
		return TypeUgoira
	case "novel":
		return TypeNovel
	}

	return ""
}

// nsfwSanityLevel is the sanity_level above which a work is age restricted.
const nsfwSanityLevel = 5

// MetaSinglePage carries the original-resolution URL for single-page works.
type MetaSinglePage struct {
	OriginalImageURL string `json:"original_image_url,omitempty"`
}

// MetaPage is one page of a multi-page work.
type MetaPage struct {
	ImageURLs ImageURLs `json:"image_urls"`
}

// Illust is a posted artwork: a static image set, manga or ugoira.
type Illust struct {
	ID                  uint64         `json:"id"`
	Title               string         `json:"title"`
	Type                IllustType     `json:"type"`
	ImageURLs           ImageURLs      `json:"image_urls"`
	Caption             string         `json:"caption"`
	Restrict            int            `json:"restrict"`
	User                User           `json:"user"`
	Tags                []Tag          `json:"tags"`
	Tools               []string       `json:"tools"`
	CreateDate          time.Time      `json:"create_date"`
	PageCount           int            `json:"page_count"`
	Width               int            `json:"width"`
	Height              int            `json:"height"`
	SanityLevel         int            `json:"sanity_level"`
	XRestrict           int            `json:"x_restrict"`
	Series              *Series        `json:"series"`
	MetaSinglePage      MetaSinglePage `json:"meta_single_page"`
	MetaPages           []MetaPage     `json:"meta_pages"`
	TotalView           int            `json:"total_view"`
	TotalBookmarks      int            `json:"total_bookmarks"`
	IsBookmarked        bool           `json:"is_bookmarked"`
	Visible             bool           `json:"visible"`
	IsMuted             bool           `json:"is_muted"`
	TotalComments       int            `json:"total_comments,omitempty"`
	CommentAccessControl int           `json:"comment_access_control,omitempty"`
}

// IsNSFW reports whether the work carries an age-restricted sanity level.
func (i *Illust) IsNSFW() bool {
	return i.SanityLevel > nsfwSanityLevel
}

// IsR18 reports whether the work's leading tag marks it explicit.
//
// pixiv places the rating tag first when present; the check normalizes
// "R-18" and "R18" spellings.
func (i *Illust) IsR18() bool {
	if len(i.Tags) == 0 {
		return false
	}

	normalized := strings.ReplaceAll(strings.ToUpper(i.Tags[0].Name), "-", "")

	return normalized == "R18" || normalized == "R18G"
}

// WebURL returns the canonical pixiv web page for the artwork.
func (i *Illust) WebURL() string {
	return "https://www.pixiv.net/artworks/" + formatID(i.ID)
}

// FirstPageURL returns the best URL for the first (or only) page, preferring
// the single-page original, then the bundle's original, then large, then
// medium.
func (i *Illust) FirstPageURL() string {
	if i.MetaSinglePage.OriginalImageURL != "" {
		return i.MetaSinglePage.OriginalImageURL
	}

	return i.ImageURLs.Best()
}

// AllPageURLs returns one URL per page of a multi-page work, each resolved
// through the original-then-large fallback chain. Single-page works yield a
// one-element slice via FirstPageURL.
func (i *Illust) AllPageURLs() []string {
	if len(i.MetaPages) == 0 {
		return []string{i.FirstPageURL()}
	}

	urls := make([]string, 0, len(i.MetaPages))
	for _, page := range i.MetaPages {
		urls = append(urls, page.ImageURLs.Best())
	}

	return urls
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
