// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package model

import "time"

// Novel is a posted text work with associated metadata.
type Novel struct {
	ID                   uint64    `json:"id"`
	Title                string    `json:"title"`
	Caption              string    `json:"caption"`
	Restrict             int       `json:"restrict"`
	XRestrict            int       `json:"x_restrict"`
	IsOriginal           bool      `json:"is_original"`
	ImageURLs            ImageURLs `json:"image_urls"`
	CreateDate           time.Time `json:"create_date"`
	Tags                 []Tag     `json:"tags"`
	PageCount            int       `json:"page_count"`
	TextLength           int       `json:"text_length"`
	User                 User      `json:"user"`
	Series               *Series   `json:"series"`
	IsBookmarked         bool      `json:"is_bookmarked"`
	TotalBookmarks       int       `json:"total_bookmarks"`
	TotalView            int       `json:"total_view"`
	Visible              bool      `json:"visible"`
	TotalComments        int       `json:"total_comments"`
	IsMuted              bool      `json:"is_muted"`
	IsMypixivOnly        bool      `json:"is_mypixiv_only"`
	IsXRestricted        bool      `json:"is_x_restricted"`
	CommentAccessControl int       `json:"comment_access_control"`
}

// WebURL returns the canonical pixiv web page for the novel.
func (n *Novel) WebURL() string {
	return "https://www.pixiv.net/novel/show.php?id=" + formatID(n.ID)
}

// NovelSeriesDetail is the payload of the novel series endpoint.
type NovelSeriesDetail struct {
	ID             uint64    `json:"id"`
	Title          string    `json:"title"`
	Caption        string    `json:"caption"`
	IsOriginal     bool      `json:"is_original"`
	IsConcluded    bool      `json:"is_concluded"`
	ContentCount   int       `json:"content_count"`
	TotalCharacter int       `json:"total_character_count"`
	User           User      `json:"user"`
	DisplayText    string    `json:"display_text"`
	CreateDate     time.Time `json:"create_date,omitempty"`
}
