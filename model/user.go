// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package model

// User is the compact user record embedded in works, comments and previews.
type User struct {
	ID               uint64           `json:"id"`
	Name             string           `json:"name"`
	Account          string           `json:"account"`
	ProfileImageURLs ProfileImageURLs `json:"profile_image_urls"`
	Comment          string           `json:"comment,omitempty"`
	IsFollowed       bool             `json:"is_followed,omitempty"`
}

// WebURL returns the canonical pixiv web page for the user.
func (u User) WebURL() string {
	return "https://www.pixiv.net/users/" + formatID(u.ID)
}

// Profile is the extended profile block returned by the user detail endpoint.
type Profile struct {
	Webpage                    string `json:"webpage,omitempty"`
	Gender                     string `json:"gender"`
	Birth                      string `json:"birth"`
	BirthDay                   string `json:"birth_day"`
	BirthYear                  int    `json:"birth_year"`
	Region                     string `json:"region"`
	AddressID                  int    `json:"address_id"`
	CountryCode                string `json:"country_code"`
	Job                        string `json:"job"`
	JobID                      int    `json:"job_id"`
	TotalFollowUsers           int    `json:"total_follow_users"`
	TotalMypixivUsers          int    `json:"total_mypixiv_users"`
	TotalIllusts               int    `json:"total_illusts"`
	TotalManga                 int    `json:"total_manga"`
	TotalNovels                int    `json:"total_novels"`
	TotalIllustBookmarksPublic int    `json:"total_illust_bookmarks_public"`
	TotalIllustSeries          int    `json:"total_illust_series"`
	TotalNovelSeries           int    `json:"total_novel_series"`
	BackgroundImageURL         string `json:"background_image_url,omitempty"`
	TwitterAccount             string `json:"twitter_account,omitempty"`
	TwitterURL                 string `json:"twitter_url,omitempty"`
	PawooURL                   string `json:"pawoo_url,omitempty"`
	IsPremium                  bool   `json:"is_premium"`
	IsUsingCustomProfileImage  bool   `json:"is_using_custom_profile_image"`
}

// ProfilePublicity describes which profile fields are publicly visible.
// Each value is one of "public", "private" or "mypixiv_only".
type ProfilePublicity struct {
	Gender   string `json:"gender"`
	Region   string `json:"region"`
	BirthDay string `json:"birth_day"`
	BirthYear string `json:"birth_year"`
	Job      string `json:"job"`
	Pawoo    bool   `json:"pawoo"`
}

// Workspace is the free-form workspace questionnaire on a user's profile.
type Workspace struct {
	PC                string `json:"pc,omitempty"`
	Monitor           string `json:"monitor,omitempty"`
	Tool              string `json:"tool,omitempty"`
	Scanner           string `json:"scanner,omitempty"`
	Tablet            string `json:"tablet,omitempty"`
	Mouse             string `json:"mouse,omitempty"`
	Printer           string `json:"printer,omitempty"`
	Desktop           string `json:"desktop,omitempty"`
	Music             string `json:"music,omitempty"`
	Desk              string `json:"desk,omitempty"`
	Chair             string `json:"chair,omitempty"`
	Comment           string `json:"comment,omitempty"`
	WorkspaceImageURL string `json:"workspace_image_url,omitempty"`
}

// UserDetail is the composite payload of the user detail endpoint.
type UserDetail struct {
	User             User             `json:"user"`
	Profile          Profile          `json:"profile"`
	ProfilePublicity ProfilePublicity `json:"profile_publicity"`
	Workspace        Workspace        `json:"workspace"`
}

// UserPreview pairs a user with a sample of their recent works, as returned
// by user search, related users and follower listings.
type UserPreview struct {
	User    User     `json:"user"`
	Illusts []Illust `json:"illusts"`
	Novels  []Novel  `json:"novels"`
	IsMuted bool     `json:"is_muted"`
}

// Account is the authenticated account payload returned by the token
// endpoint. IDs are strings there, unlike everywhere else in the API.
type Account struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Account          string           `json:"account"`
	MailAddress      string           `json:"mail_address"`
	IsPremium        bool             `json:"is_premium"`
	IsMailAuthorized bool             `json:"is_mail_authorized"`
	XRestrict        int              `json:"x_restrict"`
	ProfileImageURLs ProfileImageURLs `json:"profile_image_urls"`
}
