// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package pixiv

import (
	"fmt"
	"net/url"
	"strconv"
)

// Default hosts for the mobile App API and its OAuth token service. Both can
// be overridden per client, which the tests use to point at local servers.
const (
	DefaultAppBaseURL   = "https://app-api.pixiv.net"
	DefaultOAuthBaseURL = "https://oauth.secure.pixiv.net"
)

func authTokenURL(base string) string {
	return base + "/auth/token"
}

// apiURL joins a base host, an endpoint path and encoded query parameters.
// url.Values.Encode sorts keys, so the output is deterministic.
func apiURL(base, path string, query url.Values) string {
	if len(query) == 0 {
		return base + path
	}

	return base + path + "?" + query.Encode()
}

func formatUint(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func addOffset(query url.Values, offset int) {
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}
}

// GET endpoints

func searchIllustURL(base string, query url.Values) string {
	return apiURL(base, "/v1/search/illust", query)
}

func searchNovelURL(base string, query url.Values) string {
	return apiURL(base, "/v1/search/novel", query)
}

func searchUserURL(base, word string, offset int) string {
	query := url.Values{}
	query.Set("word", word)
	addOffset(query, offset)

	return apiURL(base, "/v1/search/user", query)
}

func illustDetailURL(base string, illustID uint64) string {
	return fmt.Sprintf("%s/v1/illust/detail?illust_id=%s", base, formatUint(illustID))
}

func illustCommentsURL(base string, illustID uint64, offset int) string {
	query := url.Values{}
	query.Set("illust_id", formatUint(illustID))
	addOffset(query, offset)

	return apiURL(base, "/v1/illust/comments", query)
}

// illustRelatedURL builds the related-works URL. Seed IDs are works the
// caller already saw; the API uses them to avoid repeats across pages.
func illustRelatedURL(base string, illustID uint64, seedIDs []uint64, offset int) string {
	query := url.Values{}
	query.Set("illust_id", formatUint(illustID))

	for _, seedID := range seedIDs {
		query.Add("seed_illust_ids[]", formatUint(seedID))
	}

	addOffset(query, offset)

	return apiURL(base, "/v2/illust/related", query)
}

// illustRecommendedURL picks the authenticated or anonymous variant of the
// recommendation endpoint; the nologin one works without a bearer token.
func illustRecommendedURL(base string, authenticated bool, offset int) string {
	path := "/v1/illust/recommended-nologin"
	if authenticated {
		path = "/v1/illust/recommended"
	}

	query := url.Values{}
	query.Set("include_ranking_illusts", "true")
	addOffset(query, offset)

	return apiURL(base, path, query)
}

func illustNewURL(base string, contentType string, offset int) string {
	query := url.Values{}
	query.Set("content_type", contentType)
	addOffset(query, offset)

	return apiURL(base, "/v1/illust/new", query)
}

func illustFollowURL(base string, restrict Restrict, offset int) string {
	query := url.Values{}
	query.Set("restrict", string(restrict))
	addOffset(query, offset)

	return apiURL(base, "/v2/illust/follow", query)
}

func ugoiraMetadataURL(base string, illustID uint64) string {
	return fmt.Sprintf("%s/v1/ugoira/metadata?illust_id=%s", base, formatUint(illustID))
}

func userDetailURL(base string, userID uint64, filter SearchFilter) string {
	query := url.Values{}
	query.Set("user_id", formatUint(userID))
	query.Set("filter", string(filter))

	return apiURL(base, "/v1/user/detail", query)
}

func userIllustsURL(base string, userID uint64, workType string, offset int) string {
	query := url.Values{}
	query.Set("user_id", formatUint(userID))

	if workType != "" {
		query.Set("type", workType)
	}

	addOffset(query, offset)

	return apiURL(base, "/v1/user/illusts", query)
}

func userNovelsURL(base string, userID uint64, offset int) string {
	query := url.Values{}
	query.Set("user_id", formatUint(userID))
	addOffset(query, offset)

	return apiURL(base, "/v1/user/novels", query)
}

// Bookmark listings page by max_bookmark_id rather than offset.

func userBookmarksIllustURL(base string, userID uint64, restrict Restrict, maxBookmarkID uint64, tag string) string {
	query := url.Values{}
	query.Set("user_id", formatUint(userID))
	query.Set("restrict", string(restrict))

	if maxBookmarkID > 0 {
		query.Set("max_bookmark_id", formatUint(maxBookmarkID))
	}

	if tag != "" {
		query.Set("tag", tag)
	}

	return apiURL(base, "/v1/user/bookmarks/illust", query)
}

func userBookmarksNovelURL(base string, userID uint64, restrict Restrict, maxBookmarkID uint64, tag string) string {
	query := url.Values{}
	query.Set("user_id", formatUint(userID))
	query.Set("restrict", string(restrict))

	if maxBookmarkID > 0 {
		query.Set("max_bookmark_id", formatUint(maxBookmarkID))
	}

	if tag != "" {
		query.Set("tag", tag)
	}

	return apiURL(base, "/v1/user/bookmarks/novel", query)
}

func userRelatedURL(base string, seedUserID uint64, offset int) string {
	query := url.Values{}
	query.Set("seed_user_id", formatUint(seedUserID))
	addOffset(query, offset)

	return apiURL(base, "/v1/user/related", query)
}

func userFollowingURL(base string, userID uint64, restrict Restrict, offset int) string {
	query := url.Values{}
	query.Set("user_id", formatUint(userID))
	query.Set("restrict", string(restrict))
	addOffset(query, offset)

	return apiURL(base, "/v1/user/following", query)
}

func userFollowersURL(base string, userID uint64, offset int) string {
	query := url.Values{}
	query.Set("user_id", formatUint(userID))
	addOffset(query, offset)

	return apiURL(base, "/v1/user/follower", query)
}

func novelDetailURL(base string, novelID uint64) string {
	return fmt.Sprintf("%s/v2/novel/detail?novel_id=%s", base, formatUint(novelID))
}

func novelCommentsURL(base string, novelID uint64, offset int) string {
	query := url.Values{}
	query.Set("novel_id", formatUint(novelID))
	addOffset(query, offset)

	return apiURL(base, "/v1/novel/comments", query)
}

func novelSeriesURL(base string, seriesID uint64, lastOrder int) string {
	query := url.Values{}
	query.Set("series_id", formatUint(seriesID))

	if lastOrder > 0 {
		query.Set("last_order", strconv.Itoa(lastOrder))
	}

	return apiURL(base, "/v2/novel/series", query)
}

func novelRecommendedURL(base string, authenticated bool, offset int) string {
	path := "/v1/novel/recommended-nologin"
	if authenticated {
		path = "/v1/novel/recommended"
	}

	query := url.Values{}
	query.Set("include_ranking_novels", "true")
	addOffset(query, offset)

	return apiURL(base, path, query)
}
