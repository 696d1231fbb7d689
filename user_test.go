// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package pixiv

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDetail(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/user/detail", func(w http.ResponseWriter, r *http.Request) {
		requireAppHeaders(t, r, true)
		assert.Equal(t, "660788", r.URL.Query().Get("user_id"))
		assert.Equal(t, string(FilterForIOS), r.URL.Query().Get("filter"))

		w.Write([]byte(`{
			"user": {"id": 660788, "name": "Artist", "account": "artist"},
			"profile": {"total_illusts": 120, "is_premium": true},
			"profile_publicity": {"gender": "public"},
			"workspace": {"pc": "something"}
		}`))
	})

	client, _ := newTestClient(t, mux, true)

	detail, err := client.User.Detail(t.Context(), 660788)
	require.NoError(t, err)

	assert.Equal(t, "artist", detail.User.Account)
	assert.Equal(t, 120, detail.Profile.TotalIllusts)
	assert.True(t, detail.Profile.IsPremium)
	assert.Equal(t, "https://www.pixiv.net/users/660788", detail.User.WebURL())
}

func TestUserIllustsTyped(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/user/illusts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "manga", r.URL.Query().Get("type"))

		w.Write([]byte(`{"illusts": [{"id": 7, "type": "manga"}], "next_url": ""}`))
	})

	client, _ := newTestClient(t, mux, true)

	page, err := client.User.Illusts(t.Context(), 660788, "manga", 0)
	require.NoError(t, err)
	require.Len(t, page.Illusts, 1)

	_, more := page.NextOffset()
	assert.False(t, more)
}

func TestUserBookmarksDefaultRestrict(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/user/bookmarks/illust", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, string(RestrictPublic), r.URL.Query().Get("restrict"))

		w.Write([]byte(`{"illusts": [], "next_url": ""}`))
	})

	client, _ := newTestClient(t, mux, true)

	_, err := client.User.BookmarkedIllusts(t.Context(), 660788, "", 0, "")
	require.NoError(t, err)
}

func TestUserSearch(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/search/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gomennasai", r.URL.Query().Get("word"))

		w.Write([]byte(`{
			"user_previews": [
				{"user": {"id": 1, "name": "A"}, "illusts": [{"id": 11}]},
				{"user": {"id": 2, "name": "B"}, "illusts": []}
			],
			"next_url": ""
		}`))
	})

	client, _ := newTestClient(t, mux, true)

	page, err := client.User.Search(t.Context(), "gomennasai", 0)
	require.NoError(t, err)
	require.Len(t, page.UserPreviews, 2)
	assert.Equal(t, uint64(11), page.UserPreviews[0].Illusts[0].ID)
}

func TestUserFollowingAndFollowers(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/user/following", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, string(RestrictPrivate), r.URL.Query().Get("restrict"))
		w.Write([]byte(`{"user_previews": [], "next_url": ""}`))
	})
	mux.HandleFunc("/v1/user/follower", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user_previews": [], "next_url": ""}`))
	})

	client, _ := newTestClient(t, mux, true)

	_, err := client.User.Following(t.Context(), 660788, RestrictPrivate, 0)
	require.NoError(t, err)

	_, err = client.User.Followers(t.Context(), 660788, 0)
	require.NoError(t, err)
}
