// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package pixiv

import (
	"context"

	"github.com/TheFunny/async-pixiv/model"
)

// UserService exposes the user profile and social-graph operations of the
// App API. Access it through Client.User.
type UserService struct {
	client *Client
}

// Detail fetches a user's full profile, publicity settings and workspace.
func (s *UserService) Detail(ctx context.Context, userID uint64) (*model.UserDetail, error) {
	var detail model.UserDetail
	if err := s.client.getJSON(ctx, userDetailURL(s.client.baseURL, userID, s.client.filter), &detail); err != nil {
		return nil, err
	}

	return &detail, nil
}

// Illusts fetches a page of a user's posted works. workType narrows to
// illustrations or manga; empty means both.
func (s *UserService) Illusts(ctx context.Context, userID uint64, workType model.IllustType, offset int) (*model.IllustsPage, error) {
	var page model.IllustsPage
	if err := s.client.getJSON(ctx, userIllustsURL(s.client.baseURL, userID, string(workType), offset), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Novels fetches a page of a user's posted novels.
func (s *UserService) Novels(ctx context.Context, userID uint64, offset int) (*model.NovelsPage, error) {
	var page model.NovelsPage
	if err := s.client.getJSON(ctx, userNovelsURL(s.client.baseURL, userID, offset), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// BookmarkedIllusts fetches a page of works a user bookmarked, optionally
// narrowed to one bookmark tag. Bookmark listings page by max_bookmark_id
// taken from the previous page's next URL, not by offset. Private bookmarks
// are only visible on the authenticated user's own listing.
func (s *UserService) BookmarkedIllusts(ctx context.Context, userID uint64, restrict Restrict, maxBookmarkID uint64, tag string) (*model.IllustsPage, error) {
	if restrict == "" {
		restrict = RestrictPublic
	}

	rawURL := userBookmarksIllustURL(s.client.baseURL, userID, restrict, maxBookmarkID, tag)

	var page model.IllustsPage
	if err := s.client.getJSON(ctx, rawURL, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// BookmarkedNovels fetches a page of novels a user bookmarked; see
// BookmarkedIllusts for the paging rules.
func (s *UserService) BookmarkedNovels(ctx context.Context, userID uint64, restrict Restrict, maxBookmarkID uint64, tag string) (*model.NovelsPage, error) {
	if restrict == "" {
		restrict = RestrictPublic
	}

	rawURL := userBookmarksNovelURL(s.client.baseURL, userID, restrict, maxBookmarkID, tag)

	var page model.NovelsPage
	if err := s.client.getJSON(ctx, rawURL, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Related fetches users similar to the given one.
func (s *UserService) Related(ctx context.Context, seedUserID uint64, offset int) (*model.UserPreviewsPage, error) {
	var page model.UserPreviewsPage
	if err := s.client.getJSON(ctx, userRelatedURL(s.client.baseURL, seedUserID, offset), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Search finds users by name or account handle.
func (s *UserService) Search(ctx context.Context, word string, offset int) (*model.UserPreviewsPage, error) {
	var page model.UserPreviewsPage
	if err := s.client.getJSON(ctx, searchUserURL(s.client.baseURL, word, offset), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Following fetches a page of the users someone follows. Private follows
// are only visible on the authenticated user's own listing.
func (s *UserService) Following(ctx context.Context, userID uint64, restrict Restrict, offset int) (*model.UserPreviewsPage, error) {
	if restrict == "" {
		restrict = RestrictPublic
	}

	var page model.UserPreviewsPage
	if err := s.client.getJSON(ctx, userFollowingURL(s.client.baseURL, userID, restrict, offset), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Followers fetches a page of the users following someone.
func (s *UserService) Followers(ctx context.Context, userID uint64, offset int) (*model.UserPreviewsPage, error) {
	var page model.UserPreviewsPage
	if err := s.client.getJSON(ctx, userFollowersURL(s.client.baseURL, userID, offset), &page); err != nil {
		return nil, err
	}

	return &page, nil
}
