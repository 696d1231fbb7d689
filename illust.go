// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package pixiv

import (
	"context"
	"fmt"

	"github.com/TheFunny/async-pixiv/model"
)

// IllustService exposes the illustration, manga and ugoira operations of the
// App API. Access it through Client.Illust.
type IllustService struct {
	client *Client
}

// Search finds works matching word. The default query matches tags
// partially, newest first; refine with SearchOption values.
func (s *IllustService) Search(ctx context.Context, word string, opts ...SearchOption) (*model.IllustsPage, error) {
	query := searchQuery(word, s.client.filter, TargetPartialTags, opts)

	var page model.IllustsPage
	if err := s.client.getJSON(ctx, searchIllustURL(s.client.baseURL, query), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Detail fetches the full record of a single work.
func (s *IllustService) Detail(ctx context.Context, illustID uint64) (*model.Illust, error) {
	var detail model.IllustDetail
	if err := s.client.getJSON(ctx, illustDetailURL(s.client.baseURL, illustID), &detail); err != nil {
		return nil, err
	}

	return &detail.Illust, nil
}

// Comments fetches a page of comments on a work.
func (s *IllustService) Comments(ctx context.Context, illustID uint64, offset int) (*model.CommentsPage, error) {
	var page model.CommentsPage
	if err := s.client.getJSON(ctx, illustCommentsURL(s.client.baseURL, illustID, offset), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Related fetches works similar to the given one. Seed IDs are works already
// shown to the user; the API avoids repeating them across pages.
func (s *IllustService) Related(ctx context.Context, illustID uint64, seedIDs []uint64, offset int) (*model.IllustsPage, error) {
	var page model.IllustsPage
	if err := s.client.getJSON(ctx, illustRelatedURL(s.client.baseURL, illustID, seedIDs, offset), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Recommended fetches the personalized recommendation feed. Anonymous
// clients transparently use the logged-out variant of the endpoint.
func (s *IllustService) Recommended(ctx context.Context, offset int) (*model.RecommendedPage, error) {
	rawURL := illustRecommendedURL(s.client.baseURL, !s.client.Anonymous(), offset)

	var page model.RecommendedPage
	if err := s.client.getJSON(ctx, rawURL, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// New fetches the newest public works of the given type, site-wide.
func (s *IllustService) New(ctx context.Context, contentType model.IllustType, offset int) (*model.IllustsPage, error) {
	if contentType == "" {
		contentType = model.TypeIllust
	}

	var page model.IllustsPage
	if err := s.client.getJSON(ctx, illustNewURL(s.client.baseURL, string(contentType), offset), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Follow fetches the feed of works by followed users. Requires an
// authenticated client.
func (s *IllustService) Follow(ctx context.Context, restrict Restrict, offset int) (*model.IllustsPage, error) {
	if s.client.Anonymous() {
		return nil, ErrAnonymous
	}

	if restrict == "" {
		restrict = RestrictPublic
	}

	var page model.IllustsPage
	if err := s.client.getJSON(ctx, illustFollowURL(s.client.baseURL, restrict, offset), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// UgoiraMetadata fetches the frame-timing manifest of an animated work.
func (s *IllustService) UgoiraMetadata(ctx context.Context, illustID uint64) (*model.UgoiraMetadata, error) {
	var resp model.UgoiraMetadataResponse
	if err := s.client.getJSON(ctx, ugoiraMetadataURL(s.client.baseURL, illustID), &resp); err != nil {
		return nil, err
	}

	return &resp.Metadata, nil
}

// Download fetches the full-resolution image bytes of every page of a
// static work, in page order.
//
// Animated works cannot be fetched this way; Download returns
// ErrUgoiraArtwork for them, pointing the caller at DownloadUgoira.
func (s *IllustService) Download(ctx context.Context, illustID uint64) ([][]byte, error) {
	illust, err := s.Detail(ctx, illustID)
	if err != nil {
		return nil, err
	}

	if illust.Type == model.TypeUgoira {
		return nil, fmt.Errorf("work %d: %w", illustID, ErrUgoiraArtwork)
	}

	return s.client.downloadAll(ctx, illust.AllPageURLs())
}

// DownloadUgoira fetches an animated work: the frame manifest, then the ZIP
// archive of stills, returning frames in manifest order with their delays.
//
// Static works cannot be fetched this way; DownloadUgoira returns
// ErrNotUgoiraArtwork for them, pointing the caller at Download.
func (s *IllustService) DownloadUgoira(ctx context.Context, illustID uint64) (*Ugoira, error) {
	illust, err := s.Detail(ctx, illustID)
	if err != nil {
		return nil, err
	}

	if illust.Type != model.TypeUgoira {
		return nil, fmt.Errorf("work %d: %w", illustID, ErrNotUgoiraArtwork)
	}

	metadata, err := s.UgoiraMetadata(ctx, illustID)
	if err != nil {
		return nil, err
	}

	archiveURL := metadata.ZipURLs.Best()
	if archiveURL == "" {
		return nil, fmt.Errorf("work %d: manifest carries no archive URL", illustID)
	}

	archive, err := s.client.Download(ctx, archiveURL)
	if err != nil {
		return nil, err
	}

	return newUgoira(illustID, *metadata, archive)
}
