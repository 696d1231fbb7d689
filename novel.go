// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package pixiv

import (
	"context"

	"github.com/TheFunny/async-pixiv/model"
)

// NovelService exposes the novel operations of the App API. Access it
// through Client.Novel.
type NovelService struct {
	client *Client
}

// Search finds novels matching word. The default query matches tags
// partially, newest first; refine with SearchOption values. Novel search
// additionally accepts the keyword and text targets.
func (s *NovelService) Search(ctx context.Context, word string, opts ...SearchOption) (*model.NovelsPage, error) {
	query := searchQuery(word, s.client.filter, TargetPartialTags, opts)

	var page model.NovelsPage
	if err := s.client.getJSON(ctx, searchNovelURL(s.client.baseURL, query), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Detail fetches the full record of a single novel.
func (s *NovelService) Detail(ctx context.Context, novelID uint64) (*model.Novel, error) {
	var detail model.NovelDetail
	if err := s.client.getJSON(ctx, novelDetailURL(s.client.baseURL, novelID), &detail); err != nil {
		return nil, err
	}

	return &detail.Novel, nil
}

// Comments fetches a page of comments on a novel.
func (s *NovelService) Comments(ctx context.Context, novelID uint64, offset int) (*model.CommentsPage, error) {
	var page model.CommentsPage
	if err := s.client.getJSON(ctx, novelCommentsURL(s.client.baseURL, novelID, offset), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Series fetches a series record plus a page of the novels in it, ordered
// by position. lastOrder pages through long series; pass the position of the
// last novel already seen, or zero for the first page.
func (s *NovelService) Series(ctx context.Context, seriesID uint64, lastOrder int) (*model.NovelSeriesPage, error) {
	var page model.NovelSeriesPage
	if err := s.client.getJSON(ctx, novelSeriesURL(s.client.baseURL, seriesID, lastOrder), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Recommended fetches the personalized novel recommendation feed. Anonymous
// clients transparently use the logged-out variant of the endpoint.
func (s *NovelService) Recommended(ctx context.Context, offset int) (*model.RecommendedNovelsPage, error) {
	rawURL := novelRecommendedURL(s.client.baseURL, !s.client.Anonymous(), offset)

	var page model.RecommendedNovelsPage
	if err := s.client.getJSON(ctx, rawURL, &page); err != nil {
		return nil, err
	}

	return &page, nil
}
