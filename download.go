// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package pixiv

import (
	"context"
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/TheFunny/async-pixiv/requests"
)

// The image CDN checks the Referer header and returns 403 without it.
const pixivReferer = "https://www.pixiv.net/"

// downloadConcurrency bounds the fan-out of multi-page downloads.
const downloadConcurrency = 4

// Download fetches raw media bytes from the pixiv CDN.
//
// This is for URLs taken from API responses (image pages, ugoira archives,
// profile images); it attaches the Referer the CDN demands and bypasses the
// response cache.
func (c *Client) Download(ctx context.Context, rawURL string) ([]byte, error) {
	resp, body, err := c.backend.Do(ctx, requests.RequestOptions{
		Method:  http.MethodGet,
		URL:     rawURL,
		Headers: mediaHeaders(),
		NoCache: true,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, requests.NewAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// DownloadTo streams media from the pixiv CDN into w and returns the number
// of bytes written.
func (c *Client) DownloadTo(ctx context.Context, rawURL string, w io.Writer) (int64, error) {
	body, err := c.Download(ctx, rawURL)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(body)

	return int64(n), err
}

// downloadAll fetches every URL concurrently, preserving input order in the
// result. The first failure cancels the remaining fetches.
func (c *Client) downloadAll(ctx context.Context, urls []string) ([][]byte, error) {
	pages := make([][]byte, len(urls))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(downloadConcurrency)

	for i, pageURL := range urls {
		group.Go(func() error {
			body, err := c.Download(ctx, pageURL)
			if err != nil {
				return err
			}

			pages[i] = body

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return pages, nil
}

func mediaHeaders() http.Header {
	headers := http.Header{}
	headers.Set("Referer", pixivReferer)
	headers.Set("User-Agent", randomUserAgent())

	return headers
}
