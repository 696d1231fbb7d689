// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

/*
Package pixiv is a client for pixiv's mobile App API.

It covers illustration, user and novel lookups, search, feeds, media
download and the reconstruction of animated works (ugoira) from their ZIP
archive and frame-timing manifest.

Authentication uses the OAuth refresh token of a pixiv account; the access
token is refreshed automatically. A minimal session:

	package main

	import (
		"context"
		"fmt"
		"os"

		pixiv "github.com/TheFunny/async-pixiv"
	)

	func main() {
		client, err := pixiv.New(os.Getenv("PIXIV_REFRESH_TOKEN"))
		if err != nil {
			panic(err)
		}

		page, err := client.Illust.Search(context.Background(), "初音ミク",
			pixiv.WithSort(pixiv.SortPopularDesc))
		if err != nil {
			panic(err)
		}

		for _, illust := range page.Illusts {
			fmt.Println(illust.ID, illust.Title)
		}
	}

Passing an empty refresh token to New yields an anonymous client, limited to
the endpoints pixiv serves without a bearer token.
*/
package pixiv
