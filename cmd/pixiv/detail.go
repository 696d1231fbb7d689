// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var detailKind string

var detailCmd = &cobra.Command{
	Use:   "detail <id>",
	Short: "Show the details of a work or user",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetail,
}

func init() {
	detailCmd.Flags().StringVarP(&detailKind, "kind", "k", "illust", "what the ID names: illust, novel or user")

	rootCmd.AddCommand(detailCmd)
}

func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q: %w", arg, err)
	}

	return id, nil
}

func runDetail(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	switch detailKind {
	case "illust":
		illust, err := client.Illust.Detail(ctx, id)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%d)\n", illust.Title, illust.ID)
		fmt.Printf("by %s (@%s)\n", illust.User.Name, illust.User.Account)
		fmt.Printf("type: %s  pages: %d  size: %dx%d\n", illust.Type, illust.PageCount, illust.Width, illust.Height)
		fmt.Printf("views: %d  bookmarks: %d  r18: %v\n", illust.TotalView, illust.TotalBookmarks, illust.IsR18())

		for _, tag := range illust.Tags {
			if tag.TranslatedName != "" {
				fmt.Printf("  #%s (%s)\n", tag.Name, tag.TranslatedName)
			} else {
				fmt.Printf("  #%s\n", tag.Name)
			}
		}

		fmt.Println(illust.WebURL())

	case "novel":
		novel, err := client.Novel.Detail(ctx, id)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%d)\n", novel.Title, novel.ID)
		fmt.Printf("by %s (@%s)\n", novel.User.Name, novel.User.Account)
		fmt.Printf("length: %d characters  bookmarks: %d\n", novel.TextLength, novel.TotalBookmarks)

		if novel.Series != nil {
			fmt.Printf("series: %s (%d)\n", novel.Series.Title, novel.Series.ID)
		}

		fmt.Println(novel.WebURL())

	case "user":
		detail, err := client.User.Detail(ctx, id)
		if err != nil {
			return err
		}

		fmt.Printf("%s (@%s)\n", detail.User.Name, detail.User.Account)
		fmt.Printf("illusts: %d  manga: %d  novels: %d\n",
			detail.Profile.TotalIllusts, detail.Profile.TotalManga, detail.Profile.TotalNovels)
		fmt.Printf("following: %d\n", detail.Profile.TotalFollowUsers)
		fmt.Println(detail.User.WebURL())

	default:
		return fmt.Errorf("unknown detail kind %q", detailKind)
	}

	return nil
}
