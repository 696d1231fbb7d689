// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	pixiv "github.com/TheFunny/async-pixiv"
)

var (
	searchKind     string
	searchSort     string
	searchTarget   string
	searchDuration string
	searchOffset   int
)

var searchCmd = &cobra.Command{
	Use:   "search <word>",
	Short: "Search for illustrations, novels or users",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchKind, "kind", "k", "illust", "what to search: illust, novel or user")
	searchCmd.Flags().StringVarP(&searchSort, "sort", "s", "", "result order: date_desc, date_asc, popular_desc, popular_asc")
	searchCmd.Flags().StringVarP(&searchTarget, "target", "t", "", "match target: partial, exact, title, keyword, text")
	searchCmd.Flags().StringVarP(&searchDuration, "duration", "d", "", "window: within_last_day, within_last_week, within_last_month")
	searchCmd.Flags().IntVarP(&searchOffset, "offset", "o", 0, "result offset for paging")

	rootCmd.AddCommand(searchCmd)
}

func searchOptions() []pixiv.SearchOption {
	var opts []pixiv.SearchOption

	if sort := pixiv.ParseSearchSort(searchSort); sort != "" {
		opts = append(opts, pixiv.WithSort(sort))
	}

	if target := pixiv.ParseSearchTarget(searchTarget); target != "" {
		opts = append(opts, pixiv.WithTarget(target))
	}

	if searchDuration != "" {
		opts = append(opts, pixiv.WithDuration(pixiv.SearchDuration(searchDuration)))
	}

	if searchOffset > 0 {
		opts = append(opts, pixiv.WithOffset(searchOffset))
	}

	return opts
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	word := args[0]

	switch searchKind {
	case "illust":
		page, err := client.Illust.Search(ctx, word, searchOptions()...)
		if err != nil {
			return err
		}

		for _, illust := range page.Illusts {
			fmt.Printf("%d\t%s\t%s\t%s\n", illust.ID, illust.Type, illust.User.Name, illust.Title)
		}

		printNextOffset(page.NextOffset())

	case "novel":
		page, err := client.Novel.Search(ctx, word, searchOptions()...)
		if err != nil {
			return err
		}

		for _, novel := range page.Novels {
			fmt.Printf("%d\t%s\t%s\n", novel.ID, novel.User.Name, novel.Title)
		}

		printNextOffset(page.NextOffset())

	case "user":
		page, err := client.User.Search(ctx, word, searchOffset)
		if err != nil {
			return err
		}

		for _, preview := range page.UserPreviews {
			fmt.Printf("%d\t%s\t@%s\n", preview.User.ID, preview.User.Name, preview.User.Account)
		}

		printNextOffset(page.NextOffset())

	default:
		return fmt.Errorf("unknown search kind %q", searchKind)
	}

	return nil
}

func printNextOffset(offset int, more bool) {
	if more {
		fmt.Printf("next page: --offset %d\n", offset)
	}
}
