// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	pixiv "github.com/TheFunny/async-pixiv"
	"github.com/TheFunny/async-pixiv/model"
)

var downloadDir string

var downloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Download every page of a static work",
	Args:  cobra.ExactArgs(1),
	RunE:  runDownload,
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadDir, "dir", "d", "", "target directory (defaults to the configured one)")

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	dir := downloadDir
	if dir == "" {
		dir = cfg.Download.Directory
	}

	illust, err := client.Illust.Detail(ctx, id)
	if err != nil {
		return err
	}

	if illust.Type == model.TypeUgoira {
		return errors.New("this work is animated, use the ugoira command")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for i, pageURL := range illust.AllPageURLs() {
		name := fmt.Sprintf("%d_p%d%s", id, i, path.Ext(pageURL))
		target := filepath.Join(dir, name)

		file, err := os.Create(target) // #nosec G304 -- User-chosen download path.
		if err != nil {
			return err
		}

		written, err := client.DownloadTo(ctx, pageURL, file)
		file.Close()

		if err != nil {
			return err
		}

		log.Info().Str("file", target).Int64("bytes", written).Msg("Downloaded page")
	}

	return nil
}

// ugoiraHint recognizes the wrong-downloader error so commands can point the
// user at the right one.
func ugoiraHint(err error) error {
	if errors.Is(err, pixiv.ErrUgoiraArtwork) {
		return errors.New("this work is animated, use the ugoira command")
	}

	if errors.Is(err, pixiv.ErrNotUgoiraArtwork) {
		return errors.New("this work is static, use the download command")
	}

	return err
}
