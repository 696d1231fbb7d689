// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var ugoiraOut string

var ugoiraCmd = &cobra.Command{
	Use:   "ugoira <id>",
	Short: "Download an animated work and assemble it into a GIF",
	Args:  cobra.ExactArgs(1),
	RunE:  runUgoira,
}

func init() {
	ugoiraCmd.Flags().StringVarP(&ugoiraOut, "out", "o", "", "output file (defaults to <id>.gif in the download directory)")

	rootCmd.AddCommand(ugoiraCmd)
}

func runUgoira(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ugoira, err := client.Illust.DownloadUgoira(ctx, id)
	if err != nil {
		return ugoiraHint(err)
	}

	log.Info().
		Int("frames", len(ugoira.Frames)).
		Dur("duration", ugoira.Duration()).
		Msg("Downloaded ugoira")

	target := ugoiraOut
	if target == "" {
		target = filepath.Join(cfg.Download.Directory, fmt.Sprintf("%d.gif", id))
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	file, err := os.Create(target) // #nosec G304 -- User-chosen output path.
	if err != nil {
		return err
	}
	defer file.Close()

	if err := ugoira.EncodeGIF(file); err != nil {
		return err
	}

	log.Info().Str("file", target).Msg("Encoded GIF")

	return nil
}
