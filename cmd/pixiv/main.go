// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

// Command pixiv queries the pixiv App API from the command line.
package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	pixiv "github.com/TheFunny/async-pixiv"
	"github.com/TheFunny/async-pixiv/config"
)

var (
	cfg    *config.Config
	client *pixiv.Client

	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "pixiv",
	Short:         "Query the pixiv App API from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `A command line front for the pixiv App API: search works, inspect details,
download images and reassemble animated works.

Authentication uses the refresh token of a pixiv account, taken from the
PIXIV_REFRESH_TOKEN environment variable, a .env file or the YAML
configuration. Without one the commands run anonymously where pixiv
permits it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		var err error

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		applyLogLevel()

		client, err = cfg.NewClient()

		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func setupLogging() {
	writer := zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}

	log.Logger = log.Output(writer)
}

func applyLogLevel() {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)

		return
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
