// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

// Package config loads the pixiv CLI configuration from a YAML file,
// a .env file and environment variables, in that order of precedence
// (later sources win).
package config

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	pixiv "github.com/TheFunny/async-pixiv"
)

// Config holds everything the CLI needs to build a client.
type Config struct {
	Auth struct {
		RefreshToken string `env:"PIXIV_REFRESH_TOKEN,overwrite" yaml:"refreshToken"`
	} `yaml:"auth"`

	Request struct {
		AcceptLanguage string        `env:"PIXIV_ACCEPT_LANGUAGE,overwrite" yaml:"acceptLanguage"`
		RateLimit      float64       `env:"PIXIV_RATE_LIMIT,overwrite"      yaml:"rateLimit"`
		RateBurst      int           `env:"PIXIV_RATE_BURST,overwrite"      yaml:"rateBurst"`
		Timeout        time.Duration `env:"PIXIV_TIMEOUT,overwrite"         yaml:"timeout"`
	} `yaml:"request"`

	Cache struct {
		Enabled bool          `env:"PIXIV_CACHE,overwrite"      yaml:"enabled"`
		Size    int           `env:"PIXIV_CACHE_SIZE,overwrite" yaml:"size"`
		TTL     time.Duration `env:"PIXIV_CACHE_TTL,overwrite"  yaml:"ttl"`
	} `yaml:"cache"`

	Download struct {
		Directory string `env:"PIXIV_DOWNLOAD_DIR,overwrite" yaml:"directory"`
	} `yaml:"download"`

	Log struct {
		Level string `env:"PIXIV_LOG_LEVEL,overwrite" yaml:"logLevel"`
	} `yaml:"log"`
}

// Load builds the configuration: defaults first, then the YAML file at
// configPath (skipped when empty or absent), then a .env file, then real
// environment variables.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	if err := cfg.readYAML(configPath); err != nil {
		return nil, err
	}

	// A missing .env file is fine; variables already present in the
	// environment are not overwritten.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	if err := readEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	cfg.Request.AcceptLanguage = "en-US"
	cfg.Request.RateLimit = 2
	cfg.Request.RateBurst = 5
	cfg.Request.Timeout = 30 * time.Second
	cfg.Cache.Enabled = true
	cfg.Cache.Size = 128
	cfg.Cache.TTL = 30 * time.Minute
	cfg.Download.Directory = "."
	cfg.Log.Level = "info"
}

func (cfg *Config) readYAML(configPath string) error {
	if configPath == "" {
		return nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Debug().
			Str("path", configPath).
			Msg("No YAML configuration file found, skipping")

		return nil
	}

	raw, err := os.ReadFile(configPath) // #nosec G304 -- Only loading a config file
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", configPath, err)
	}

	return nil
}

// NewClient assembles a pixiv client from the configuration.
func (cfg *Config) NewClient() (*pixiv.Client, error) {
	opts := []pixiv.Option{
		pixiv.WithHTTPClient(&http.Client{Timeout: cfg.Request.Timeout}),
		pixiv.WithAcceptLanguage(cfg.Request.AcceptLanguage),
		pixiv.WithRateLimit(cfg.Request.RateLimit, cfg.Request.RateBurst),
	}

	if cfg.Cache.Enabled {
		opts = append(opts, pixiv.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	} else {
		opts = append(opts, pixiv.WithCache(0, 0))
	}

	return pixiv.New(cfg.Auth.RefreshToken, opts...)
}
