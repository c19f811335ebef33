package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "DJTOUR_"

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DJTOUR_CONFIG is set
//  3. env (prefix DJTOUR_), including values from a .env file
//
// The .env file is DJTOUR_ENV_FILE or ./.env; a missing file is not an error.
// Variables already present in the environment win over the .env file.
func Load(_ context.Context) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	base := New()
	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// DJTOUR_DATA_FILE -> data_file; underscores match the koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadDotEnv() error {
	path := os.Getenv(envPrefix + "ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
}

// Validate checks values that would make the dashboard unusable.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.DataFile) == "":
		return fmt.Errorf("%w: data_file must not be empty", ErrInvalidConfig)
	case c.TopN < 1:
		return fmt.Errorf("%w: top_n must be positive", ErrInvalidConfig)
	case c.MaxTopN < c.TopN:
		return fmt.Errorf("%w: max_top_n must be at least top_n", ErrInvalidConfig)
	case c.MinMarkerSize < 0 || c.MaxMarkerSize <= 0:
		return fmt.Errorf("%w: marker sizes must be positive", ErrInvalidConfig)
	}
	return nil
}
