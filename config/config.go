// Package config loads the TOML configuration the CLI and SDK bootstrap
// from: endpoints, credentials, and the per-call deadline.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/gridworks-io/geoengine/transport"
)

var (
	ErrTokenConflict  = errors.New("config: token and token_file are mutually exclusive")
	ErrDeadlineBounds = errors.New("config: deadline_seconds must not be negative")
)

type Config struct {
	APIBaseURL      string `toml:"api_base_url"`
	TileBaseURL     string `toml:"tile_base_url"`
	Token           string `toml:"token"`
	TokenFile       string `toml:"token_file"`
	DeadlineSeconds int    `toml:"deadline_seconds"`
	LogLevel        string `toml:"log_level"`
}

// Load reads and validates a config file.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field combinations; zero values stay legal because the
// transport fills its own defaults.
func Validate(cfg Config) error {
	if cfg.Token != "" && cfg.TokenFile != "" {
		return ErrTokenConflict
	}
	if cfg.DeadlineSeconds < 0 {
		return ErrDeadlineBounds
	}
	return nil
}

// Transport resolves the config into a transport config, reading the token
// file when one is named.
func (c Config) Transport() (transport.Config, error) {
	token := c.Token
	if c.TokenFile != "" {
		data, err := os.ReadFile(c.TokenFile)
		if err != nil {
			return transport.Config{}, fmt.Errorf("config token file (%s): %w", c.TokenFile, err)
		}
		token = strings.TrimSpace(string(data))
	}
	return transport.Config{
		APIBaseURL:  c.APIBaseURL,
		TileBaseURL: c.TileBaseURL,
		Token:       token,
		Deadline:    time.Duration(c.DeadlineSeconds) * time.Second,
	}, nil
}
