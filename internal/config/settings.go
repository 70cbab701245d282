package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/scholnicks/lyricsipsum/internal/genius"
	"github.com/sirupsen/logrus"
)

// Settings holds all configuration options.
type Settings struct {
	Client ClientSettings `toml:"client"`
}

// ClientSettings configures the Genius client. Field names follow the
// [client] table of config.toml.
type ClientSettings struct {
	Verbose               bool     `toml:"verbose"`
	SkipNonSongs          bool     `toml:"skip_non_songs"`
	ExcludedTerms         []string `toml:"excluded_terms"`
	RemoveSectionHeaders  bool     `toml:"remove_section_headers"`
	Timeout               int      `toml:"timeout"` // seconds
	MaxConcurrentRequests int      `toml:"max_concurrent_requests"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Client: ClientSettings{
			Verbose:               false,
			SkipNonSongs:          true,
			ExcludedTerms:         append([]string{}, genius.DefaultExcludedTerms...),
			RemoveSectionHeaders:  true,
			Timeout:               15,
			MaxConcurrentRequests: genius.DefaultMaxConcurrentRequests,
		},
	}
}

// Load reads settings from a TOML file.
//
// A missing file yields DefaultSettings. Keys absent from the file keep
// their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return settings, nil
}

// ToClientConfig converts settings to a genius.Config.
//
// verbose is OR-ed with the configured verbose flag. Non-positive timeout
// and concurrency values fall back to the defaults.
func (s *Settings) ToClientConfig(accessToken string, verbose bool, logger logrus.FieldLogger) genius.Config {
	defaults := DefaultSettings().Client

	timeout := s.Client.Timeout
	if timeout <= 0 {
		timeout = defaults.Timeout
	}
	concurrency := s.Client.MaxConcurrentRequests
	if concurrency <= 0 {
		concurrency = defaults.MaxConcurrentRequests
	}

	return genius.Config{
		AccessToken:           accessToken,
		Verbose:               verbose || s.Client.Verbose,
		SkipNonSongs:          s.Client.SkipNonSongs,
		ExcludedTerms:         s.Client.ExcludedTerms,
		RemoveSectionHeaders:  s.Client.RemoveSectionHeaders,
		Timeout:               time.Duration(timeout) * time.Second,
		MaxConcurrentRequests: concurrency,
		APIURL:                genius.DefaultAPIURL,
		Logger:                logger,
	}
}
