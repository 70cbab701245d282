package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// AccessTokenEnv names the environment variable holding the Genius token.
const AccessTokenEnv = "GENIUS_ACCESS_TOKEN"

// Paths is the layout of the per-user configuration directory.
type Paths struct {
	Dir string
}

// DefaultPaths returns the layout rooted at ~/.config/lyricsipsum.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return Paths{Dir: filepath.Join(home, ".config", "lyricsipsum")}, nil
}

// SongsFile is the lyrics cache file.
func (p Paths) SongsFile() string {
	return filepath.Join(p.Dir, "songs.json")
}

// ConfigFile is the optional TOML settings file.
func (p Paths) ConfigFile() string {
	return filepath.Join(p.Dir, "config.toml")
}

// EnvFile is the optional dotenv file consulted for the access token.
func (p Paths) EnvFile() string {
	return filepath.Join(p.Dir, ".env")
}

// LoadAccessToken returns the Genius access token.
//
// Variables from EnvFile are loaded first without overriding the process
// environment. A missing token is returned as an empty string.
func (p Paths) LoadAccessToken() (string, error) {
	if err := godotenv.Load(p.EnvFile()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to load %s: %w", p.EnvFile(), err)
	}
	return os.Getenv(AccessTokenEnv), nil
}
