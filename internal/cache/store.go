package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ioutils "github.com/scholnicks/lyricsipsum/internal/io"
	"github.com/scholnicks/lyricsipsum/internal/model"
)

// ErrCacheMissing is returned by Load when the cache file does not exist.
//
// Read mode treats this as fatal. Save and import modes treat it as an
// empty starting sequence.
var ErrCacheMissing = errors.New("lyrics cache file not found")

// Store reads and writes the lyrics cache file.
//
// The cache file is a JSON array of songs written with a four space
// indent. Every Save rewrites the whole file.
//
// Example:
//
//	store := NewStore("/home/me/.config/lyricsipsum/songs.json")
//
//	songs, err := store.Load()
//	if errors.Is(err, ErrCacheMissing) {
//	    songs = nil
//	}
//	songs = append(songs, newSong)
//	err = store.Save(ctx, songs)
type Store struct {
	path string
}

// NewStore creates a Store for the cache file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the cache file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads all songs from the cache file, in file order.
//
// Returns an error wrapping ErrCacheMissing if the file does not exist.
func (s *Store) Load() ([]model.Song, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCacheMissing, s.path)
		}
		return nil, err
	}

	var songs []model.Song
	if err := json.Unmarshal(data, &songs); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	return songs, nil
}

// LoadOrEmpty is Load with a missing cache file reported as an empty
// sequence.
func (s *Store) LoadOrEmpty() ([]model.Song, error) {
	songs, err := s.Load()
	if errors.Is(err, ErrCacheMissing) {
		return []model.Song{}, nil
	}
	return songs, err
}

// Save replaces the cache file with songs.
//
// The parent directory is created if needed. A nil slice is written as an
// empty JSON array.
func (s *Store) Save(ctx context.Context, songs []model.Song) error {
	if songs == nil {
		songs = []model.Song{}
	}

	if err := ioutils.EnsureDir(filepath.Dir(s.path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(songs, "", "    ")
	if err != nil {
		return err
	}

	return ioutils.WriteFile(ctx, s.path, data)
}
