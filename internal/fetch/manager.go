package fetch

import (
	"context"
	"errors"
	"fmt"

	"github.com/scholnicks/lyricsipsum/internal/genius"
	"github.com/scholnicks/lyricsipsum/internal/model"
)

// ErrInvalidCount is returned when fewer than one song is requested.
var ErrInvalidCount = errors.New("number of songs must be at least 1")

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a fetch progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Source looks up an artist's songs with raw, unnormalized lyrics.
//
// *genius.Client implements Source.
type Source interface {
	SearchArtist(ctx context.Context, name string, maxSongs int, sort string) ([]model.Song, error)
}

// Manager merges newly fetched songs into the cached ones.
type Manager struct {
	source     Source
	onProgress func(ProgressEvent)
}

// NewManager creates a new fetch Manager. onProgress may be nil.
func NewManager(source Source, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		source:     source,
		onProgress: onProgress,
	}
}

// FetchAndMerge fetches up to maxCount of the artist's most popular songs
// and returns existing followed by every fetched song that has lyrics.
//
// existing is never modified. Source errors are returned wrapped and
// are not retried.
func (m *Manager) FetchAndMerge(ctx context.Context, artist string, maxCount int, existing []model.Song) ([]model.Song, error) {
	if maxCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, maxCount)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching up to %d songs by %s", maxCount, artist), Level: LevelInfo})

	fetched, err := m.source.SearchArtist(ctx, artist, maxCount, genius.SortPopularity)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching songs by %s: %v", artist, err), Level: LevelError})
		return nil, fmt.Errorf("failed to fetch songs by %s: %w", artist, err)
	}

	merged := m.Merge(existing, fetched)

	added := len(merged) - len(existing)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Added %d of %d fetched songs by %s", added, len(fetched), artist), Level: LevelSuccess})

	return merged, nil
}

// Merge returns a copy of existing with every song of fetched that has
// lyrics appended, normalized, in fetched order.
func (m *Manager) Merge(existing, fetched []model.Song) []model.Song {
	merged := make([]model.Song, len(existing), len(existing)+len(fetched))
	copy(merged, existing)

	for _, raw := range fetched {
		song, ok := model.NewSong(raw.Title, raw.Lyrics)
		if !ok {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %q: no lyrics", raw.Title), Level: LevelVerbose})
			continue
		}
		merged = append(merged, song)
	}

	return merged
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
