package fetch

import (
	"github.com/scholnicks/lyricsipsum/internal/genius"
)

// SourceFactory builds a Source from a client configuration.
type SourceFactory func(cfg genius.Config) (Source, error)

// NewGeniusSource is the SourceFactory backed by the Genius API.
func NewGeniusSource(cfg genius.Config) (Source, error) {
	client, err := genius.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}
