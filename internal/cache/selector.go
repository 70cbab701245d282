package cache

import (
	"math/rand"

	"github.com/scholnicks/lyricsipsum/internal/model"
)

// Selector picks songs uniformly at random.
type Selector struct {
	intN func(n int) int
}

// NewSelector creates a Selector backed by the process-wide random source.
// Picks are not reproducible across runs.
func NewSelector() *Selector {
	return &Selector{intN: rand.Intn}
}

// PickOne returns a uniformly random element of songs.
// songs must not be empty.
func (s *Selector) PickOne(songs []model.Song) model.Song {
	return songs[s.intN(len(songs))]
}
