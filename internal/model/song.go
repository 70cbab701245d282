package model

import (
	"regexp"
	"strings"
)

// Song is a single cached song.
//
// Song is the unit stored in the lyrics cache file. The JSON field names
// are part of the cache file format and must not change:
//
//	[
//	    {
//	        "title": "Song Title",
//	        "lyrics": "First line\nSecond line"
//	    }
//	]
//
// Lyrics are expected to be normalized with NormalizeLyrics before a Song
// is persisted. Use NewSong to build a Song from raw fetched lyrics.
type Song struct {
	// Title is the song title as reported by the lyrics source.
	Title string `json:"title"`

	// Lyrics is the normalized lyrics body.
	Lyrics string `json:"lyrics"`
}

// newlineRuns matches every maximal run of one or more newlines.
var newlineRuns = regexp.MustCompile(`\n+`)

// NewSong creates a Song from a title and raw lyrics.
//
// The lyrics are normalized. The second return value is false when the
// normalized lyrics are empty, in which case the Song must not be stored.
//
// Example:
//
//	song, ok := NewSong("Yesterday", "Yesterday\n\n\nall my troubles\n")
//	// song.Lyrics = "Yesterday\nall my troubles", ok = true
func NewSong(title, rawLyrics string) (Song, bool) {
	song := Song{
		Title:  title,
		Lyrics: NormalizeLyrics(rawLyrics),
	}
	return song, song.HasLyrics()
}

// HasLyrics reports whether the song carries a non-empty lyrics body.
func (s Song) HasLyrics() bool {
	return s.Lyrics != ""
}

// NormalizeLyrics collapses every run of newlines into a single newline
// and trims leading and trailing whitespace.
//
// The result never contains two consecutive newlines and applying
// NormalizeLyrics to its own output returns the same string.
//
// Example:
//
//	NormalizeLyrics("Line1\n\n\n\nLine2\n\n") // Returns "Line1\nLine2"
func NormalizeLyrics(raw string) string {
	return strings.TrimSpace(newlineRuns.ReplaceAllString(raw, "\n"))
}
