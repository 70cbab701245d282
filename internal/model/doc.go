// Package model defines the core data structures used throughout
// lyricsipsum.
//
// # Song
//
// Song is one cached song, a title plus a normalized lyrics body:
//
//	song, ok := model.NewSong("Title", rawLyrics)
//	if !ok {
//	    // no lyrics, do not store
//	}
//
// # Lyrics Normalization
//
// NormalizeLyrics collapses runs of newlines and trims surrounding
// whitespace. It is applied once to every fetched or imported song before
// the song reaches the cache:
//
//	model.NormalizeLyrics("Line1\n\n\n\nLine2\n\n") // "Line1\nLine2"
package model
