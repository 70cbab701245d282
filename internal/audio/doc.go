// Package audio reads lyrics embedded in audio files.
//
// # ID3 Lyrics
//
// LyricsReader extracts the unsynchronised lyrics (USLT) frames and the
// title of MP3 files, so songs already on disk can be added to the cache
// without a Genius lookup:
//
//	reader := audio.NewLyricsReader()
//	songs, err := reader.ReadPath(ctx, "/music/Artist/Album")
//
// Songs are returned with raw lyrics; normalization and the no-lyrics
// check happen in fetch.Manager.Merge.
package audio
