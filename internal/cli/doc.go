// Package cli implements the lyricsipsum command line.
//
// Arguments are parsed into an Options value which selects one of three
// modes:
//
//   - read (default): print one random cached song
//   - save (-s artist): fetch the artist's popular songs and append them to the cache
//   - import (-i path): read USLT lyrics from MP3 files and append them to the cache
//
// App.Run returns the process exit code instead of exiting, so the
// command can be driven from tests.
package cli
