// Package ioutils provides file system utilities.
//
// # File Operations
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/home/me/.config/lyricsipsum")
//
//	// Replace a file atomically
//	err := ioutils.WriteFile(ctx, "/home/me/.config/lyricsipsum/songs.json", data)
//
// # Finding Files
//
//	// All MP3 files below a directory, sorted
//	files, err := ioutils.FindFiles(ctx, "/music", ".mp3")
package ioutils
