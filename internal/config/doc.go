// Package config provides configuration management for lyricsipsum.
//
// This package handles:
//   - The per-user configuration directory layout
//   - Loading settings from config.toml
//   - Default configuration values
//   - Loading the Genius access token from the environment or a .env file
//   - Conversion to genius.Config
//
// # Directory Layout
//
//	~/.config/lyricsipsum/
//	    songs.json   lyrics cache
//	    config.toml  optional settings
//	    .env         optional GENIUS_ACCESS_TOKEN
//
// # Loading Settings
//
//	paths, _ := config.DefaultPaths()
//	settings, err := config.Load(paths.ConfigFile())
//	if err != nil {
//	    // malformed file; a missing file yields defaults
//	}
//
// # Configuration Options
//
// The [client] table recognizes:
//
//	[client]
//	verbose = false
//	skip_non_songs = true
//	excluded_terms = ["(Remix)", "(Live)"]
//	remove_section_headers = true
//	timeout = 15
//	max_concurrent_requests = 4
//
// excluded_terms extends the built-in non-song terms (track lists, album
// artwork, credits and the like) rather than replacing them.
package config
