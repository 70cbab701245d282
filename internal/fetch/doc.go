// Package fetch merges songs from a lyrics source into the cached songs.
//
// # Manager
//
// The Manager coordinates save mode:
//
//  1. Ask the Source for the artist's most popular songs
//  2. Normalize each song's lyrics
//  3. Drop songs without lyrics
//  4. Append the rest after the existing songs
//
// # Basic Usage
//
//	manager := fetch.NewManager(client, func(event fetch.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	songs, err := manager.FetchAndMerge(ctx, "Adele", 50, cached)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Merge applies the same rules to songs that come from elsewhere, such as
// lyrics read from local MP3 files.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
package fetch
