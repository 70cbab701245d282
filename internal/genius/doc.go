// Package genius fetches an artist's songs and lyrics from Genius.
//
// The package handles two steps:
//
//  1. Querying the Genius API to resolve an artist and list its songs
//  2. Scraping each song page for the lyrics text
//
// # Searching an Artist
//
//	client, err := genius.NewClient(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	songs, err := client.SearchArtist(ctx, "Adele", 50, genius.SortPopularity)
//
// # Filtering
//
// With Config.SkipNonSongs set, pages that are not lyrics (track lists,
// album artwork, credits, skits, instrumentals) and titles matching
// Config.ExcludedTerms are skipped before any lyrics page is fetched.
//
// # Genius Page Format
//
// Lyrics are embedded in the HTML song page inside
// div[data-lyrics-container="true"] elements. Parser turns those into
// plain text, optionally dropping [Section] headers.
package genius
