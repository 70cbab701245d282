// Package cache stores fetched songs in a single JSON file and picks
// random entries from it.
//
// # Store
//
//	store := cache.NewStore(paths.SongsFile())
//	songs, err := store.Load()
//	if errors.Is(err, cache.ErrCacheMissing) {
//	    fmt.Println("run with --save first")
//	}
//
// # Selector
//
//	song := cache.NewSelector().PickOne(songs)
package cache
