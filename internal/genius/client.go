package genius

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/scholnicks/lyricsipsum/internal/genius/dto"
	"github.com/scholnicks/lyricsipsum/internal/http"
	"github.com/scholnicks/lyricsipsum/internal/model"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultAPIURL is the Genius API root.
	DefaultAPIURL = "https://api.genius.com"

	// SortPopularity orders an artist's songs by page views.
	SortPopularity = "popularity"

	// SortTitle orders an artist's songs alphabetically.
	SortTitle = "title"

	// DefaultMaxConcurrentRequests bounds parallel lyrics page fetches.
	DefaultMaxConcurrentRequests = 4

	perPage = 50
)

// ErrArtistNotFound is returned when a search yields no artist.
var ErrArtistNotFound = errors.New("artist not found")

// Config holds the options of a Client.
type Config struct {
	// AccessToken is the Genius API client access token.
	AccessToken string

	// Verbose logs search progress at info level instead of debug level.
	Verbose bool

	// SkipNonSongs drops track lists, credits, instrumentals and other
	// pages that are not song lyrics.
	SkipNonSongs bool

	// ExcludedTerms are extra title patterns to skip when SkipNonSongs is set.
	ExcludedTerms []string

	// RemoveSectionHeaders strips [Verse], [Chorus] and similar headers.
	RemoveSectionHeaders bool

	// Timeout applies to every HTTP request.
	Timeout time.Duration

	// MaxConcurrentRequests bounds parallel lyrics page fetches.
	MaxConcurrentRequests int

	// APIURL overrides DefaultAPIURL.
	APIURL string

	// Logger receives progress messages. Nil discards them.
	Logger logrus.FieldLogger
}

// DefaultConfig returns a Config with default values and no token.
func DefaultConfig() Config {
	return Config{
		SkipNonSongs:          true,
		ExcludedTerms:         append([]string{}, DefaultExcludedTerms...),
		RemoveSectionHeaders:  true,
		Timeout:               http.DefaultTimeout,
		MaxConcurrentRequests: DefaultMaxConcurrentRequests,
		APIURL:                DefaultAPIURL,
	}
}

// Client searches Genius for an artist's songs and scrapes their lyrics.
//
// Example usage:
//
//	cfg := genius.DefaultConfig()
//	cfg.AccessToken = os.Getenv("GENIUS_ACCESS_TOKEN")
//	client, err := genius.NewClient(cfg)
//	if err != nil {
//	    return err
//	}
//
//	songs, err := client.SearchArtist(ctx, "Adele", 20, genius.SortPopularity)
//	for _, song := range songs {
//	    fmt.Println(song.Title)
//	}
type Client struct {
	cfg        Config
	httpClient *http.Client
	parser     *Parser
	filter     *Filter
	log        logrus.FieldLogger
}

// NewClient creates a Client.
//
// Zero values for Timeout, MaxConcurrentRequests and APIURL select the
// defaults. Returns an error if an excluded term is not a valid regular
// expression.
func NewClient(cfg Config) (*Client, error) {
	if cfg.MaxConcurrentRequests <= 0 {
		cfg.MaxConcurrentRequests = DefaultMaxConcurrentRequests
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	if cfg.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		cfg.Logger = logger
	}

	filter, err := NewFilter(cfg.SkipNonSongs, cfg.ExcludedTerms)
	if err != nil {
		return nil, err
	}

	return &Client{
		cfg:        cfg,
		httpClient: http.NewClient(cfg.Timeout, cfg.AccessToken),
		parser:     NewParser(cfg.RemoveSectionHeaders),
		filter:     filter,
		log:        cfg.Logger,
	}, nil
}

// SearchArtist returns up to maxSongs songs of the named artist, in the
// order given by sort, with raw lyrics.
//
// Songs whose page has no lyrics are returned with empty Lyrics. A
// non-positive maxSongs means no limit.
//
// Returns an error if:
//   - No artist matches name (ErrArtistNotFound)
//   - Any API or page request fails (*http.StatusError or a network error)
//   - A response cannot be decoded
func (c *Client) SearchArtist(ctx context.Context, name string, maxSongs int, sort string) ([]model.Song, error) {
	c.progress(logrus.Fields{"artist": name}, "Searching for songs by %s...", name)

	artist, err := c.findArtist(ctx, name)
	if err != nil {
		return nil, err
	}

	candidates, err := c.listSongs(ctx, artist, maxSongs, sort)
	if err != nil {
		return nil, err
	}

	songs, err := c.fetchLyrics(ctx, candidates)
	if err != nil {
		return nil, err
	}

	c.progress(logrus.Fields{"artist": artist.Name}, "Done. Found %d songs.", len(songs))
	return songs, nil
}

// findArtist resolves an artist name through the search endpoint.
func (c *Client) findArtist(ctx context.Context, name string) (dto.JSONArtist, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s", c.cfg.APIURL, url.QueryEscape(name))

	var search dto.JSONSearch
	if err := c.httpClient.GetJSON(ctx, endpoint, &search); err != nil {
		return dto.JSONArtist{}, fmt.Errorf("failed to search for %q: %w", name, err)
	}

	artist, ok := search.PrimaryArtist(name)
	if !ok {
		return dto.JSONArtist{}, fmt.Errorf("%w: %q", ErrArtistNotFound, name)
	}

	c.log.WithFields(logrus.Fields{"artist": artist.Name, "id": artist.ID}).Debug("Resolved artist")
	return artist, nil
}

// listSongs pages through the artist's songs until maxSongs valid songs
// are collected or the listing ends.
func (c *Client) listSongs(ctx context.Context, artist dto.JSONArtist, maxSongs int, sort string) ([]dto.JSONSong, error) {
	var songs []dto.JSONSong

	page := 1
	for {
		endpoint := fmt.Sprintf("%s/artists/%d/songs?sort=%s&per_page=%d&page=%d",
			c.cfg.APIURL, artist.ID, url.QueryEscape(sort), perPage, page)

		var listing dto.JSONArtistSongs
		if err := c.httpClient.GetJSON(ctx, endpoint, &listing); err != nil {
			return nil, fmt.Errorf("failed to list songs of %s (page %d): %w", artist.Name, page, err)
		}

		for _, song := range listing.Response.Songs {
			// Features and guest appearances belong to other artists.
			if song.PrimaryArtist.ID != artist.ID {
				continue
			}

			if !c.filter.IsValid(&song) {
				c.progress(logrus.Fields{"song": song.Title}, "%q is not valid. Skipping.", song.Title)
				continue
			}

			songs = append(songs, song)
			c.progress(logrus.Fields{"song": song.Title}, "Song %d: %q", len(songs), song.Title)

			if maxSongs > 0 && len(songs) >= maxSongs {
				c.progress(logrus.Fields{"artist": artist.Name}, "Reached user-specified song limit (%d).", maxSongs)
				return songs, nil
			}
		}

		if listing.Response.NextPage == nil {
			return songs, nil
		}
		page = *listing.Response.NextPage
	}
}

// fetchLyrics downloads and parses the lyrics page of every song.
//
// Pages are fetched concurrently but results keep the input order. The
// first failure cancels the remaining fetches.
func (c *Client) fetchLyrics(ctx context.Context, candidates []dto.JSONSong) ([]model.Song, error) {
	songs := make([]model.Song, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.MaxConcurrentRequests)

	for i, song := range candidates {
		i, song := i, song
		g.Go(func() error {
			songs[i] = model.Song{Title: song.Title}
			if !song.HasLyricsPage() {
				return nil
			}

			html, err := c.httpClient.GetString(ctx, song.URL)
			if err != nil {
				return fmt.Errorf("failed to fetch lyrics for %q: %w", song.Title, err)
			}

			lyrics, err := c.parser.ParseSongPage(html)
			if err != nil {
				return fmt.Errorf("failed to parse lyrics for %q: %w", song.Title, err)
			}
			if lyrics == "" {
				c.log.WithField("song", song.Title).Warn("Couldn't find the lyrics section")
			}

			songs[i].Lyrics = lyrics
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return songs, nil
}

// progress logs a search progress message, at info level when verbose.
func (c *Client) progress(fields logrus.Fields, format string, args ...any) {
	entry := c.log.WithFields(fields)
	if c.cfg.Verbose {
		entry.Infof(format, args...)
		return
	}
	entry.Debugf(format, args...)
}
