package genius

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/scholnicks/lyricsipsum/internal/genius/dto"
)

// nonSongTerms match titles of Genius pages that are not songs.
var nonSongTerms = []string{
	`track\s?list`,
	`album art(work)?`,
	`liner notes`,
	`booklet`,
	`credits`,
	`interview`,
	`skit`,
	`instrumental`,
	`setlist`,
}

// DefaultExcludedTerms are the user-level exclusions applied when none
// are configured.
var DefaultExcludedTerms = []string{"(Remix)", "(Live)"}

// Filter decides which songs of an artist listing are worth fetching.
//
// With skipping enabled a song is rejected when its lyrics are not
// complete, when it is an instrumental, or when its cleaned title matches
// any excluded term. Terms are case-insensitive regular expressions.
type Filter struct {
	skipNonSongs bool
	excluded     *regexp.Regexp
}

// NewFilter creates a Filter from the built-in non-song terms plus terms.
//
// Returns an error if a term is not a valid regular expression.
func NewFilter(skipNonSongs bool, terms []string) (*Filter, error) {
	all := append(append([]string{}, nonSongTerms...), terms...)

	var groups []string
	for _, term := range all {
		if strings.TrimSpace(term) == "" {
			continue
		}
		if _, err := regexp.Compile(term); err != nil {
			return nil, fmt.Errorf("invalid excluded term %q: %w", term, err)
		}
		groups = append(groups, "(?:"+term+")")
	}

	return &Filter{
		skipNonSongs: skipNonSongs,
		excluded:     regexp.MustCompile("(?i)" + strings.Join(groups, "|")),
	}, nil
}

// IsValid reports whether song should be kept.
func (f *Filter) IsValid(song *dto.JSONSong) bool {
	if !f.skipNonSongs {
		return true
	}
	if !song.HasLyricsPage() {
		return false
	}
	return !f.excluded.MatchString(cleanTitle(song.Title))
}

// cleanTitle strips ASCII punctuation, turns zero-width spaces into
// spaces and lowercases the title.
func cleanTitle(title string) string {
	title = strings.Map(func(r rune) rune {
		if r < 0x80 && strings.ContainsRune(`!"#$%&'()*+,-./:;<=>?@[\]^_{|}~`+"`", r) {
			return -1
		}
		if r == '\u200b' {
			return ' '
		}
		return r
	}, title)
	return strings.ToLower(strings.TrimSpace(title))
}
