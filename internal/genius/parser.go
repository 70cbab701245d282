package genius

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Parser extracts lyrics from Genius song pages.
//
// Genius renders lyrics in one or more containers marked with
// data-lyrics-container="true". Line breaks are <br> elements and
// annotations are nested links, so the visible text of each container
// with <br> turned into newlines is the lyrics body. Page furniture
// injected into the containers carries data-exclude-from-selection and
// is dropped.
//
// Example usage:
//
//	parser := NewParser(true)
//	lyrics, err := parser.ParseSongPage(html)
//	if lyrics == "" {
//	    // page has no lyrics section
//	}
type Parser struct {
	removeSectionHeaders bool
}

var (
	sectionHeader = regexp.MustCompile(`\[[^\]\n]*\]`)
	blankLines    = regexp.MustCompile(`\n{2,}`)
)

// NewParser creates a Parser.
//
// When removeSectionHeaders is true, headers like [Chorus] or
// [Verse 1: Artist] are stripped from the lyrics.
func NewParser(removeSectionHeaders bool) *Parser {
	return &Parser{removeSectionHeaders: removeSectionHeaders}
}

// ParseSongPage returns the lyrics found in a song page.
//
// An empty string with a nil error means the page has no lyrics
// container. Returns an error only if the HTML cannot be parsed.
func (p *Parser) ParseSongPage(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse song page: %w", err)
	}

	containers := doc.Find(`div[data-lyrics-container="true"]`)
	if containers.Length() == 0 {
		return "", nil
	}

	parts := make([]string, 0, containers.Length())
	containers.Each(func(_ int, s *goquery.Selection) {
		s.Find(`[data-exclude-from-selection="true"]`).Remove()
		s.Find("br").ReplaceWithHtml("\n")
		parts = append(parts, s.Text())
	})

	lyrics := strings.Join(parts, "\n")
	if p.removeSectionHeaders {
		lyrics = sectionHeader.ReplaceAllString(lyrics, "")
		lyrics = blankLines.ReplaceAllString(lyrics, "\n")
	}

	return strings.TrimSpace(lyrics), nil
}
