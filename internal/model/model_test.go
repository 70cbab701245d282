package model

import (
	"strings"
	"testing"
	"unicode"
)

func TestNormalizeLyrics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"blank line runs", "Line1\n\n\n\nLine2\n\n", "Line1\nLine2"},
		{"single newlines kept", "a\nb\nc", "a\nb\nc"},
		{"leading whitespace", "\n\n  \tverse", "verse"},
		{"trailing spaces", "chorus  \n ", "chorus"},
		{"empty", "", ""},
		{"only newlines", "\n\n\n", ""},
		{"inner spaces kept", "la  la\n\nla", "la  la\nla"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLyrics(tt.input); got != tt.want {
				t.Errorf("NormalizeLyrics(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeLyrics_Properties(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		" \n \n ",
		"Verse one\n\n\nVerse two\n",
		"\t[Chorus]\n\n\n\nla la la\n\n\n",
		"one\r\n\r\ntwo",
		"line \n\n line\n \n\nline",
	}

	for _, input := range inputs {
		once := NormalizeLyrics(input)
		if twice := NormalizeLyrics(once); twice != once {
			t.Errorf("not idempotent for %q: %q then %q", input, once, twice)
		}
		if strings.Contains(once, "\n\n") {
			t.Errorf("NormalizeLyrics(%q) = %q contains consecutive newlines", input, once)
		}
		if once != "" {
			first, last := rune(once[0]), rune(once[len(once)-1])
			if unicode.IsSpace(first) || unicode.IsSpace(last) {
				t.Errorf("NormalizeLyrics(%q) = %q has surrounding whitespace", input, once)
			}
		}
	}
}

func TestNewSong(t *testing.T) {
	song, ok := NewSong("A", "la la\n\n")
	if !ok {
		t.Fatal("NewSong() ok = false, want true")
	}
	if song.Title != "A" || song.Lyrics != "la la" {
		t.Errorf("NewSong() = %+v", song)
	}

	if _, ok := NewSong("Instrumental", "  \n\n "); ok {
		t.Error("NewSong() ok = true for whitespace-only lyrics")
	}
}
