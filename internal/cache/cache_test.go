package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/scholnicks/lyricsipsum/internal/model"
)

func TestStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		songs []model.Song
	}{
		{"nil", nil},
		{"single", []model.Song{{Title: "A", Lyrics: "la la"}}},
		{
			name: "duplicates and unicode",
			songs: []model.Song{
				{Title: "Song", Lyrics: "one\ntwo"},
				{Title: "Song", Lyrics: "one\ntwo"},
				{Title: "Песня", Lyrics: "\"quoted\" & <tagged>"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(filepath.Join(t.TempDir(), "nested", "songs.json"))

			if err := store.Save(context.Background(), tt.songs); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			got, err := store.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(tt.songs, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "songs.json"))

	_, err := store.Load()
	if !errors.Is(err, ErrCacheMissing) {
		t.Fatalf("Load() error = %v, want ErrCacheMissing", err)
	}

	songs, err := store.LoadOrEmpty()
	if err != nil {
		t.Fatalf("LoadOrEmpty() error = %v", err)
	}
	if len(songs) != 0 {
		t.Errorf("LoadOrEmpty() = %v, want empty", songs)
	}
}

func TestStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.json")
	if err := os.WriteFile(path, []byte(`{"title":`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewStore(path).Load()
	if err == nil {
		t.Fatal("expected error for malformed cache")
	}
	if errors.Is(err, ErrCacheMissing) {
		t.Error("malformed cache must not be reported as missing")
	}
}

func TestStore_FileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.json")
	store := NewStore(path)

	if err := store.Save(context.Background(), []model.Song{{Title: "A", Lyrics: "la la"}}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "[\n    {\n        \"title\": \"A\",\n        \"lyrics\": \"la la\"\n    }\n]"
	if string(data) != want {
		t.Errorf("file content =\n%s\nwant\n%s", data, want)
	}

	if err := store.Save(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(path)
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty save wrote %q, want []", data)
	}
}

func TestSelector_PickOneIsMember(t *testing.T) {
	songs := []model.Song{
		{Title: "A", Lyrics: "a"},
		{Title: "B", Lyrics: "b"},
		{Title: "C", Lyrics: "c"},
	}
	selector := NewSelector()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		song := selector.PickOne(songs)
		found := false
		for _, s := range songs {
			if s == song {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("PickOne() = %+v, not a member of the input", song)
		}
		seen[song.Title] = true
	}

	if len(seen) < 2 {
		t.Errorf("PickOne() returned only %v over 200 picks", seen)
	}
}

func TestSelector_Index(t *testing.T) {
	songs := []model.Song{{Title: "A"}, {Title: "B"}, {Title: "C"}}
	selector := &Selector{intN: func(n int) int { return n - 1 }}

	if got := selector.PickOne(songs); got.Title != "C" {
		t.Errorf("PickOne() = %q, want %q", got.Title, "C")
	}
}
