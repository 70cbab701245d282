package audio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/google/go-cmp/cmp"
	"github.com/scholnicks/lyricsipsum/internal/model"
)

// writeMP3 creates a fake MP3 file and tags it when title or lyrics are set.
func writeMP3(t *testing.T, path, title string, lyrics ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not really audio"), 0644); err != nil {
		t.Fatal(err)
	}
	if title == "" && len(lyrics) == 0 {
		return
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatal(err)
	}
	defer tag.Close()

	if title != "" {
		tag.SetTitle(title)
	}
	for i, text := range lyrics {
		tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
			Encoding:          id3v2.EncodingUTF8,
			Language:          "eng",
			ContentDescriptor: string(rune('a' + i)),
			Lyrics:            text,
		})
	}
	if err := tag.Save(); err != nil {
		t.Fatal(err)
	}
}

func TestLyricsReader_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "01 hello.mp3")
	writeMP3(t, path, "Hello", "Hello\n\nit's me")

	song, err := NewLyricsReader().ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	want := model.Song{Title: "Hello", Lyrics: "Hello\n\nit's me"}
	if diff := cmp.Diff(want, song); diff != "" {
		t.Errorf("ReadFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestLyricsReader_ReadFile_Untagged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Untitled Track.mp3")
	writeMP3(t, path, "")

	song, err := NewLyricsReader().ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if song.Title != "Untitled Track" {
		t.Errorf("Title = %q, want file name", song.Title)
	}
	if song.Lyrics != "" {
		t.Errorf("Lyrics = %q, want empty", song.Lyrics)
	}
}

func TestLyricsReader_ReadPath(t *testing.T) {
	root := t.TempDir()
	writeMP3(t, filepath.Join(root, "b.mp3"), "B", "bee")
	writeMP3(t, filepath.Join(root, "a.mp3"), "A", "ay")
	writeMP3(t, filepath.Join(root, "disc2", "c.mp3"), "C")
	if err := os.WriteFile(filepath.Join(root, "cover.jpg"), []byte("jpg"), 0644); err != nil {
		t.Fatal(err)
	}

	songs, err := NewLyricsReader().ReadPath(context.Background(), root)
	if err != nil {
		t.Fatalf("ReadPath() error = %v", err)
	}

	want := []model.Song{
		{Title: "A", Lyrics: "ay"},
		{Title: "B", Lyrics: "bee"},
		{Title: "C", Lyrics: ""},
	}
	if diff := cmp.Diff(want, songs); diff != "" {
		t.Errorf("ReadPath() mismatch (-want +got):\n%s", diff)
	}
}

func TestLyricsReader_ReadPath_Missing(t *testing.T) {
	_, err := NewLyricsReader().ReadPath(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("expected error for missing path")
	}
}
