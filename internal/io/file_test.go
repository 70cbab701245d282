package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteFile_Replaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "songs.json")
	ctx := context.Background()

	if err := WriteFile(ctx, path, []byte("first")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := WriteFile(ctx, path, []byte("second")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("file content = %q, want %q", got, "second")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (temp file left behind?)", len(entries))
	}
}

func TestWriteFile_CancelledKeepsOld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.json")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := WriteFile(ctx, path, []byte("new")); err == nil {
		t.Fatal("expected error for cancelled context")
	}

	got, _ := os.ReadFile(path)
	if string(got) != "old" {
		t.Errorf("file content = %q, want %q", got, "old")
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	for i := 0; i < 2; i++ {
		if err := EnsureDir(dir); err != nil {
			t.Fatalf("EnsureDir() call %d error = %v", i+1, err)
		}
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
}

func TestFindFiles(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.mp3", "a.MP3", "notes.txt", filepath.Join("sub", "c.mp3")} {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := FindFiles(context.Background(), root, ".mp3")
	if err != nil {
		t.Fatalf("FindFiles() error = %v", err)
	}
	want := []string{
		filepath.Join(root, "a.MP3"),
		filepath.Join(root, "b.mp3"),
		filepath.Join(root, "sub", "c.mp3"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindFiles() mismatch (-want +got):\n%s", diff)
	}

	single, err := FindFiles(context.Background(), filepath.Join(root, "b.mp3"), ".mp3")
	if err != nil {
		t.Fatalf("FindFiles() on file error = %v", err)
	}
	if len(single) != 1 {
		t.Errorf("FindFiles() on file = %v, want one entry", single)
	}
}
