package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	ioutils "github.com/scholnicks/lyricsipsum/internal/io"
	"github.com/scholnicks/lyricsipsum/internal/model"
)

// lyricsFrameID is the description id3v2 uses for USLT frames.
const lyricsFrameID = "Unsynchronised lyrics/text transcription"

// LyricsReader reads lyrics stored in ID3 tags of MP3 files.
//
// LyricsReader uses the id3v2 library to read:
//   - Title (TIT2), falling back to the file name
//   - Lyrics (all USLT frames, joined by newlines)
//
// The returned songs carry raw lyrics. Files without lyrics come back
// with empty Lyrics so the caller decides whether to keep them.
//
// Example:
//
//	reader := NewLyricsReader()
//	songs, err := reader.ReadPath(ctx, "/music/Artist")
//	if err != nil {
//	    return err
//	}
//	merged := manager.Merge(cached, songs)
type LyricsReader struct {
	ext string
}

// NewLyricsReader creates a LyricsReader for .mp3 files.
func NewLyricsReader() *LyricsReader {
	return &LyricsReader{ext: ".mp3"}
}

// ReadPath reads every MP3 file at path.
//
// path may be a single file or a directory, which is walked recursively.
// Files are read in lexical path order.
func (r *LyricsReader) ReadPath(ctx context.Context, path string) ([]model.Song, error) {
	files, err := ioutils.FindFiles(ctx, path, r.ext)
	if err != nil {
		return nil, err
	}

	songs := make([]model.Song, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		song, err := r.ReadFile(file)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}

	return songs, nil
}

// ReadFile reads the title and lyrics of one MP3 file.
func (r *LyricsReader) ReadFile(path string) (model.Song, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return model.Song{}, fmt.Errorf("failed to read tags of %s: %w", path, err)
	}
	defer tag.Close()

	title := strings.TrimSpace(tag.Title())
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	var parts []string
	for _, frame := range tag.GetFrames(tag.CommonID(lyricsFrameID)) {
		uslt, ok := frame.(id3v2.UnsynchronisedLyricsFrame)
		if !ok {
			continue
		}
		parts = append(parts, uslt.Lyrics)
	}

	return model.Song{
		Title:  title,
		Lyrics: strings.Join(parts, "\n"),
	}, nil
}
