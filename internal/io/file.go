// Package ioutils provides file system utilities for lyricsipsum.
//
// This package contains functions for:
//   - Directory creation
//   - Atomic file replacement
//   - Collecting files by extension
//
// All functions that accept a context.Context respect cancellation
// between file operations, though a single operation is not interruptible.
package ioutils

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// WriteFile writes data to path by writing a temporary file in the same
// directory and renaming it over path.
//
// Readers never observe a partially written file: they see either the
// previous contents or the new contents. The final file has mode 0644.
//
// Parameters:
//   - ctx: Context checked before the rename
//   - path: File path to write to (its directory must exist)
//   - data: Bytes to write
//
// Example:
//
//	err := WriteFile(ctx, "/home/me/.config/lyricsipsum/songs.json", data)
func WriteFile(ctx context.Context, path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	// Removing after a successful rename is a no-op.
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/home/me/.config/lyricsipsum")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FindFiles returns the files under root whose extension matches ext,
// compared case-insensitively, in lexical order.
//
// If root is a regular file it is returned as the only element when its
// extension matches. Directories are walked recursively.
//
// Example:
//
//	files, err := FindFiles(ctx, "/music/Artist", ".mp3")
func FindFiles(ctx context.Context, root, ext string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if strings.EqualFold(filepath.Ext(root), ext) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
