// Package fs provides file system adapters for classifying, copying and hashing files.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file under root in lexical order. Paths start
// with root. When recursive is false only the immediate children are listed.
// Directories named in skip (relative to root) and .git are not descended into.
//
// Symlinks are listed only when they resolve to a regular file. A walk error
// is yielded once with an empty path and ends the sequence.
func (w *Walker) WalkFiles(root string, recursive bool, skip []string) iter.Seq2[string, error] {
	if !recursive {
		return w.listFiles(root)
	}

	return w.walk(root, skip, isRegularFile)
}

// WalkDirs yields every directory below root in lexical order, with the same
// skip rules and error reporting as WalkFiles. Symlinked directories are not
// listed.
func (w *Walker) WalkDirs(root string, skip []string) iter.Seq2[string, error] {
	return w.walk(root, skip, func(path string, d fs.DirEntry) bool {
		return d.IsDir() && path != root
	})
}

func (w *Walker) walk(root string, skip []string, keep func(string, fs.DirEntry) bool) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && path != root && w.shouldSkipDir(root, path, d, skip) {
				return filepath.SkipDir
			}
			if !keep(path, d) {
				return nil
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

func (w *Walker) listFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		entries, err := os.ReadDir(root)
		if err != nil {
			yield("", err)
			return
		}
		for _, e := range entries {
			path := filepath.Join(root, e.Name())
			if !isRegularFile(path, e) {
				continue
			}
			if !yield(path, nil) {
				return
			}
		}
	}
}

func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (w *Walker) shouldSkipDir(root, path string, d fs.DirEntry, skip []string) bool {
	if d.Name() == ".git" {
		return true
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return slices.Contains(skip, rel)
}
