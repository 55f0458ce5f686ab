package fs

import (
	"errors"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/py2sec/internal/core/domain"
	"go.trai.ch/py2sec/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Classifier = (*Classifier)(nil)

// Classifier partitions the files of a directory by extension.
type Classifier struct {
	walker *Walker
}

// NewClassifier creates a new Classifier.
func NewClassifier(walker *Walker) *Classifier {
	return &Classifier{walker: walker}
}

// Classify walks root and splits its files into compile and copy sets.
func (c *Classifier) Classify(root string, opts domain.ClassifyOptions) (domain.Classification, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Classification{}, errors.Join(domain.ErrRootNotFound, zerr.With(zerr.Wrap(err, "stat failed"), "root", root))
		}
		return domain.Classification{}, errors.Join(domain.ErrWalkFailed, zerr.With(zerr.Wrap(err, "stat failed"), "root", root))
	}
	if !info.IsDir() {
		return domain.Classification{}, errors.Join(domain.ErrRootNotDirectory, zerr.With(zerr.New("not a directory"), "root", root))
	}

	var result domain.Classification
	for path, err := range c.walker.WalkFiles(root, opts.Recursive, opts.SkipDirs) {
		if err != nil {
			return domain.Classification{}, walkFailed(err, root)
		}
		if skipped(root, path, opts.SkipFiles) {
			continue
		}
		rendered, err := render(root, path, opts.Style)
		if err != nil {
			return domain.Classification{}, err
		}
		if opts.Filter.Matches(filepath.Base(path)) {
			result.Compile = append(result.Compile, rendered)
		} else {
			result.Copy = append(result.Copy, rendered)
		}
	}

	if !opts.Recursive {
		return result, nil
	}
	for path, err := range c.walker.WalkDirs(root, opts.SkipDirs) {
		if err != nil {
			return domain.Classification{}, walkFailed(err, root)
		}
		rendered, err := render(root, path, opts.Style)
		if err != nil {
			return domain.Classification{}, err
		}
		result.Dirs = append(result.Dirs, rendered)
	}
	return result, nil
}

func walkFailed(err error, root string) error {
	return errors.Join(domain.ErrWalkFailed, zerr.With(zerr.Wrap(err, "walk"), "root", root))
}

func skipped(root, path string, skip []string) bool {
	if len(skip) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	return err == nil && slices.Contains(skip, rel)
}

func render(root, path string, style domain.PathStyle) (string, error) {
	switch style {
	case domain.PathRelative:
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", errors.Join(domain.ErrWalkFailed, zerr.With(zerr.Wrap(err, "relative path"), "path", path))
		}
		return rel, nil
	case domain.PathName:
		return filepath.Base(path), nil
	default:
		return path, nil
	}
}
