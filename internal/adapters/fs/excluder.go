package fs

import (
	"errors"
	"path/filepath"
	"slices"

	"go.trai.ch/py2sec/internal/core/domain"
	"go.trai.ch/py2sec/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ExcludeResolver = (*ExcludeResolver)(nil)

// ExcludeResolver expands exclusion tokens using a Classifier.
type ExcludeResolver struct {
	classifier ports.Classifier
	logger     ports.Logger
}

// NewExcludeResolver creates a new ExcludeResolver.
func NewExcludeResolver(classifier ports.Classifier, logger ports.Logger) *ExcludeResolver {
	return &ExcludeResolver{classifier: classifier, logger: logger}
}

// Resolve expands tokens into root-relative file paths.
func (r *ExcludeResolver) Resolve(root string, tokens []string) ([]string, error) {
	var excluded []string
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if !domain.IsDirectoryToken(token) {
			excluded = append(excluded, filepath.Clean(filepath.FromSlash(token)))
			continue
		}

		dir := filepath.FromSlash(domain.TrimDirectoryToken(token))
		files, err := r.expand(root, dir)
		if err != nil {
			return nil, err
		}
		excluded = append(excluded, files...)
	}

	slices.Sort(excluded)
	return slices.Compact(excluded), nil
}

func (r *ExcludeResolver) expand(root, dir string) ([]string, error) {
	c, err := r.classifier.Classify(filepath.Join(root, dir), domain.ClassifyOptions{
		Recursive: true,
		Style:     domain.PathRelative,
		Filter:    domain.AnyExtension(),
	})
	if errors.Is(err, domain.ErrRootNotFound) || errors.Is(err, domain.ErrRootNotDirectory) {
		r.logger.Warn("exclude directory not found, skipping: " + dir)
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to expand exclude directory"), "exclude", dir)
	}

	files := make([]string, 0, len(c.Compile))
	for _, rel := range c.Files() {
		files = append(files, filepath.Join(dir, rel))
	}
	return files, nil
}
