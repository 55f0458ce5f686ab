package ports

import "go.trai.ch/py2sec/internal/core/domain"

// Classifier partitions the files under a root into compile and copy sets.
//
//go:generate mockgen -source=classifier.go -destination=mocks/mock_classifier.go -package=mocks
type Classifier interface {
	Classify(root string, opts domain.ClassifyOptions) (domain.Classification, error)
}

// ExcludeResolver expands exclusion tokens into root-relative file paths.
type ExcludeResolver interface {
	// Resolve returns the sorted, deduplicated set of excluded files.
	// Directory tokens naming a missing directory expand to nothing.
	Resolve(root string, tokens []string) ([]string, error)
}
