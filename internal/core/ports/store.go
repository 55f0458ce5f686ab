package ports

import "go.trai.ch/py2sec/internal/core/domain"

// ReportStore defines the interface for persisting build reports.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Load retrieves the last build report of the work dir.
	// Returns nil, nil if no report was stored.
	Load(workDir string) (*domain.BuildReport, error)

	// Save stores the build report, replacing any previous one.
	Save(workDir string, report *domain.BuildReport) error
}
