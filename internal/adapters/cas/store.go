// Package cas implements persistence of build reports.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/py2sec/internal/core/domain"
	"go.trai.ch/py2sec/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportStore = (*Store)(nil)

// Store implements ports.ReportStore using a JSON file in each work dir's state directory.
type Store struct {
	mu    sync.RWMutex
	cache map[string]*domain.BuildReport
}

// NewStore creates a new ReportStore.
func NewStore() *Store {
	return &Store{cache: make(map[string]*domain.BuildReport)}
}

// Load retrieves the last build report of workDir.
func (s *Store) Load(workDir string) (*domain.BuildReport, error) {
	path := domain.DefaultReportPath(workDir)

	s.mu.RLock()
	cached, ok := s.cache[path]
	s.mu.RUnlock()
	if ok {
		return cloneReport(cached), nil
	}

	//nolint:gosec // Path is derived from the work dir
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrStoreReadFailed,
			zerr.With(zerr.Wrap(err, "failed to read build report"), "path", path))
	}

	if len(data) == 0 {
		return nil, nil
	}

	var report domain.BuildReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errors.Join(domain.ErrStoreUnmarshalFailed,
			zerr.With(zerr.Wrap(err, "failed to unmarshal build report"), "path", path))
	}

	s.mu.Lock()
	s.cache[path] = cloneReport(&report)
	s.mu.Unlock()

	return &report, nil
}

// Save stores report as the last build report of workDir.
func (s *Store) Save(workDir string, report *domain.BuildReport) error {
	path := domain.DefaultReportPath(workDir)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrStoreMarshalFailed, zerr.Wrap(err, "failed to marshal build report"))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrStoreCreateFailed,
			zerr.With(zerr.Wrap(err, "failed to create directory for build report"), "path", dir))
	}

	tmp, err := os.CreateTemp(dir, "report-*.json")
	if err != nil {
		return errors.Join(domain.ErrStoreWriteFailed,
			zerr.With(zerr.Wrap(err, "failed to create temporary report"), "path", dir))
	}
	tmpPath := tmp.Name()
	_, writeErr := tmp.Write(append(data, '\n'))
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Join(domain.ErrStoreWriteFailed,
			zerr.With(zerr.Wrap(err, "failed to write build report"), "path", tmpPath))
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Join(domain.ErrStoreWriteFailed,
			zerr.With(zerr.Wrap(err, "failed to replace build report"), "path", path))
	}

	s.mu.Lock()
	s.cache[path] = cloneReport(report)
	s.mu.Unlock()
	return nil
}

func cloneReport(r *domain.BuildReport) *domain.BuildReport {
	if r == nil {
		return nil
	}
	c := *r
	c.Compiled = append([]string(nil), r.Compiled...)
	c.Excluded = append([]string(nil), r.Excluded...)
	c.Artifacts = append([]domain.Artifact(nil), r.Artifacts...)
	c.Copied = append([]domain.Artifact(nil), r.Copied...)
	c.Removed = append([]string(nil), r.Removed...)
	c.Stages = append([]domain.StageRecord(nil), r.Stages...)
	return &c
}
