package fs

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/py2sec/internal/core/domain"
	"go.trai.ch/py2sec/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace creates and removes the working directories of a build.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Ensure creates every directory, including parents. Existing directories are left alone.
func (w *Workspace) Ensure(dirs []string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return errors.Join(domain.ErrWorkspaceCreateFailed, zerr.With(zerr.Wrap(err, "mkdir"), "path", dir))
		}
	}
	return nil
}

// Clean removes build, tmp_build, result, the build script and the
// quiet-mode log of a previous run.
func (w *Workspace) Clean(workDir string) error {
	return remove(
		domain.BuildDir(workDir),
		domain.TmpBuildDir(workDir),
		domain.ResultDir(workDir),
		domain.BuildScriptPath(workDir),
		domain.LogFilePath(workDir),
	)
}

// Prepare creates build and tmp_build.
func (w *Workspace) Prepare(workDir string) error {
	return w.Ensure([]string{domain.BuildDir(workDir), domain.TmpBuildDir(workDir)})
}

// Purge removes build, tmp_build and the generated build script.
func (w *Workspace) Purge(workDir string) error {
	return remove(domain.BuildDir(workDir), domain.TmpBuildDir(workDir), domain.BuildScriptPath(workDir))
}

// Reset removes every path py2sec writes into the work dir.
func (w *Workspace) Reset(workDir string) error {
	return remove(
		domain.BuildDir(workDir),
		domain.TmpBuildDir(workDir),
		domain.ResultDir(workDir),
		domain.BuildScriptPath(workDir),
		domain.LogFilePath(workDir),
		filepath.Join(workDir, domain.StateDirName),
	)
}

func remove(paths ...string) error {
	for _, p := range paths {
		if err := os.RemoveAll(p); err != nil {
			return errors.Join(domain.ErrWorkspaceCleanFailed, zerr.With(zerr.Wrap(err, "remove"), "path", p))
		}
	}
	return nil
}
