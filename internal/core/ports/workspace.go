package ports

// Workspace manages the working directories of a build.
// Every operation is idempotent and missing paths are not errors.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Clean removes build, tmp_build, result and the previous log file.
	Clean(workDir string) error
	// Prepare creates build and tmp_build.
	Prepare(workDir string) error
	// Purge removes build, tmp_build and the generated build script.
	Purge(workDir string) error
	// Reset removes everything py2sec ever writes into the work dir.
	Reset(workDir string) error
}
