package domain

import "go.trai.ch/zerr"

var (
	// ErrConflictingTarget is returned when both a single file and a root directory are selected.
	ErrConflictingTarget = zerr.New("do not use a file and a directory at the same time")

	// ErrNoTarget is returned when neither a single file nor a root directory is selected.
	ErrNoTarget = zerr.New("no file or directory specified")

	// ErrInvalidMode is returned when the run mode is not one of the supported values.
	ErrInvalidMode = zerr.New("invalid mode, expected 'minimal', 'classical' or 'inplace'")

	// ErrInvalidJobs is returned when the job count is not a positive integer.
	ErrInvalidJobs = zerr.New("job count must be a positive integer")

	// ErrNoExtensions is returned when the source extension filter is empty.
	ErrNoExtensions = zerr.New("at least one source extension is required")

	// ErrRootNotFound is returned when the project directory does not exist.
	ErrRootNotFound = zerr.New("no such directory, please check or use the absolute path")

	// ErrRootNotDirectory is returned when the project root is not a directory.
	ErrRootNotDirectory = zerr.New("project root is not a directory")

	// ErrTemplateNotFound is returned when the build script template cannot be read.
	ErrTemplateNotFound = zerr.New("build script template not found")

	// ErrTemplateInvalid is returned when the build script template cannot be rendered.
	ErrTemplateInvalid = zerr.New("build script template is invalid")

	// ErrScriptWriteFailed is returned when the build script cannot be written.
	ErrScriptWriteFailed = zerr.New("failed to write build script")

	// ErrCompilerFailed is returned when the external compiler exits with a non-zero status.
	ErrCompilerFailed = zerr.New("compiler exited with an error")

	// ErrBuildFailed is returned when the compile stage of a run fails.
	ErrBuildFailed = zerr.New("py2sec encrypt encountered an error")

	// ErrWorkspaceCleanFailed is returned when a working directory cannot be removed.
	ErrWorkspaceCleanFailed = zerr.New("failed to clean workspace")

	// ErrWorkspaceCreateFailed is returned when a working directory cannot be created.
	ErrWorkspaceCreateFailed = zerr.New("failed to create workspace directory")

	// ErrWalkFailed is returned when a directory tree cannot be walked.
	ErrWalkFailed = zerr.New("failed to walk directory")

	// ErrCopyFailed is returned when a file cannot be copied into the result tree.
	ErrCopyFailed = zerr.New("failed to copy file")

	// ErrCopyVerificationFailed is returned when a copied file does not match its source.
	ErrCopyVerificationFailed = zerr.New("copied file does not match its source")

	// ErrRemoveSourceFailed is returned when an original source cannot be removed in place.
	ErrRemoveSourceFailed = zerr.New("failed to remove original source")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreReadFailed is returned when the build report cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build report")

	// ErrStoreUnmarshalFailed is returned when the build report cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build report")

	// ErrStoreMarshalFailed is returned when the build report cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build report")

	// ErrStoreWriteFailed is returned when the build report cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build report")

	// ErrStoreCreateFailed is returned when the report store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build report directory")

	// ErrTemplateExists is returned by init when a template already exists and overwrite was not requested.
	ErrTemplateExists = zerr.New("template already exists, use --force to overwrite")
)
