package domain

import "path/filepath"

const (
	// BuildDirName is the directory the compiler writes its output to.
	BuildDirName = "build"

	// TmpBuildDirName is the auxiliary scratch directory used by the compiler.
	TmpBuildDirName = "tmp_build"

	// ResultDirName is the directory holding the final deliverable.
	ResultDirName = "result"

	// StateDirName is the name of the internal state directory.
	StateDirName = ".py2sec"

	// ReportFileName is the name of the last build report inside the state directory.
	ReportFileName = "last_build.json"

	// BuildScriptName is the name of the generated build script.
	BuildScriptName = "tmp_py2sec_build.py"

	// TemplateFileName is the default name of the build script template.
	TemplateFileName = "py2sec_build.py.template"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "py2sec.yaml"

	// LogFileName is the file compiler output is redirected to in quiet mode.
	LogFileName = "log.txt"

	// BuildExtCommand is the subcommand passed to the build script.
	BuildExtCommand = "build_ext"

	// DefaultInterpreter is the interpreter binary used when no other is configured.
	DefaultInterpreter = "python"

	// DefaultSourceExtension is the extension of files selected for compilation.
	DefaultSourceExtension = ".py"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the permission for files only the owner may read (rw-------).
	PrivateFilePerm = 0o600
)

// WorkspaceDirNames returns the directories owned by py2sec inside a work dir.
// They are never classified as project files.
func WorkspaceDirNames() []string {
	return []string{BuildDirName, TmpBuildDirName, ResultDirName, StateDirName}
}

// BuildDir returns the compiler output directory for the given work dir.
func BuildDir(workDir string) string {
	return filepath.Join(workDir, BuildDirName)
}

// TmpBuildDir returns the scratch directory for the given work dir.
func TmpBuildDir(workDir string) string {
	return filepath.Join(workDir, TmpBuildDirName)
}

// ResultDir returns the result directory for the given work dir.
func ResultDir(workDir string) string {
	return filepath.Join(workDir, ResultDirName)
}

// BuildScriptPath returns the path of the generated build script.
func BuildScriptPath(workDir string) string {
	return filepath.Join(workDir, BuildScriptName)
}

// LogFilePath returns the path of the quiet-mode log file.
func LogFilePath(workDir string) string {
	return filepath.Join(workDir, LogFileName)
}

// DefaultReportPath returns the path of the last build report.
// It joins the work dir, .py2sec and last_build.json.
func DefaultReportPath(workDir string) string {
	return filepath.Join(workDir, StateDirName, ReportFileName)
}
