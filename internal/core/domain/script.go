package domain

import (
	"strconv"
	"strings"
)

// ScriptParams is the named-field record a build script template is rendered with.
type ScriptParams struct {
	Files   []string
	Version string
	Jobs    int
	Quiet   bool
}

// FileList renders the files as the body of a raw-string list literal:
// the caller's template supplies the outer r" and ".
func (p ScriptParams) FileList() string {
	return strings.Join(p.Files, `", r"`)
}

// JobsLiteral renders the job count.
func (p ScriptParams) JobsLiteral() string {
	return strconv.Itoa(p.Jobs)
}

// QuietLiteral renders the quiet flag as a Python boolean.
func (p ScriptParams) QuietLiteral() string {
	if p.Quiet {
		return "True"
	}
	return "False"
}

// ScriptParamsFor derives the template record for a set of files.
func ScriptParamsFor(opts BuildOptions, files []string) ScriptParams {
	return ScriptParams{
		Files:   files,
		Version: opts.Version,
		Jobs:    opts.Jobs,
		Quiet:   opts.Quiet,
	}
}
