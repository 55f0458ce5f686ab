package domain

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Mode selects how the result tree is assembled for a directory build.
type Mode string

const (
	// ModeMinimal emits only compiled artifacts.
	ModeMinimal Mode = "minimal"
	// ModeClassical emits compiled artifacts and copies every non-compiled file.
	ModeClassical Mode = "classical"
	// ModeInplace places artifacts next to their sources and removes the compiled originals.
	ModeInplace Mode = "inplace"
)

// DefaultMode is the mode used when none is configured.
const DefaultMode = ModeClassical

// ParseMode converts a user supplied string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeMinimal, ModeClassical, ModeInplace:
		return m, nil
	default:
		return "", errors.Join(ErrInvalidMode, zerr.With(zerr.New("unknown mode"), "mode", s))
	}
}

// BuildOptions is the configuration threaded through every stage of a build.
// It is produced once by OptionsBuilder.Build and never modified afterwards.
type BuildOptions struct {
	Version     string
	Interpreter string
	File        string
	Root        string
	Mode        Mode
	Exclude     []string
	Jobs        int
	Quiet       bool
	Release     bool
	Extensions  []string
	Template    string
	Config      string
	WorkDir     string
	Platform    Platform
}

// IsSingleFile reports whether the build targets a single file instead of a directory.
func (o BuildOptions) IsSingleFile() bool {
	return o.File != ""
}

// InterpreterCommand returns the interpreter binary, suffixed with the version when set.
func (o BuildOptions) InterpreterCommand() string {
	return o.Interpreter + o.Version
}

// SourceFilter returns the extension filter selecting files to compile.
func (o BuildOptions) SourceFilter() ExtensionFilter {
	return ExtensionsFilter(o.Extensions...)
}

// RootPath returns the project root resolved against the work dir.
func (o BuildOptions) RootPath() string {
	return resolve(o.WorkDir, o.Root)
}

func resolve(workDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}

// FilePath returns the single target file resolved against the work dir.
func (o BuildOptions) FilePath() string {
	return resolve(o.WorkDir, o.File)
}

// TemplatePath returns the template path resolved against the work dir.
func (o BuildOptions) TemplatePath() string {
	return resolve(o.WorkDir, o.Template)
}

// OwnFiles returns the files py2sec itself reads or writes during a build.
// They never count as project files, even when they sit inside the root.
func (o BuildOptions) OwnFiles() []string {
	files := []string{
		BuildScriptPath(o.WorkDir),
		LogFilePath(o.WorkDir),
		o.TemplatePath(),
		filepath.Join(o.WorkDir, ConfigFileName),
	}
	if o.Config != "" {
		files = append(files, o.Config)
	}
	return files
}

// Prefix returns the root as it is mirrored under the result tree.
// Roots that leave the work dir are mirrored by their base name.
func (o BuildOptions) Prefix() string {
	root := filepath.Clean(o.Root)
	if filepath.IsAbs(root) || root == ".." || strings.HasPrefix(root, ".."+string(filepath.Separator)) {
		return filepath.Base(root)
	}
	return root
}

// OptionsBuilder assembles BuildOptions. Every setter records the first
// error it encounters; Build reports it together with the final validation.
type OptionsBuilder struct {
	opts BuildOptions
	err  error
}

// NewOptionsBuilder returns a builder populated with the default options.
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{
		opts: BuildOptions{
			Interpreter: DefaultInterpreter,
			Mode:        DefaultMode,
			Jobs:        1,
			Extensions:  []string{DefaultSourceExtension},
			Template:    TemplateFileName,
			WorkDir:     ".",
			Platform:    CurrentPlatform(),
		},
	}
}

func (b *OptionsBuilder) fail(err error) *OptionsBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// WithVersion sets the interpreter version suffix.
func (b *OptionsBuilder) WithVersion(version string) *OptionsBuilder {
	b.opts.Version = strings.TrimSpace(version)
	return b
}

// WithInterpreter sets the interpreter base name. Empty values keep the default.
func (b *OptionsBuilder) WithInterpreter(name string) *OptionsBuilder {
	if name = strings.TrimSpace(name); name != "" {
		b.opts.Interpreter = name
	}
	return b
}

// WithFile selects a single file. It conflicts with WithRoot.
func (b *OptionsBuilder) WithFile(path string) *OptionsBuilder {
	if path == "" {
		return b
	}
	if b.opts.Root != "" {
		return b.fail(errors.Join(ErrConflictingTarget, zerr.With(zerr.New("file given after directory"), "file", path)))
	}
	b.opts.File = filepath.Clean(path)
	return b
}

// WithRoot selects a project directory. It conflicts with WithFile.
func (b *OptionsBuilder) WithRoot(path string) *OptionsBuilder {
	if path == "" {
		return b
	}
	if b.opts.File != "" {
		return b.fail(errors.Join(ErrConflictingTarget, zerr.With(zerr.New("directory given after file"), "directory", path)))
	}
	b.opts.Root = filepath.Clean(path)
	return b
}

// WithMode parses and sets the run mode.
func (b *OptionsBuilder) WithMode(mode string) *OptionsBuilder {
	m, err := ParseMode(mode)
	if err != nil {
		return b.fail(err)
	}
	b.opts.Mode = m
	return b
}

// WithExclude appends raw exclusion tokens. Comma separated specs are split.
func (b *OptionsBuilder) WithExclude(specs []string) *OptionsBuilder {
	for _, spec := range specs {
		b.opts.Exclude = append(b.opts.Exclude, SplitExcludeSpec(spec)...)
	}
	return b
}

// WithJobs sets the job count forwarded to the compiler.
func (b *OptionsBuilder) WithJobs(jobs int) *OptionsBuilder {
	if jobs < 1 {
		return b.fail(invalidJobs(jobs))
	}
	b.opts.Jobs = jobs
	return b
}

// WithQuiet toggles redirection of compiler output to the log file.
func (b *OptionsBuilder) WithQuiet(quiet bool) *OptionsBuilder {
	b.opts.Quiet = quiet
	return b
}

// WithRelease toggles removal of intermediates after a successful build.
func (b *OptionsBuilder) WithRelease(release bool) *OptionsBuilder {
	b.opts.Release = release
	return b
}

// WithExtensions replaces the source extension filter.
func (b *OptionsBuilder) WithExtensions(exts []string) *OptionsBuilder {
	b.opts.Extensions = normalizeExtensions(exts)
	if len(b.opts.Extensions) == 0 {
		return b.fail(ErrNoExtensions)
	}
	return b
}

// WithTemplate sets the build script template path.
func (b *OptionsBuilder) WithTemplate(path string) *OptionsBuilder {
	if path != "" {
		b.opts.Template = path
	}
	return b
}

// WithConfig records the configuration file the options were loaded from.
// The path is taken as given, not resolved against the work dir.
func (b *OptionsBuilder) WithConfig(path string) *OptionsBuilder {
	if path != "" {
		b.opts.Config = filepath.Clean(path)
	}
	return b
}

// WithWorkDir sets the directory the build runs in.
func (b *OptionsBuilder) WithWorkDir(dir string) *OptionsBuilder {
	if dir != "" {
		b.opts.WorkDir = filepath.Clean(dir)
	}
	return b
}

// WithPlatform overrides the detected platform.
func (b *OptionsBuilder) WithPlatform(p Platform) *OptionsBuilder {
	b.opts.Platform = p
	return b
}

// Build validates the collected options and returns an independent copy.
func (b *OptionsBuilder) Build() (BuildOptions, error) {
	if b.err != nil {
		return BuildOptions{}, b.err
	}

	opts := b.opts
	switch {
	case opts.File != "" && opts.Root != "":
		return BuildOptions{}, ErrConflictingTarget
	case opts.File == "" && opts.Root == "":
		return BuildOptions{}, ErrNoTarget
	case opts.Jobs < 1:
		return BuildOptions{}, invalidJobs(opts.Jobs)
	case len(opts.Extensions) == 0:
		return BuildOptions{}, ErrNoExtensions
	}
	if _, err := ParseMode(string(opts.Mode)); err != nil {
		return BuildOptions{}, err
	}

	opts.Exclude = slices.Clone(opts.Exclude)
	opts.Extensions = slices.Clone(opts.Extensions)
	opts.Platform.NativeExtensions = slices.Clone(opts.Platform.NativeExtensions)
	return opts, nil
}

func invalidJobs(jobs int) error {
	return errors.Join(ErrInvalidJobs, zerr.With(zerr.New("job count out of range"), "jobs", jobs))
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !slices.Contains(out, ext) {
			out = append(out, ext)
		}
	}
	return out
}
