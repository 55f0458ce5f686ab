package app

import (
	"path/filepath"

	"go.trai.ch/py2sec/internal/core/domain"
)

// RunOptions holds the values given on the command line. Nil pointers and
// empty slices mean the flag was not set, so the config file value applies.
type RunOptions struct {
	WorkDir    string
	ConfigPath string

	Directory   *string
	File        *string
	Python      *string
	Interpreter *string
	Mode        *string
	Exclude     []string
	Jobs        *int
	Quiet       *bool
	Release     *bool
	Extensions  []string
	Template    *string

	// Interactive shows the stage dashboard. Compiler output then goes to
	// the log file and the dashboard instead of the terminal.
	Interactive bool
}

// configPath returns the explicit config path or the default one in the work dir.
func (o RunOptions) configPath() string {
	if o.ConfigPath != "" {
		return o.ConfigPath
	}
	return filepath.Join(o.workDir(), domain.ConfigFileName)
}

func (o RunOptions) workDir() string {
	if o.WorkDir == "" {
		return "."
	}
	return o.WorkDir
}

// merge layers the command line over the config file into BuildOptions.
// A target given on the command line replaces both targets of the file.
func (o RunOptions) merge(cfg *domain.ProjectConfig, platform domain.Platform) (domain.BuildOptions, error) {
	if cfg == nil {
		cfg = &domain.ProjectConfig{}
	}

	b := domain.NewOptionsBuilder().
		WithWorkDir(o.workDir()).
		WithConfig(o.configPath()).
		WithPlatform(platform)

	if o.Directory != nil || o.File != nil {
		b.WithRoot(deref(o.Directory)).WithFile(deref(o.File))
	} else {
		b.WithRoot(cfg.Directory).WithFile(cfg.File)
	}

	b.WithInterpreter(pick(o.Interpreter, cfg.Interpreter))
	b.WithVersion(pick(o.Python, deref(cfg.Python)))
	if mode := pick(o.Mode, cfg.Mode); mode != "" {
		b.WithMode(mode)
	}

	b.WithExclude(cfg.Exclude)
	b.WithExclude(o.Exclude)

	switch {
	case o.Jobs != nil:
		b.WithJobs(*o.Jobs)
	case cfg.Jobs != nil:
		b.WithJobs(*cfg.Jobs)
	}

	b.WithQuiet(o.Interactive || pickBool(o.Quiet, cfg.Quiet))
	b.WithRelease(pickBool(o.Release, cfg.Release))

	switch {
	case len(o.Extensions) > 0:
		b.WithExtensions(o.Extensions)
	case len(cfg.Extensions) > 0:
		b.WithExtensions(cfg.Extensions)
	}

	b.WithTemplate(pick(o.Template, cfg.Template))
	return b.Build()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func pick(flag *string, fallback string) string {
	if flag != nil {
		return *flag
	}
	return fallback
}

func pickBool(flag, fallback *bool) bool {
	switch {
	case flag != nil:
		return *flag
	case fallback != nil:
		return *fallback
	default:
		return false
	}
}
