// Package pipeline orchestrates a py2sec build from classification to the result tree.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/py2sec/internal/core/domain"
	"go.trai.ch/py2sec/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stage names as they appear in telemetry and the build report.
const (
	StageClean    = "clean"
	StageClassify = "classify"
	StagePrepare  = "prepare"
	StageCompile  = "compile"
	StageAssemble = "assemble"
	StagePurge    = "purge"
	StageReport   = "report"
)

// Pipeline runs the build stages in order.
type Pipeline struct {
	workspace  ports.Workspace
	classifier ports.Classifier
	excluder   ports.ExcludeResolver
	generator  ports.ScriptGenerator
	compiler   ports.Compiler
	assembler  ports.Assembler
	store      ports.ReportStore
	telemetry  ports.Telemetry
	logger     ports.Logger
	now        func() time.Time
}

// New creates a new Pipeline.
func New(
	workspace ports.Workspace,
	classifier ports.Classifier,
	excluder ports.ExcludeResolver,
	generator ports.ScriptGenerator,
	compiler ports.Compiler,
	assembler ports.Assembler,
	store ports.ReportStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		workspace:  workspace,
		classifier: classifier,
		excluder:   excluder,
		generator:  generator,
		compiler:   compiler,
		assembler:  assembler,
		store:      store,
		telemetry:  telemetry,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock replaces the clock used for report timestamps.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// plan is what the classify stage decided.
type plan struct {
	classification domain.Classification
	excluded       []string
	// compile holds the work-dir relative paths handed to the compiler.
	compile []string
}

// run carries the state of a single Run call.
type run struct {
	p      *Pipeline
	opts   domain.BuildOptions
	stages []domain.StageRecord
}

// Run executes a complete build. Nothing is written to the result tree when
// the compiler fails.
func (p *Pipeline) Run(ctx context.Context, opts domain.BuildOptions) (*domain.BuildReport, error) {
	started := p.now()
	r := &run{p: p, opts: opts}

	if err := r.stage(ctx, StageClean, func(context.Context, ports.Vertex) error {
		return p.workspace.Clean(opts.WorkDir)
	}); err != nil {
		return nil, err
	}

	var pl plan
	if err := r.stage(ctx, StageClassify, func(_ context.Context, v ports.Vertex) error {
		var err error
		pl, err = r.classify(v)
		return err
	}); err != nil {
		return nil, err
	}

	if err := r.stage(ctx, StagePrepare, func(context.Context, ports.Vertex) error {
		return p.workspace.Prepare(opts.WorkDir)
	}); err != nil {
		return nil, err
	}

	if len(pl.compile) == 0 {
		p.logger.Warn("nothing to compile")
		r.skip(ctx, StageCompile)
	} else if err := r.stage(ctx, StageCompile, func(ctx context.Context, v ports.Vertex) error {
		return r.compile(ctx, v, pl.compile)
	}); err != nil {
		return nil, err
	}

	var report *domain.BuildReport
	if err := r.stage(ctx, StageAssemble, func(ctx context.Context, _ ports.Vertex) error {
		var err error
		report, err = p.assembler.Assemble(ctx, opts, pl.classification)
		return err
	}); err != nil {
		return nil, err
	}

	if opts.Release {
		if err := r.stage(ctx, StagePurge, func(context.Context, ports.Vertex) error {
			return p.workspace.Purge(opts.WorkDir)
		}); err != nil {
			return nil, err
		}
	} else {
		r.skip(ctx, StagePurge)
	}

	report.Compiled = pl.compile
	report.Excluded = pl.excluded
	report.StartedAt = started

	if err := r.stage(ctx, StageReport, func(context.Context, ports.Vertex) error {
		report.Stages = slices.Clone(r.stages)
		report.FinishedAt = p.now()
		return p.store.Save(opts.WorkDir, report)
	}); err != nil {
		p.logger.Warn("failed to save build report: " + err.Error())
	}
	report.Stages = r.stages

	p.logger.Info(fmt.Sprintf("compiled %d files, placed %d artifacts, copied %d files",
		len(report.Compiled), len(report.Artifacts), len(report.Copied)))
	return report, nil
}

// stage runs fn inside a telemetry vertex and records its outcome.
func (r *run) stage(ctx context.Context, name string, fn func(context.Context, ports.Vertex) error) error {
	start := r.p.now()
	stageCtx, vertex := r.p.telemetryFor(ctx).Record(ctx, name)

	err := ctx.Err()
	if err == nil {
		err = fn(stageCtx, vertex)
	}
	vertex.Complete(err)

	status := domain.StageStatusCompleted
	if err != nil {
		status = domain.StageStatusFailed
	}
	r.stages = append(r.stages, domain.StageRecord{Name: name, Status: status, Duration: r.p.now().Sub(start)})
	return err
}

// telemetryFor returns the telemetry carried by ctx, falling back to the
// pipeline's own.
func (p *Pipeline) telemetryFor(ctx context.Context) ports.Telemetry {
	if t, ok := ports.TelemetryFromContext(ctx); ok {
		return t
	}
	return p.telemetry
}

func (r *run) skip(ctx context.Context, name string) {
	_, vertex := r.p.telemetryFor(ctx).Record(ctx, name)
	vertex.Cached()
	vertex.Complete(nil)
	r.stages = append(r.stages, domain.StageRecord{Name: name, Status: domain.StageStatusSkipped})
}

func (r *run) classify(v ports.Vertex) (plan, error) {
	if r.opts.IsSingleFile() {
		return r.classifyFile(v)
	}

	opts := r.opts
	c, err := r.p.classifier.Classify(opts.RootPath(), domain.ClassifyOptions{
		Recursive: true,
		Style:     domain.PathRelative,
		Filter:    opts.SourceFilter(),
		SkipDirs:  workspaceSkips(opts),
		SkipFiles: withinRoot(opts, opts.OwnFiles()),
	})
	if err != nil {
		return plan{}, err
	}

	excluded, err := r.p.excluder.Resolve(opts.RootPath(), opts.Exclude)
	if err != nil {
		return plan{}, err
	}
	dropped := c.Excluded(excluded)
	c = c.Without(excluded)

	compile := make([]string, 0, len(c.Compile))
	for _, rel := range c.Compile {
		compile = append(compile, filepath.Join(opts.Root, rel))
	}

	v.Log(domain.LogLevelInfo, fmt.Sprintf("%d to compile, %d to copy, %d excluded",
		len(c.Compile), len(c.Copy), len(dropped)))
	return plan{classification: c, excluded: dropped, compile: compile}, nil
}

func (r *run) classifyFile(v ports.Vertex) (plan, error) {
	opts := r.opts
	path := opts.FilePath()

	siblings, err := r.p.classifier.Classify(filepath.Dir(path), domain.ClassifyOptions{
		Style:  domain.PathName,
		Filter: opts.SourceFilter(),
	})
	if err != nil {
		return plan{}, err
	}

	name := filepath.Base(path)
	switch {
	case slices.Contains(siblings.Compile, name):
		v.Log(domain.LogLevelInfo, "compiling single file "+opts.File)
		return plan{
			classification: domain.Classification{Compile: []string{name}},
			compile:        []string{opts.File},
		}, nil
	case slices.Contains(siblings.Copy, name):
		r.p.logger.Warn(fmt.Sprintf("%s does not have a source extension (%s), nothing to compile",
			opts.File, strings.Join(opts.Extensions, ", ")))
		return plan{}, nil
	default:
		return plan{}, errors.Join(domain.ErrRootNotFound, zerr.With(zerr.New("file not found"), "file", path))
	}
}

func (r *run) compile(ctx context.Context, v ports.Vertex, files []string) error {
	opts := r.opts
	strategy := SelectStrategy(opts.Platform)
	v.Log(domain.LogLevelInfo, fmt.Sprintf("compiling %d files (%s)", len(files), strategy.Name()))
	r.p.logger.Info(fmt.Sprintf("compiling %d files", len(files)))

	return strategy.Run(ctx, files, func(ctx context.Context, batch []string) error {
		params := domain.ScriptParamsFor(opts, batch)
		if err := r.p.generator.Generate(opts.TemplatePath(), domain.BuildScriptPath(opts.WorkDir), params); err != nil {
			return err
		}
		if err := r.p.compiler.Compile(ctx, domain.CompileRequestFor(opts)); err != nil {
			return errors.Join(domain.ErrBuildFailed, err)
		}
		return nil
	})
}

// workspaceSkips lists the workspace directories that lie inside the root,
// relative to it, so their contents are never classified.
func workspaceSkips(opts domain.BuildOptions) []string {
	dirs := make([]string, 0, len(domain.WorkspaceDirNames()))
	for _, name := range domain.WorkspaceDirNames() {
		dirs = append(dirs, filepath.Join(opts.WorkDir, name))
	}
	return withinRoot(opts, dirs)
}

// withinRoot returns the paths that lie below the root, relative to it.
func withinRoot(opts domain.BuildOptions, paths []string) []string {
	root, err := filepath.Abs(opts.RootPath())
	if err != nil {
		return nil
	}
	var out []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		out = append(out, rel)
	}
	return out
}
