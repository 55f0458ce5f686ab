// Package app implements the application layer for py2sec.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/py2sec/internal/core/domain"
	"go.trai.ch/py2sec/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder runs a complete build for a set of options.
type Builder interface {
	Run(ctx context.Context, opts domain.BuildOptions) (*domain.BuildReport, error)
}

// App represents the main application logic.
type App struct {
	builder      Builder
	configLoader ports.ConfigLoader
	generator    ports.ScriptGenerator
	workspace    ports.Workspace
	store        ports.ReportStore
	telemetry    ports.Telemetry
	dashboard    ports.Dashboard
	logger       ports.Logger
	platform     domain.Platform
}

// New creates a new App instance.
func New(
	builder Builder,
	loader ports.ConfigLoader,
	generator ports.ScriptGenerator,
	workspace ports.Workspace,
	store ports.ReportStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		builder:      builder,
		configLoader: loader,
		generator:    generator,
		workspace:    workspace,
		store:        store,
		telemetry:    telemetry,
		logger:       logger,
		platform:     domain.CurrentPlatform(),
	}
}

// WithPlatform overrides the detected platform.
func (a *App) WithPlatform(p domain.Platform) *App {
	a.platform = p
	return a
}

// WithDashboard sets the view used for interactive runs.
func (a *App) WithDashboard(d ports.Dashboard) *App {
	a.dashboard = d
	return a
}

// Run loads the project configuration, merges it with opts and executes the build.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Warn("failed to close telemetry: " + err.Error())
		}
	}()

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	buildOpts, err := opts.merge(cfg, a.platform)
	if err != nil {
		return err
	}

	target := buildOpts.Root
	if buildOpts.IsSingleFile() {
		target = buildOpts.File
	}
	a.logger.Info(fmt.Sprintf("py2sec: %s (%s mode)", target, buildOpts.Mode))

	report, err := a.build(ctx, buildOpts, opts.Interactive)
	if err != nil {
		return err
	}

	if !buildOpts.IsSingleFile() && buildOpts.Mode == domain.ModeInplace {
		a.logger.Info(fmt.Sprintf("done: %d artifacts placed next to their sources", len(report.Artifacts)))
		return nil
	}
	a.logger.Info(fmt.Sprintf("done: %d artifacts written to %s", len(report.Artifacts), domain.ResultDir(buildOpts.WorkDir)))
	return nil
}

func (a *App) build(ctx context.Context, opts domain.BuildOptions, interactive bool) (*domain.BuildReport, error) {
	if !interactive || a.dashboard == nil {
		return a.builder.Run(ctx, opts)
	}

	dashCtx, view, err := a.dashboard.Open(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open dashboard")
	}
	defer func() {
		if err := view.Close(); err != nil {
			a.logger.Warn("failed to close dashboard: " + err.Error())
		}
	}()
	return a.builder.Run(ports.ContextWithTelemetry(dashCtx, view), opts)
}

func (a *App) loadConfig(opts RunOptions) (*domain.ProjectConfig, error) {
	path := opts.configPath()
	explicit := opts.ConfigPath != ""

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if cfg == nil && explicit {
		return nil, errors.Join(domain.ErrConfigNotFound, zerr.With(zerr.New("config file not found"), "path", path))
	}
	return cfg, nil
}

// Init writes the default build script template into workDir.
func (a *App) Init(workDir string, force bool) error {
	path := filepath.Join(workDir, domain.TemplateFileName)
	if err := a.generator.Scaffold(path, force); err != nil {
		return err
	}
	a.logger.Info("wrote " + path)
	return nil
}

// Clean removes intermediates from workDir. With all set, the result tree,
// the log file and the state directory are removed too.
func (a *App) Clean(workDir string, all bool) error {
	if all {
		if err := a.workspace.Reset(workDir); err != nil {
			return err
		}
		a.logger.Info("removed all py2sec output from " + workDir)
		return nil
	}
	if err := a.workspace.Purge(workDir); err != nil {
		return err
	}
	a.logger.Info("removed build intermediates from " + workDir)
	return nil
}

// LastReport returns the report of the last successful build in workDir,
// or nil when there is none.
func (a *App) LastReport(workDir string) (*domain.BuildReport, error) {
	return a.store.Load(workDir)
}
