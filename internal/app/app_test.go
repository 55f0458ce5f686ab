package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/py2sec/internal/app"
	"go.trai.ch/py2sec/internal/core/domain"
	"go.trai.ch/py2sec/internal/core/ports"
	"go.trai.ch/py2sec/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fakeBuilder struct {
	calls []domain.BuildOptions
	views []ports.Telemetry
	err   error
}

func (f *fakeBuilder) Run(ctx context.Context, opts domain.BuildOptions) (*domain.BuildReport, error) {
	f.calls = append(f.calls, opts)
	if view, ok := ports.TelemetryFromContext(ctx); ok {
		f.views = append(f.views, view)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &domain.BuildReport{Mode: opts.Mode}, nil
}

type fixture struct {
	builder   *fakeBuilder
	loader    *mocks.MockConfigLoader
	generator *mocks.MockScriptGenerator
	workspace *mocks.MockWorkspace
	store     *mocks.MockReportStore
	telemetry *mocks.MockTelemetry
	dashboard *mocks.MockDashboard
	logger    *mocks.MockLogger
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		builder:   &fakeBuilder{},
		loader:    mocks.NewMockConfigLoader(ctrl),
		generator: mocks.NewMockScriptGenerator(ctrl),
		workspace: mocks.NewMockWorkspace(ctrl),
		store:     mocks.NewMockReportStore(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		dashboard: mocks.NewMockDashboard(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.app = app.New(f.builder, f.loader, f.generator, f.workspace, f.store, f.telemetry, f.logger).
		WithPlatform(domain.PlatformFor("linux")).
		WithDashboard(f.dashboard)
	return f
}

func ptr[T any](v T) *T {
	return &v
}

func TestApp_Run_FlagsOnly(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(filepath.Join("work", domain.ConfigFileName)).Return(nil, nil)
	f.telemetry.EXPECT().Close().Return(nil)

	err := f.app.Run(context.Background(), app.RunOptions{
		WorkDir:   "work",
		Directory: ptr("example"),
		Python:    ptr("3"),
		Exclude:   []string{"setup.py,exclude_dir/"},
		Jobs:      ptr(4),
		Quiet:     ptr(true),
	})
	require.NoError(t, err)

	require.Len(t, f.builder.calls, 1)
	opts := f.builder.calls[0]
	assert.Equal(t, "example", opts.Root)
	assert.Equal(t, "python3", opts.InterpreterCommand())
	assert.Equal(t, domain.ModeClassical, opts.Mode)
	assert.Equal(t, []string{"setup.py", "exclude_dir/"}, opts.Exclude)
	assert.Equal(t, 4, opts.Jobs)
	assert.True(t, opts.Quiet)
	assert.False(t, opts.Release)
	assert.Equal(t, "work", opts.WorkDir)
	assert.Equal(t, "linux", opts.Platform.Name)
}

func TestApp_Run_MergesConfig(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(filepath.Join(".", domain.ConfigFileName)).Return(&domain.ProjectConfig{
		Interpreter: "pypy",
		Python:      ptr("3"),
		Directory:   "src",
		Mode:        "minimal",
		Exclude:     []string{"a.py"},
		Jobs:        ptr(2),
		Quiet:       ptr(true),
		Release:     ptr(true),
		Extensions:  []string{".py", ".pyx"},
		Template:    "custom.template",
	}, nil)
	f.telemetry.EXPECT().Close().Return(nil)

	err := f.app.Run(context.Background(), app.RunOptions{
		Mode:    ptr("inplace"),
		Exclude: []string{"b/"},
		Release: ptr(false),
	})
	require.NoError(t, err)

	opts := f.builder.calls[0]
	assert.Equal(t, "src", opts.Root)
	assert.Equal(t, "pypy3", opts.InterpreterCommand())
	assert.Equal(t, domain.ModeInplace, opts.Mode, "flags override the config file")
	assert.Equal(t, []string{"a.py", "b/"}, opts.Exclude)
	assert.Equal(t, 2, opts.Jobs)
	assert.True(t, opts.Quiet)
	assert.False(t, opts.Release, "an explicit false flag overrides the config file")
	assert.Equal(t, []string{".py", ".pyx"}, opts.Extensions)
	assert.Equal(t, "custom.template", opts.Template)
	assert.Equal(t, domain.ConfigFileName, opts.Config)
}

func TestApp_Run_FlagTargetReplacesConfigTarget(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ProjectConfig{Directory: "src"}, nil)
	f.telemetry.EXPECT().Close().Return(nil)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{File: ptr("tool.py")}))

	opts := f.builder.calls[0]
	assert.True(t, opts.IsSingleFile())
	assert.Equal(t, "tool.py", opts.File)
	assert.Empty(t, opts.Root)
}

func TestApp_Run_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    app.RunOptions
		cfg     *domain.ProjectConfig
		loadErr error
		wantErr error
	}{
		{
			name:    "ConflictingTargets",
			opts:    app.RunOptions{Directory: ptr("src"), File: ptr("a.py")},
			wantErr: domain.ErrConflictingTarget,
		},
		{
			name:    "ConflictingTargetsInConfig",
			cfg:     &domain.ProjectConfig{Directory: "src", File: "a.py"},
			wantErr: domain.ErrConflictingTarget,
		},
		{
			name:    "NoTarget",
			wantErr: domain.ErrNoTarget,
		},
		{
			name:    "InvalidMode",
			opts:    app.RunOptions{Directory: ptr("src"), Mode: ptr("fancy")},
			wantErr: domain.ErrInvalidMode,
		},
		{
			name:    "InvalidJobsInConfig",
			opts:    app.RunOptions{Directory: ptr("src")},
			cfg:     &domain.ProjectConfig{Jobs: ptr(0)},
			wantErr: domain.ErrInvalidJobs,
		},
		{
			name:    "ExplicitConfigMissing",
			opts:    app.RunOptions{Directory: ptr("src"), ConfigPath: "missing.yaml"},
			wantErr: domain.ErrConfigNotFound,
		},
		{
			name:    "ConfigParseError",
			opts:    app.RunOptions{Directory: ptr("src")},
			loadErr: domain.ErrConfigParseFailed,
			wantErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.loader.EXPECT().Load(gomock.Any()).Return(tt.cfg, tt.loadErr)
			f.telemetry.EXPECT().Close().Return(nil)

			err := f.app.Run(context.Background(), tt.opts)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.builder.calls, "no stage may run on a configuration error")
		})
	}
}

func TestApp_Run_BuildFailure(t *testing.T) {
	f := newFixture(t)
	f.builder.err = errors.Join(domain.ErrBuildFailed, domain.ErrCompilerFailed)
	f.loader.EXPECT().Load(gomock.Any()).Return(nil, nil)
	f.telemetry.EXPECT().Close().Return(errors.New("tape closed"))
	f.logger.EXPECT().Warn(gomock.Any())

	err := f.app.Run(context.Background(), app.RunOptions{Directory: ptr("example")})
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}

func TestApp_Run_Interactive(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	view := mocks.NewMockTelemetry(ctrl)

	f.loader.EXPECT().Load(gomock.Any()).Return(nil, nil)
	f.telemetry.EXPECT().Close().Return(nil)
	gomock.InOrder(
		f.dashboard.EXPECT().Open(gomock.Any()).DoAndReturn(func(ctx context.Context) (context.Context, ports.Telemetry, error) {
			return ctx, view, nil
		}),
		view.EXPECT().Close().Return(nil),
	)

	err := f.app.Run(context.Background(), app.RunOptions{Directory: ptr("example"), Interactive: true})
	require.NoError(t, err)

	require.Len(t, f.builder.calls, 1)
	assert.True(t, f.builder.calls[0].Quiet, "interactive runs keep compiler output off the terminal")
	require.Len(t, f.builder.views, 1)
	assert.Same(t, view, f.builder.views[0])
}

func TestApp_Run_InteractiveErrors(t *testing.T) {
	t.Run("OpenFails", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(gomock.Any()).Return(nil, nil)
		f.telemetry.EXPECT().Close().Return(nil)
		f.dashboard.EXPECT().Open(gomock.Any()).Return(nil, nil, errors.New("no terminal"))

		err := f.app.Run(context.Background(), app.RunOptions{Directory: ptr("example"), Interactive: true})
		require.ErrorContains(t, err, "no terminal")
		assert.Empty(t, f.builder.calls)
	})

	t.Run("CloseFailsWarns", func(t *testing.T) {
		f := newFixture(t)
		ctrl := gomock.NewController(t)
		view := mocks.NewMockTelemetry(ctrl)

		f.loader.EXPECT().Load(gomock.Any()).Return(nil, nil)
		f.telemetry.EXPECT().Close().Return(nil)
		f.dashboard.EXPECT().Open(gomock.Any()).Return(context.Background(), view, nil)
		view.EXPECT().Close().Return(errors.New("program exited"))
		f.logger.EXPECT().Warn("failed to close dashboard: program exited")

		err := f.app.Run(context.Background(), app.RunOptions{Directory: ptr("example"), Interactive: true})
		require.NoError(t, err)
	})

	t.Run("InvalidOptionsNeverOpen", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(gomock.Any()).Return(nil, nil)
		f.telemetry.EXPECT().Close().Return(nil)

		err := f.app.Run(context.Background(), app.RunOptions{Interactive: true})
		require.ErrorIs(t, err, domain.ErrNoTarget)
	})
}

func TestApp_Init(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join("work", domain.TemplateFileName)

	f.generator.EXPECT().Scaffold(path, false).Return(nil)
	require.NoError(t, f.app.Init("work", false))

	f.generator.EXPECT().Scaffold(path, false).Return(domain.ErrTemplateExists)
	require.ErrorIs(t, f.app.Init("work", false), domain.ErrTemplateExists)

	f.generator.EXPECT().Scaffold(path, true).Return(nil)
	require.NoError(t, f.app.Init("work", true))
}

func TestApp_Clean(t *testing.T) {
	f := newFixture(t)

	f.workspace.EXPECT().Purge("work").Return(nil)
	require.NoError(t, f.app.Clean("work", false))

	f.workspace.EXPECT().Reset("work").Return(nil)
	require.NoError(t, f.app.Clean("work", true))

	f.workspace.EXPECT().Purge("work").Return(domain.ErrWorkspaceCleanFailed)
	require.ErrorIs(t, f.app.Clean("work", false), domain.ErrWorkspaceCleanFailed)
}

func TestApp_LastReport(t *testing.T) {
	f := newFixture(t)
	want := &domain.BuildReport{Mode: domain.ModeMinimal}

	f.store.EXPECT().Load("work").Return(want, nil)
	got, err := f.app.LastReport("work")
	require.NoError(t, err)
	assert.Same(t, want, got)
}
