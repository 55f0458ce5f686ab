package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/py2sec/internal/core/domain"
)

func TestOptionsBuilder_Defaults(t *testing.T) {
	opts, err := domain.NewOptionsBuilder().WithRoot("example").Build()
	require.NoError(t, err)

	assert.Equal(t, "example", opts.Root)
	assert.Equal(t, domain.ModeClassical, opts.Mode)
	assert.Equal(t, 1, opts.Jobs)
	assert.Equal(t, []string{".py"}, opts.Extensions)
	assert.Equal(t, "python", opts.InterpreterCommand())
	assert.Equal(t, domain.TemplateFileName, opts.Template)
	assert.Equal(t, ".", opts.WorkDir)
	assert.False(t, opts.IsSingleFile())
}

func TestOptionsBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		build   func(*domain.OptionsBuilder) *domain.OptionsBuilder
		wantErr error
	}{
		{
			name: "FileThenRoot",
			build: func(b *domain.OptionsBuilder) *domain.OptionsBuilder {
				return b.WithFile("a.py").WithRoot("src")
			},
			wantErr: domain.ErrConflictingTarget,
		},
		{
			name: "RootThenFile",
			build: func(b *domain.OptionsBuilder) *domain.OptionsBuilder {
				return b.WithRoot("src").WithFile("a.py")
			},
			wantErr: domain.ErrConflictingTarget,
		},
		{
			name: "NoTarget",
			build: func(b *domain.OptionsBuilder) *domain.OptionsBuilder {
				return b
			},
			wantErr: domain.ErrNoTarget,
		},
		{
			name: "InvalidMode",
			build: func(b *domain.OptionsBuilder) *domain.OptionsBuilder {
				return b.WithRoot("src").WithMode("fancy")
			},
			wantErr: domain.ErrInvalidMode,
		},
		{
			name: "ZeroJobs",
			build: func(b *domain.OptionsBuilder) *domain.OptionsBuilder {
				return b.WithRoot("src").WithJobs(0)
			},
			wantErr: domain.ErrInvalidJobs,
		},
		{
			name: "NoExtensions",
			build: func(b *domain.OptionsBuilder) *domain.OptionsBuilder {
				return b.WithRoot("src").WithExtensions([]string{" ", ""})
			},
			wantErr: domain.ErrNoExtensions,
		},
		{
			name: "FirstErrorWins",
			build: func(b *domain.OptionsBuilder) *domain.OptionsBuilder {
				return b.WithMode("bad").WithJobs(-1).WithRoot("src")
			},
			wantErr: domain.ErrInvalidMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build(domain.NewOptionsBuilder()).Build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOptionsBuilder_Overrides(t *testing.T) {
	opts, err := domain.NewOptionsBuilder().
		WithFile("pkg/mod.py").
		WithVersion("3").
		WithInterpreter("pypy").
		WithMode("MINIMAL").
		WithExclude([]string{"a.py,b/", "c.py"}).
		WithJobs(4).
		WithQuiet(true).
		WithRelease(true).
		WithExtensions([]string{"PY", ".pyx"}).
		WithTemplate("custom.template").
		WithWorkDir("work/").
		WithConfig("conf/py2sec.yaml").
		WithPlatform(domain.PlatformFor("windows")).
		Build()
	require.NoError(t, err)

	assert.True(t, opts.IsSingleFile())
	assert.Equal(t, filepath.Join("pkg", "mod.py"), opts.File)
	assert.Equal(t, "pypy3", opts.InterpreterCommand())
	assert.Equal(t, domain.ModeMinimal, opts.Mode)
	assert.Equal(t, []string{"a.py", "b/", "c.py"}, opts.Exclude)
	assert.Equal(t, 4, opts.Jobs)
	assert.True(t, opts.Quiet)
	assert.True(t, opts.Release)
	assert.Equal(t, []string{".py", ".pyx"}, opts.Extensions)
	assert.Equal(t, "custom.template", opts.Template)
	assert.Equal(t, "work", opts.WorkDir)
	assert.Equal(t, filepath.Join("conf", "py2sec.yaml"), opts.Config)
	assert.True(t, opts.Platform.OneFilePerInvocation)
}

func TestOptionsBuilder_BuildIsIndependent(t *testing.T) {
	b := domain.NewOptionsBuilder().WithRoot("src").WithExclude([]string{"a.py"})
	first, err := b.Build()
	require.NoError(t, err)

	first.Exclude[0] = "mutated"
	second, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.py"}, second.Exclude)
}

func TestBuildOptions_Prefix(t *testing.T) {
	tests := []struct {
		root     string
		expected string
	}{
		{"example", "example"},
		{"example/", "example"},
		{"./example/sub", filepath.Join("example", "sub")},
		{".", "."},
		{"../other", "other"},
		{"/abs/project", "project"},
	}

	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			opts, err := domain.NewOptionsBuilder().WithRoot(filepath.FromSlash(tt.root)).Build()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts.Prefix())
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"minimal", "classical", "inplace", " Classical "} {
		_, err := domain.ParseMode(valid)
		assert.NoError(t, err, valid)
	}
	_, err := domain.ParseMode("")
	assert.ErrorIs(t, err, domain.ErrInvalidMode)
}

func TestPlatformFor(t *testing.T) {
	linux := domain.PlatformFor("linux")
	assert.False(t, linux.OneFilePerInvocation)
	assert.Equal(t, ".so", linux.ArtifactExtension())

	windows := domain.PlatformFor("windows")
	assert.True(t, windows.OneFilePerInvocation)
	assert.Equal(t, ".pyd", windows.ArtifactExtension())
	assert.Equal(t, []string{".so", ".pyd"}, windows.NativeExtensions)
}

func TestBuildOptions_ResolvedPaths(t *testing.T) {
	opts, err := domain.NewOptionsBuilder().WithFile("tool.py").WithWorkDir("work").Build()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("work", "tool.py"), opts.FilePath())
	assert.Equal(t, filepath.Join("work", domain.TemplateFileName), opts.TemplatePath())

	abs := filepath.Join(t.TempDir(), "custom.template")
	opts, err = domain.NewOptionsBuilder().WithRoot("src").WithTemplate(abs).WithWorkDir("work").Build()
	require.NoError(t, err)
	assert.Equal(t, abs, opts.TemplatePath())
	assert.Equal(t, filepath.Join("work", "src"), opts.RootPath())
}

func TestBuildOptions_OwnFiles(t *testing.T) {
	opts, err := domain.NewOptionsBuilder().WithRoot(".").WithWorkDir("proj").Build()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("proj", domain.BuildScriptName),
		filepath.Join("proj", domain.LogFileName),
		filepath.Join("proj", domain.TemplateFileName),
		filepath.Join("proj", domain.ConfigFileName),
	}, opts.OwnFiles())

	opts, err = domain.NewOptionsBuilder().WithRoot(".").WithConfig("other.yaml").Build()
	require.NoError(t, err)
	assert.Contains(t, opts.OwnFiles(), "other.yaml")
}
