package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/py2sec/internal/adapters/script"
	"go.trai.ch/py2sec/internal/core/domain"
)

func writeDefaultTemplate(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, domain.TemplateFileName)
	require.NoError(t, script.NewGenerator().Scaffold(path, false))
	return path
}

func TestGenerator_Generate_Golden(t *testing.T) {
	tests := []struct {
		name   string
		params domain.ScriptParams
	}{
		{
			name: "default_aggregated",
			params: domain.ScriptParams{
				Files:   []string{"example/a.py", "example/pkg/b.py"},
				Version: "3",
				Jobs:    4,
				Quiet:   true,
			},
		},
		{
			name: "default_single",
			params: domain.ScriptParams{
				Files:   []string{"tool.py"},
				Version: "2.7",
				Jobs:    1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			templatePath := writeDefaultTemplate(t, dir)
			scriptPath := filepath.Join(dir, domain.BuildScriptName)

			require.NoError(t, script.NewGenerator().Generate(templatePath, scriptPath, tt.params))

			got, err := os.ReadFile(scriptPath)
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.name, got)
		})
	}
}

func TestGenerator_Generate_Legacy(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, domain.BuildScriptName)

	err := script.NewGenerator().Generate(filepath.Join("testdata", "legacy.template"), scriptPath, domain.ScriptParams{
		Files:   []string{"a.py", "b.py"},
		Version: "3",
		Jobs:    2,
	})
	require.NoError(t, err)

	got, err := os.ReadFile(scriptPath)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "legacy", got)
}

func TestGenerator_Generate_OverwritesPreviousScript(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "t.template")
	scriptPath := filepath.Join(dir, domain.BuildScriptName)
	require.NoError(t, os.WriteFile(templatePath, []byte("{{ .FileList }}"), domain.PrivateFilePerm))
	require.NoError(t, os.WriteFile(scriptPath, []byte("stale content that is longer"), domain.PrivateFilePerm))

	gen := script.NewGenerator()
	require.NoError(t, gen.Generate(templatePath, scriptPath, domain.ScriptParams{Files: []string{"a.py"}, Jobs: 1}))

	got, err := os.ReadFile(scriptPath)
	require.NoError(t, err)
	assert.Equal(t, "a.py", string(got))
}

func TestGenerator_Generate_DefaultFallback(t *testing.T) {
	params := domain.ScriptParams{Files: []string{"example/a.py", "example/pkg/b.py"}, Version: "3", Jobs: 4, Quiet: true}
	gen := script.NewGenerator()

	for name, templatePath := range map[string]string{
		"empty path":           "",
		"missing default file": filepath.Join(t.TempDir(), domain.TemplateFileName),
	} {
		t.Run(name, func(t *testing.T) {
			scriptPath := filepath.Join(t.TempDir(), domain.BuildScriptName)
			require.NoError(t, gen.Generate(templatePath, scriptPath, params))

			got, err := os.ReadFile(scriptPath)
			require.NoError(t, err)
			want, err := os.ReadFile(filepath.Join("testdata", "default_aggregated.golden"))
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got))
		})
	}
}

func TestGenerator_Generate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		template *string
		wantErr  error
	}{
		{name: "missing template", template: nil, wantErr: domain.ErrTemplateNotFound},
		{name: "too few slots", template: ptr("%s %s %s"), wantErr: domain.ErrTemplateInvalid},
		{name: "too many slots", template: ptr("%s %s %s %s %s"), wantErr: domain.ErrTemplateInvalid},
		{name: "unsupported verb", template: ptr("%s %s %s %d"), wantErr: domain.ErrTemplateInvalid},
		{name: "dangling percent", template: ptr("%s %s %s %s %"), wantErr: domain.ErrTemplateInvalid},
		{name: "parse error", template: ptr("{{ .FileList "), wantErr: domain.ErrTemplateInvalid},
		{name: "unknown field", template: ptr("{{ .Nope }}"), wantErr: domain.ErrTemplateInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			templatePath := filepath.Join(dir, "t.template")
			if tt.template != nil {
				require.NoError(t, os.WriteFile(templatePath, []byte(*tt.template), domain.PrivateFilePerm))
			}

			err := script.NewGenerator().Generate(templatePath, filepath.Join(dir, "out.py"), domain.ScriptParams{Jobs: 1})
			require.ErrorIs(t, err, tt.wantErr)
			assert.NoFileExists(t, filepath.Join(dir, "out.py"))
		})
	}
}

func TestRender_PositionalOrder(t *testing.T) {
	got, err := script.Render("%s|%s|%s|%s", domain.ScriptParams{
		Files:   []string{"x.py"},
		Version: "3.11",
		Jobs:    8,
		Quiet:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "x.py|3.11|8|True", got)
}

func TestRender_NamedFields(t *testing.T) {
	got, err := script.Render("{{ range .Files }}[{{ . }}]{{ end }} {{ .Version }} {{ .Jobs }} {{ .Quiet }}", domain.ScriptParams{
		Files:   []string{"a.py", "b.py"},
		Version: "3",
		Jobs:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, "[a.py][b.py] 3 2 False", got)
}

func TestGenerator_Scaffold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.TemplateFileName)
	gen := script.NewGenerator()

	require.NoError(t, gen.Scaffold(path, false))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, script.DefaultTemplate(), got)

	require.ErrorIs(t, gen.Scaffold(path, false), domain.ErrTemplateExists)
	require.NoError(t, gen.Scaffold(path, true))
}

func ptr(s string) *string {
	return &s
}
