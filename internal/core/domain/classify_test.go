package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/py2sec/internal/core/domain"
)

func TestExtensionFilter_Matches(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.ExtensionFilter
		file     string
		expected bool
	}{
		{"AnyMatchesEverything", domain.AnyExtension(), "readme", true},
		{"ZeroValueIsAny", domain.ExtensionFilter{}, "a.txt", true},
		{"SimpleMatch", domain.ExtensionsFilter(".py"), "a.py", true},
		{"CaseInsensitiveFile", domain.ExtensionsFilter(".py"), "A.PY", true},
		{"CaseInsensitiveFilter", domain.ExtensionsFilter(".PY"), "a.py", true},
		{"MissingDotInFilter", domain.ExtensionsFilter("py"), "a.py", true},
		{"TrailingExtensionOnly", domain.ExtensionsFilter(".py"), "a.py.bak", false},
		{"NoExtension", domain.ExtensionsFilter(".py"), "Makefile", false},
		{"DotFileIsOwnExtension", domain.ExtensionsFilter(".py"), ".py", true},
		{"DotFileOther", domain.ExtensionsFilter(".py"), ".gitignore", false},
		{"MultipleExtensions", domain.ExtensionsFilter(".py", ".pyx"), "m.pyx", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Matches(tt.file))
		})
	}
}

func TestClassification_Without(t *testing.T) {
	c := domain.Classification{
		Copy:    []string{"readme.txt"},
		Compile: []string{"a.py", "pkg/b.py", "pkg/c.py"},
		Dirs:    []string{"pkg"},
	}

	got := c.Without([]string{"pkg/b.py", "missing.py", "./a.py"})

	assert.Equal(t, []string{"pkg/c.py"}, got.Compile)
	assert.Equal(t, []string{"readme.txt"}, got.Copy)
	assert.Equal(t, []string{"pkg"}, got.Dirs)
	assert.Equal(t, []string{"a.py", "pkg/b.py", "pkg/c.py"}, c.Compile, "receiver must not change")
	assert.Equal(t, c, c.Without(nil))
}

func TestClassification_Excluded(t *testing.T) {
	c := domain.Classification{
		Copy:    []string{"readme.txt"},
		Compile: []string{"a.py", "pkg/b.py", "pkg/c.py"},
	}

	assert.Equal(t, []string{"a.py", "pkg/b.py"}, c.Excluded([]string{"pkg/b.py", "readme.txt", "./a.py"}),
		"only compile set entries count as excluded")
	assert.Nil(t, c.Excluded(nil))
	assert.Nil(t, c.Excluded([]string{"readme.txt"}))
}

func TestClassification_Files(t *testing.T) {
	c := domain.Classification{Copy: []string{"x"}, Compile: []string{"a.py"}}
	assert.Equal(t, []string{"a.py", "x"}, c.Files())
}

func TestSplitExcludeSpec(t *testing.T) {
	assert.Equal(t, []string{"setup.py", "mod/__init__.py", "exclude_dir/"},
		domain.SplitExcludeSpec("setup.py,mod/__init__.py,exclude_dir/"))
	assert.Equal(t, []string{"a.py"}, domain.SplitExcludeSpec(",, a.py ,"))
	assert.Empty(t, domain.SplitExcludeSpec(""))
}

func TestDirectoryToken(t *testing.T) {
	assert.True(t, domain.IsDirectoryToken("dir/"))
	assert.True(t, domain.IsDirectoryToken(`dir\`))
	assert.False(t, domain.IsDirectoryToken("dir/file.py"))
	assert.Equal(t, "dir/sub", domain.TrimDirectoryToken("/dir/sub/"))
	assert.Equal(t, "dir", domain.TrimDirectoryToken(`\dir\`))
}

func TestScriptParams_Literals(t *testing.T) {
	p := domain.ScriptParams{Files: []string{"a.py", "pkg/b.py"}, Jobs: 3, Quiet: true}
	assert.Equal(t, `a.py", r"pkg/b.py`, p.FileList())
	assert.Equal(t, "3", p.JobsLiteral())
	assert.Equal(t, "True", p.QuietLiteral())
	p.Quiet = false
	assert.Equal(t, "False", p.QuietLiteral())
}
