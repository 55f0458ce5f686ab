package fs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/py2sec/internal/adapters/fs"
	"go.trai.ch/py2sec/internal/core/domain"
)

func TestClassifier_Classify(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.py":            "print('a')",
		"b.py":            "print('b')",
		"readme.txt":      "readme",
		"pkg/__init__.py": "",
		"pkg/data.JSON":   "{}",
		"pkg/UPPER.PY":    "",
	})
	classifier := fs.NewClassifier(fs.NewWalker())

	t.Run("relative recursive", func(t *testing.T) {
		c, err := classifier.Classify(root, domain.ClassifyOptions{
			Recursive: true,
			Style:     domain.PathRelative,
			Filter:    domain.ExtensionsFilter(".py"),
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"a.py", "b.py", "pkg/UPPER.PY", "pkg/__init__.py"}, slashed(c.Compile))
		assert.Equal(t, []string{"pkg/data.JSON", "readme.txt"}, slashed(c.Copy))
		assert.Equal(t, []string{"pkg"}, slashed(c.Dirs))
	})

	t.Run("absolute style", func(t *testing.T) {
		c, err := classifier.Classify(root, domain.ClassifyOptions{
			Recursive: false,
			Style:     domain.PathAbsolute,
			Filter:    domain.ExtensionsFilter(".py"),
		})
		require.NoError(t, err)

		assert.Equal(t, []string{filepath.Join(root, "a.py"), filepath.Join(root, "b.py")}, c.Compile)
		assert.Equal(t, []string{filepath.Join(root, "readme.txt")}, c.Copy)
		assert.Empty(t, c.Dirs, "directories are only listed for recursive walks")
	})

	t.Run("name style", func(t *testing.T) {
		c, err := classifier.Classify(root, domain.ClassifyOptions{
			Recursive: true,
			Style:     domain.PathName,
			Filter:    domain.ExtensionsFilter(".json"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"data.JSON"}, c.Compile)
	})

	t.Run("any extension compiles everything", func(t *testing.T) {
		c, err := classifier.Classify(root, domain.ClassifyOptions{
			Recursive: true,
			Style:     domain.PathRelative,
			Filter:    domain.AnyExtension(),
		})
		require.NoError(t, err)
		assert.Len(t, c.Compile, 6)
		assert.Empty(t, c.Copy)
	})

	t.Run("skip dirs", func(t *testing.T) {
		c, err := classifier.Classify(root, domain.ClassifyOptions{
			Recursive: true,
			Style:     domain.PathRelative,
			Filter:    domain.ExtensionsFilter(".py"),
			SkipDirs:  []string{"pkg"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.py", "b.py"}, c.Compile)
		assert.Empty(t, c.Dirs)
	})

	t.Run("skip files", func(t *testing.T) {
		c, err := classifier.Classify(root, domain.ClassifyOptions{
			Recursive: true,
			Style:     domain.PathRelative,
			Filter:    domain.ExtensionsFilter(".py"),
			SkipFiles: []string{"b.py", "readme.txt", filepath.Join("pkg", "__init__.py")},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.py", "pkg/UPPER.PY"}, slashed(c.Compile))
		assert.Equal(t, []string{"pkg/data.JSON"}, slashed(c.Copy))
	})
}

func TestClassifier_EmptyDirectories(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"pkg/a.py": ""})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg", "empty"), domain.DirPerm))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets", "img"), domain.DirPerm))

	c, err := fs.NewClassifier(fs.NewWalker()).Classify(root, domain.ClassifyOptions{
		Recursive: true,
		Style:     domain.PathRelative,
		Filter:    domain.ExtensionsFilter(".py"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"assets", "assets/img", "pkg", "pkg/empty"}, slashed(c.Dirs))
}

func TestClassifier_SymlinkedDirectoryIsNotAFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"example/a.py":      "",
		"example/notes.txt": "",
		"shared/lib.py":     "",
	})
	root := filepath.Join(tmpDir, "example")
	symlink(t, filepath.Join("..", "shared"), filepath.Join(root, "link"))

	c, err := fs.NewClassifier(fs.NewWalker()).Classify(root, domain.ClassifyOptions{
		Recursive: true,
		Style:     domain.PathRelative,
		Filter:    domain.ExtensionsFilter(".py"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.py"}, c.Compile)
	assert.Equal(t, []string{"notes.txt"}, c.Copy)
	assert.Empty(t, c.Dirs)
}

func TestClassifier_UnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.py":        "",
		"locked/b.py": "",
	})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, domain.DirPerm) })

	_, err := fs.NewClassifier(fs.NewWalker()).Classify(root, domain.ClassifyOptions{
		Recursive: true,
		Style:     domain.PathRelative,
		Filter:    domain.ExtensionsFilter(".py"),
	})
	assert.ErrorIs(t, err, domain.ErrWalkFailed)
}

func TestClassifier_Partition(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.py":            "",
		"b.pyx":           "",
		".py":             "",
		"Makefile":        "",
		"x/y/z.py":        "",
		"x/y/z.txt":       "",
		"x/.hidden":       "",
		"deep/er/mod.PyX": "",
	}
	writeTree(t, root, files)
	classifier := fs.NewClassifier(fs.NewWalker())

	filters := []domain.ExtensionFilter{
		domain.AnyExtension(),
		domain.ExtensionsFilter(".py"),
		domain.ExtensionsFilter(".py", ".pyx"),
		domain.ExtensionsFilter(".none"),
	}

	all := make([]string, 0, len(files))
	for name := range files {
		all = append(all, name)
	}
	slices.Sort(all)

	for _, filter := range filters {
		c, err := classifier.Classify(root, domain.ClassifyOptions{
			Recursive: true,
			Style:     domain.PathRelative,
			Filter:    filter,
		})
		require.NoError(t, err)

		union := slashed(c.Files())
		slices.Sort(union)
		assert.Equal(t, all, union, "union must cover every file")

		for _, p := range c.Compile {
			assert.NotContains(t, c.Copy, p, "sets must be disjoint")
		}
	}
}

func TestClassifier_Errors(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"file.py": ""})
	classifier := fs.NewClassifier(fs.NewWalker())

	_, err := classifier.Classify(filepath.Join(root, "missing"), domain.ClassifyOptions{})
	require.ErrorIs(t, err, domain.ErrRootNotFound)

	_, err = classifier.Classify(filepath.Join(root, "file.py"), domain.ClassifyOptions{})
	require.ErrorIs(t, err, domain.ErrRootNotDirectory)
}
