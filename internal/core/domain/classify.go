package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// PathStyle selects how classified paths are rendered.
type PathStyle int

const (
	// PathAbsolute renders paths joined with the scanned root.
	PathAbsolute PathStyle = iota
	// PathRelative renders paths relative to the scanned root.
	PathRelative
	// PathName renders the bare file name.
	PathName
)

// ExtensionFilter decides which files belong to the compile set.
// The zero value matches any extension.
type ExtensionFilter struct {
	exts []string
}

// AnyExtension returns a filter that matches every file.
func AnyExtension() ExtensionFilter {
	return ExtensionFilter{}
}

// ExtensionsFilter returns a filter matching the given extensions, case-insensitively.
func ExtensionsFilter(exts ...string) ExtensionFilter {
	return ExtensionFilter{exts: normalizeExtensions(exts)}
}

// IsAny reports whether the filter matches every file.
func (f ExtensionFilter) IsAny() bool {
	return len(f.exts) == 0
}

// Matches reports whether the file name passes the filter.
func (f ExtensionFilter) Matches(name string) bool {
	if f.IsAny() {
		return true
	}
	return slices.Contains(f.exts, FileExtension(name))
}

// FileExtension returns the lower-cased trailing extension of a file name.
// A dot-file is its own extension.
func FileExtension(name string) string {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return strings.ToLower(base)
	}
	return strings.ToLower(filepath.Ext(base))
}

// ClassifyOptions controls a single classification walk.
type ClassifyOptions struct {
	Recursive bool
	Style     PathStyle
	Filter    ExtensionFilter
	// SkipDirs names directories, relative to the root, that are not descended into.
	SkipDirs []string
	// SkipFiles names files, relative to the root, that are left out of both sets.
	SkipFiles []string
}

// Classification partitions the regular files under a root.
// Copy and Compile are disjoint and follow lexical walk order.
type Classification struct {
	Copy    []string
	Compile []string
	// Dirs lists the directories below the root for recursive walks.
	Dirs []string
}

// Without returns a classification whose compile set omits every excluded path.
// The copy set is left as is.
func (c Classification) Without(excluded []string) Classification {
	if len(excluded) == 0 {
		return c
	}
	skip := pathSet(excluded)
	compile := make([]string, 0, len(c.Compile))
	for _, p := range c.Compile {
		if _, ok := skip[filepath.Clean(p)]; !ok {
			compile = append(compile, p)
		}
	}
	return Classification{Copy: c.Copy, Compile: compile, Dirs: c.Dirs}
}

// Excluded returns the compile set entries that Without(excluded) drops,
// in compile order.
func (c Classification) Excluded(excluded []string) []string {
	if len(excluded) == 0 {
		return nil
	}
	skip := pathSet(excluded)
	var out []string
	for _, p := range c.Compile {
		if _, ok := skip[filepath.Clean(p)]; ok {
			out = append(out, p)
		}
	}
	return out
}

func pathSet(paths []string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[filepath.Clean(p)] = struct{}{}
	}
	return set
}

// Files returns every classified path, compile set first.
func (c Classification) Files() []string {
	return append(slices.Clone(c.Compile), c.Copy...)
}
