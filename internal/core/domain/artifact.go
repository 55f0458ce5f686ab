package domain

import (
	"path/filepath"
	"strings"
)

// NormalizeArtifactName drops the interpreter and ABI tags the compiler embeds
// in an artifact name, keeping the module name and the final suffix.
// module.cpython-39-x86_64-linux-gnu.so becomes module.so.
func NormalizeArtifactName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return name
	}
	return parts[0] + "." + parts[len(parts)-1]
}

// ArtifactTarget maps an artifact path relative to the build dir onto its path
// relative to the result root. The first segment is the staging directory.
func ArtifactTarget(rel string) string {
	segments := strings.Split(filepath.ToSlash(filepath.Clean(rel)), "/")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	last := len(segments) - 1
	segments[last] = NormalizeArtifactName(segments[last])
	return filepath.FromSlash(strings.Join(segments, "/"))
}

// SourceFor returns the source path an artifact was compiled from, given the
// artifact's result-relative path and the source extension.
func SourceFor(artifact, sourceExt string) string {
	return strings.TrimSuffix(artifact, filepath.Ext(artifact)) + sourceExt
}
