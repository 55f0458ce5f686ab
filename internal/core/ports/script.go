package ports

import "go.trai.ch/py2sec/internal/core/domain"

// ScriptGenerator renders the build script consumed by the compiler.
//
//go:generate mockgen -source=script.go -destination=mocks/mock_script.go -package=mocks
type ScriptGenerator interface {
	// Generate removes any previous script at scriptPath and writes a fresh one
	// rendered from the template at templatePath.
	Generate(templatePath, scriptPath string, params domain.ScriptParams) error

	// Scaffold writes the default template to path, replacing an existing
	// file only when overwrite is set.
	Scaffold(path string, overwrite bool) error
}
