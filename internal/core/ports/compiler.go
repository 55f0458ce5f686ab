// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/py2sec/internal/core/domain"
)

// Compiler defines the interface for invoking the external compiler.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile runs the build script described by req and waits for it to finish.
	//
	// It returns an error wrapping domain.ErrCompilerFailed if the process
	// cannot be started or exits with a non-zero status.
	Compile(ctx context.Context, req domain.CompileRequest) error
}
