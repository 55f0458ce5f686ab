package pipeline

import (
	"context"

	"go.trai.ch/py2sec/internal/core/domain"
)

// Step renders a build script for files and runs the compiler on it.
type Step func(ctx context.Context, files []string) error

// CompileStrategy decides how the compile set is split into compiler invocations.
type CompileStrategy interface {
	// Name identifies the strategy in logs and telemetry.
	Name() string
	// Run invokes step for the compile set. An empty set never invokes step.
	Run(ctx context.Context, files []string, step Step) error
}

// AggregatedStrategy compiles the whole compile set with a single invocation.
type AggregatedStrategy struct{}

// Name implements CompileStrategy.
func (AggregatedStrategy) Name() string { return "aggregated" }

// Run implements CompileStrategy.
func (AggregatedStrategy) Run(ctx context.Context, files []string, step Step) error {
	if len(files) == 0 {
		return nil
	}
	return step(ctx, files)
}

// PerFileStrategy compiles one file per invocation, in order, and stops at the first failure.
type PerFileStrategy struct{}

// Name implements CompileStrategy.
func (PerFileStrategy) Name() string { return "per-file" }

// Run implements CompileStrategy.
func (PerFileStrategy) Run(ctx context.Context, files []string, step Step) error {
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step(ctx, []string{file}); err != nil {
			return err
		}
	}
	return nil
}

// SelectStrategy returns the strategy matching the platform's compiler capabilities.
func SelectStrategy(p domain.Platform) CompileStrategy {
	if p.OneFilePerInvocation {
		return PerFileStrategy{}
	}
	return AggregatedStrategy{}
}
