package ports

import (
	"context"

	"go.trai.ch/py2sec/internal/core/domain"
)

// Assembler reconstructs the result tree from the build output.
//
//go:generate mockgen -source=assembler.go -destination=mocks/mock_assembler.go -package=mocks
type Assembler interface {
	Assemble(ctx context.Context, opts domain.BuildOptions, c domain.Classification) (*domain.BuildReport, error)
}
