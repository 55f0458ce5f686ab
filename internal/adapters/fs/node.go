package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/py2sec/internal/adapters/logger"
	"go.trai.ch/py2sec/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the file walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherNodeID is the unique identifier for the file hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// ClassifierNodeID is the unique identifier for the classifier Graft node.
	ClassifierNodeID graft.ID = "adapter.fs.classifier"
	// ExcludeResolverNodeID is the unique identifier for the exclude resolver Graft node.
	ExcludeResolverNodeID graft.ID = "adapter.fs.exclude_resolver"
	// AssemblerNodeID is the unique identifier for the result assembler Graft node.
	AssemblerNodeID graft.ID = "adapter.fs.assembler"
	// WorkspaceNodeID is the unique identifier for the workspace Graft node.
	WorkspaceNodeID graft.ID = "adapter.fs.workspace"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Classifier]{
		ID:        ClassifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Classifier, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewClassifier(walker), nil
		},
	})

	graft.Register(graft.Node[ports.ExcludeResolver]{
		ID:        ExcludeResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClassifierNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ExcludeResolver, error) {
			classifier, err := graft.Dep[ports.Classifier](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExcludeResolver(classifier, log), nil
		},
	})

	graft.Register(graft.Node[ports.Assembler]{
		ID:        AssemblerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Assembler, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewAssembler(walker, hasher, log), nil
		},
	})

	graft.Register(graft.Node[ports.Workspace]{
		ID:        WorkspaceNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Workspace, error) {
			return NewWorkspace(), nil
		},
	})
}
