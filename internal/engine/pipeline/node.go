package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/py2sec/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/py2sec/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/py2sec/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/py2sec/internal/adapters/script"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/py2sec/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/py2sec/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/py2sec/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.WorkspaceNodeID,
			fs.ClassifierNodeID,
			fs.ExcludeResolverNodeID,
			script.NodeID,
			shell.NodeID,
			fs.AssemblerNodeID,
			cas.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Pipeline, error) {
	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	classifier, err := graft.Dep[ports.Classifier](ctx)
	if err != nil {
		return nil, err
	}

	excluder, err := graft.Dep[ports.ExcludeResolver](ctx)
	if err != nil {
		return nil, err
	}

	generator, err := graft.Dep[ports.ScriptGenerator](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	assembler, err := graft.Dep[ports.Assembler](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ReportStore](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(workspace, classifier, excluder, generator, compiler, assembler, store, tel, log), nil
}
