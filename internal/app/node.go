package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/py2sec/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/py2sec/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/py2sec/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/py2sec/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/py2sec/internal/adapters/script"    //nolint:depguard // Wired in app layer
	"go.trai.ch/py2sec/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/py2sec/internal/adapters/tui"       //nolint:depguard // Wired in app layer
	"go.trai.ch/py2sec/internal/core/ports"
	"go.trai.ch/py2sec/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pipeline.NodeID,
			config.NodeID,
			script.NodeID,
			fs.WorkspaceNodeID,
			cas.NodeID,
			telemetry.NodeID,
			tui.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	p, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	generator, err := graft.Dep[ports.ScriptGenerator](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.Workspace](ctx)
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

	dashboard, err := graft.Dep[ports.Dashboard](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(p, loader, generator, workspace, store, tel, log).WithDashboard(dashboard), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
