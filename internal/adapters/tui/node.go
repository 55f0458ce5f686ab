package tui

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/py2sec/internal/core/ports"
)

// NodeID is the unique identifier for the dashboard Graft node.
const NodeID graft.ID = "adapter.dashboard"

func init() {
	graft.Register(graft.Node[ports.Dashboard]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Dashboard, error) {
			return NewDashboard(os.Stdin, os.Stdout), nil
		},
	})
}
