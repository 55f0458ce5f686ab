// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/py2sec/internal/adapters/cas"
	_ "go.trai.ch/py2sec/internal/adapters/config"
	_ "go.trai.ch/py2sec/internal/adapters/fs"
	_ "go.trai.ch/py2sec/internal/adapters/logger"
	_ "go.trai.ch/py2sec/internal/adapters/script"
	_ "go.trai.ch/py2sec/internal/adapters/shell"
	_ "go.trai.ch/py2sec/internal/adapters/telemetry"
	_ "go.trai.ch/py2sec/internal/adapters/tui"
	// Register app and engine nodes.
	_ "go.trai.ch/py2sec/internal/app"
	_ "go.trai.ch/py2sec/internal/engine/pipeline"
)
