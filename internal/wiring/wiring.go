// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/flowpack/internal/adapters/config"
	_ "go.trai.ch/flowpack/internal/adapters/descriptor"
	_ "go.trai.ch/flowpack/internal/adapters/fs"
	_ "go.trai.ch/flowpack/internal/adapters/logger"
	_ "go.trai.ch/flowpack/internal/adapters/npm"
	_ "go.trai.ch/flowpack/internal/adapters/telemetry"
	_ "go.trai.ch/flowpack/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/flowpack/internal/app"
)
