// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/depsync/internal/adapters/config"
	_ "go.trai.ch/depsync/internal/adapters/linear"
	_ "go.trai.ch/depsync/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/depsync/internal/app"
)
