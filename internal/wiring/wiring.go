// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bubbles/internal/adapters/config"
	_ "go.trai.ch/bubbles/internal/adapters/logger"
	_ "go.trai.ch/bubbles/internal/adapters/png"
	_ "go.trai.ch/bubbles/internal/adapters/rows"
	_ "go.trai.ch/bubbles/internal/adapters/sink"
	_ "go.trai.ch/bubbles/internal/adapters/svg"
	_ "go.trai.ch/bubbles/internal/adapters/telemetry"
	_ "go.trai.ch/bubbles/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/bubbles/internal/app"
)
