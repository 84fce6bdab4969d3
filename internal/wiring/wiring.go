// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/warmboot/internal/adapters/config"
	_ "go.trai.ch/warmboot/internal/adapters/discovery"
	_ "go.trai.ch/warmboot/internal/adapters/logger"
	_ "go.trai.ch/warmboot/internal/adapters/marker"
	_ "go.trai.ch/warmboot/internal/adapters/snapshot"
	_ "go.trai.ch/warmboot/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/warmboot/internal/app"
)
