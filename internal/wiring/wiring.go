// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pkgraph/internal/adapters/config"
	_ "go.trai.ch/pkgraph/internal/adapters/fingerprint"
	_ "go.trai.ch/pkgraph/internal/adapters/logger"
	_ "go.trai.ch/pkgraph/internal/adapters/manifest"
	_ "go.trai.ch/pkgraph/internal/adapters/metrics"
	_ "go.trai.ch/pkgraph/internal/adapters/progress"
	_ "go.trai.ch/pkgraph/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/pkgraph/internal/app"
	_ "go.trai.ch/pkgraph/internal/engine/cache"
)
