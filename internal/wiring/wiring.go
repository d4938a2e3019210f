// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/moji/internal/adapters/assembly"
	_ "go.trai.ch/moji/internal/adapters/assets"
	_ "go.trai.ch/moji/internal/adapters/cache"
	_ "go.trai.ch/moji/internal/adapters/config"
	_ "go.trai.ch/moji/internal/adapters/fs"
	_ "go.trai.ch/moji/internal/adapters/logger"
	_ "go.trai.ch/moji/internal/adapters/pngenc"
	_ "go.trai.ch/moji/internal/adapters/svg"
	_ "go.trai.ch/moji/internal/adapters/tables"
	_ "go.trai.ch/moji/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/moji/internal/app"
	_ "go.trai.ch/moji/internal/engine/pipeline"
	_ "go.trai.ch/moji/internal/engine/resolver"
)
