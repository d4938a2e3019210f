package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moji/internal/adapters/assembly"
	"go.trai.ch/moji/internal/adapters/assets"
	"go.trai.ch/moji/internal/adapters/cache"
	"go.trai.ch/moji/internal/adapters/config"
	"go.trai.ch/moji/internal/adapters/logger"
	"go.trai.ch/moji/internal/adapters/tables"
	"go.trai.ch/moji/internal/adapters/telemetry/progrock"
	"go.trai.ch/moji/internal/core/ports"
	"go.trai.ch/moji/internal/engine/pipeline"
	"go.trai.ch/moji/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components. This
// struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			tables.NodeID,
			assets.NodeID,
			cache.NodeID,
			resolver.NodeID,
			pipeline.NodeID,
			assembly.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	parser, err := graft.Dep[ports.TableParser](ctx)
	if err != nil {
		return nil, err
	}
	scanner, err := graft.Dep[ports.AssetScanner](ctx)
	if err != nil {
		return nil, err
	}
	buildCache, err := graft.Dep[ports.BuildCache](ctx)
	if err != nil {
		return nil, err
	}
	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	pipe, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}
	assembler, err := graft.Dep[ports.Assembler](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, parser, scanner, buildCache, res, pipe, assembler, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
