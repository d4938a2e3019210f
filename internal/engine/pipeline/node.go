package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moji/internal/adapters/cache"
	"go.trai.ch/moji/internal/adapters/fs"
	"go.trai.ch/moji/internal/adapters/logger"
	"go.trai.ch/moji/internal/adapters/pngenc"
	"go.trai.ch/moji/internal/adapters/svg"
	"go.trai.ch/moji/internal/adapters/telemetry/progrock"
	"go.trai.ch/moji/internal/core/ports"
)

const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			fs.NodeID,
			svg.NodeID,
			pngenc.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			buildCache, err := graft.Dep[ports.BuildCache](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			rasterizer, err := graft.Dep[ports.Rasterizer](ctx)
			if err != nil {
				return nil, err
			}
			encoder, err := graft.Dep[ports.Encoder](ctx)
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
			return New(buildCache, hasher, rasterizer, encoder, log, telemetry), nil
		},
	})
}
