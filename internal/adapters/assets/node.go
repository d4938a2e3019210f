package assets

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moji/internal/adapters/logger"
	"go.trai.ch/moji/internal/core/ports"
)

const NodeID graft.ID = "adapter.asset_scanner"

func init() {
	graft.Register(graft.Node[ports.AssetScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.AssetScanner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(log), nil
		},
	})
}
