package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moji/internal/adapters/fs"
	"go.trai.ch/moji/internal/adapters/logger"
	"go.trai.ch/moji/internal/core/ports"
)

const NodeID graft.ID = "adapter.build_cache"

func init() {
	graft.Register(graft.Node[ports.BuildCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, fs.NodeID},
		Run: func(ctx context.Context) (ports.BuildCache, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log, hasher), nil
		},
	})
}
