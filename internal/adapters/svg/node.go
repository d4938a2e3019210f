package svg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moji/internal/core/ports"
)

const NodeID graft.ID = "adapter.rasterizer"

func init() {
	graft.Register(graft.Node[ports.Rasterizer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Rasterizer, error) {
			return NewRasterizer(), nil
		},
	})
}
