package pngenc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moji/internal/core/ports"
)

const NodeID graft.ID = "adapter.encoder"

func init() {
	graft.Register(graft.Node[ports.Encoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Encoder, error) {
			return NewEncoder(), nil
		},
	})
}
