package assembly

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moji/internal/adapters/logger"
	"go.trai.ch/moji/internal/core/ports"
)

const NodeID graft.ID = "adapter.assembler"

func init() {
	graft.Register(graft.Node[ports.Assembler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Assembler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
