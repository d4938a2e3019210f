package tables

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/moji/internal/core/ports"
)

const NodeID graft.ID = "adapter.table_parser"

func init() {
	graft.Register(graft.Node[ports.TableParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.TableParser, error) {
			return NewParser(), nil
		},
	})
}
