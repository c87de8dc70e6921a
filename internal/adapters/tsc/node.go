package tsc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jig/internal/core/ports"
)

// NodeID is the unique identifier for the default toolchain Graft node.
const NodeID graft.ID = "adapter.tsc"

func init() {
	graft.Register(graft.Node[ports.Toolchain]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Toolchain, error) {
			return New(), nil
		},
	})
}
