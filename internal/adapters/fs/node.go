package fs

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	// ProbesNodeID is the unique identifier for the probe cache Graft node.
	ProbesNodeID graft.ID = "adapter.fs.probes"
)

func init() {
	// Probes Node (concrete type, consumed by per-session resolvers)
	graft.Register(graft.Node[*Probes]{
		ID:        ProbesNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Probes, error) {
			return NewProbes(), nil
		},
	})
}
