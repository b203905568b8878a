package composer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depcache/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depcache/internal/core/ports"
)

// NodeID is the unique identifier for the composer Graft node.
const NodeID graft.ID = "engine.composer"

func init() {
	graft.Register(graft.Node[*Composer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.HasherNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Composer, error) {
			hasher, err := graft.Dep[ports.FileHasher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComposer(hasher, log), nil
		},
	})
}
