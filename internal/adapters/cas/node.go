package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/core/ports"
)

// NodeID is the unique identifier for the cache service factory Graft node.
const NodeID graft.ID = "adapter.cas"

var _ ports.CacheServiceFactory = Opener{}

// Opener opens Stores by directory.
type Opener struct{}

// Open implements ports.CacheServiceFactory.
func (Opener) Open(dir string) (ports.CacheService, error) {
	store, err := NewStore(dir)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func init() {
	graft.Register(graft.Node[ports.CacheServiceFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheServiceFactory, error) {
			return Opener{}, nil
		},
	})
}
