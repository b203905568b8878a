package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/core/ports"
)

// NodeID is the unique identifier for the state store factory Graft node.
const NodeID graft.ID = "adapter.state"

var _ ports.StateStoreFactory = Opener{}

// Opener opens state Files by path.
type Opener struct{}

// Open implements ports.StateStoreFactory.
func (Opener) Open(path string) ports.StateStore {
	return NewFile(path)
}

func init() {
	graft.Register(graft.Node[ports.StateStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StateStoreFactory, error) {
			return Opener{}, nil
		},
	})
}
