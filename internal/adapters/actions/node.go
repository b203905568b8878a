package actions

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/core/ports"
)

// NodeID is the unique identifier for the trigger source Graft node.
const NodeID graft.ID = "adapter.actions.trigger"

func init() {
	graft.Register(graft.Node[ports.TriggerSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TriggerSource, error) {
			return NewDetector(), nil
		},
	})
}
