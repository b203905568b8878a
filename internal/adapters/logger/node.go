package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the ports.Logger Graft node.
	NodeID graft.ID = "adapter.logger"
	// ConcreteNodeID is the unique identifier for the *Logger Graft node, used to toggle verbosity.
	ConcreteNodeID graft.ID = "adapter.logger.slog"
)

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        ConcreteNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ConcreteNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			log, err := graft.Dep[*Logger](ctx)
			if err != nil {
				return nil, err
			}
			return log, nil
		},
	})
}
