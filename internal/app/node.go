package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depcache/internal/adapters/actions"            //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/state"              //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/depcache/internal/engine/composer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			actions.NodeID,
			composer.NodeID,
			fs.PathResolverNodeID,
			cas.NodeID,
			state.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	triggers, err := graft.Dep[ports.TriggerSource](ctx)
	if err != nil {
		return nil, err
	}

	comp, err := graft.Dep[*composer.Composer](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.PathResolver](ctx)
	if err != nil {
		return nil, err
	}

	caches, err := graft.Dep[ports.CacheServiceFactory](ctx)
	if err != nil {
		return nil, err
	}

	states, err := graft.Dep[ports.StateStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, triggers, comp, resolver, caches, states, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, telemetry), nil
}
