package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/flowpack/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/flowpack/internal/adapters/descriptor" //nolint:depguard // Wired in app layer
	"go.trai.ch/flowpack/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/flowpack/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/flowpack/internal/adapters/npm"        //nolint:depguard // Wired in app layer
	"go.trai.ch/flowpack/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/flowpack/internal/adapters/watcher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/flowpack/internal/core/ports"
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
			descriptor.NodeID,
			npm.NodeID,
			fs.EnumeratorNodeID,
			watcher.NodeID,
			telemetry.TracerNodeID,
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
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	descriptors, err := graft.Dep[ports.DescriptorLoader](ctx)
	if err != nil {
		return nil, err
	}

	versions, err := graft.Dep[ports.VersionLookupFactory](ctx)
	if err != nil {
		return nil, err
	}

	outputs, err := graft.Dep[ports.OutputEnumerator](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, descriptors, versions, outputs, watchers, tracer, log), nil
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

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          app,
		Logger:       log,
		ConfigLoader: loader,
	}, nil
}
