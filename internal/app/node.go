package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jig/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/jig/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/jig/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/jig/internal/adapters/report" //nolint:depguard // Wired in app layer
	"go.trai.ch/jig/internal/adapters/tsc"    //nolint:depguard // Wired in app layer
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/jig/internal/engine/registry"
)

const (
	// RegistryNodeID is the unique identifier for the session registry Graft node.
	RegistryNodeID graft.ID = "app.registry"
	// TransformerNodeID is the unique identifier for the Transformer Graft node.
	TransformerNodeID graft.ID = "app.transformer"
	// ComponentsNodeID is the unique identifier for the components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// Registry Node
	graft.Register(graft.Node[*registry.Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			tsc.NodeID,
			fs.ProbesNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*registry.Registry, error) {
			toolchain, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}

			probes, err := graft.Dep[*fs.Probes](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			reporterFor := func(cfg *domain.Config) ports.Reporter {
				return report.New(cfg, log)
			}
			return registry.New(toolchain, fs.NewResolver(probes), probes, log, config.ParseJSON, reporterFor), nil
		},
	})

	// Transformer Node
	graft.Register(graft.Node[*Transformer]{
		ID:        TransformerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			RegistryNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Transformer, error) {
			reg, err := graft.Dep[*registry.Registry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			// The post-process hook is injected by embedding hosts; the
			// CLI runs without one.
			return New(reg, log, nil), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			TransformerNodeID,
			RegistryNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	transformer, err := graft.Dep[*Transformer](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[*registry.Registry](ctx)
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
		Transformer:  transformer,
		Registry:     reg,
		Logger:       log,
		ConfigLoader: loader,
	}, nil
}
