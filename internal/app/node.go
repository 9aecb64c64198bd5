package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bubbles/internal/adapters/config"
	"go.trai.ch/bubbles/internal/adapters/logger"
	"go.trai.ch/bubbles/internal/adapters/png"
	"go.trai.ch/bubbles/internal/adapters/rows"
	"go.trai.ch/bubbles/internal/adapters/sink"
	"go.trai.ch/bubbles/internal/adapters/svg"
	"go.trai.ch/bubbles/internal/adapters/telemetry"
	"go.trai.ch/bubbles/internal/adapters/watcher"
	"go.trai.ch/bubbles/internal/core/ports"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app.components"

// Components bundles what the command line needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: false,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			rows.NodeID,
			sink.NodeID,
			telemetry.NodeID,
			watcher.NodeID,
			svg.NodeID,
			png.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			source, err := graft.Dep[ports.RowSource](ctx)
			if err != nil {
				return nil, err
			}
			sinks, err := graft.Dep[*sink.Opener](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			svgSurface, err := graft.Dep[*svg.Surface](ctx)
			if err != nil {
				return nil, err
			}
			pngSurface, err := graft.Dep[*png.Surface](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, log, source, sinks, tracer, w, svgSurface, pngSurface),
				Logger: log,
			}, nil
		},
	})
}
