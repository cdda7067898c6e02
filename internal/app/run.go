package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/buildgridgo/internal/builder"
	"github.com/vk/buildgridgo/internal/ctxlog"
)

// Run executes the main application logic: load every manifest under the
// root, build the graph, and print a summary of each resolved target.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loader.Load(ctx, a.config.RootPath)
	if err != nil {
		return fmt.Errorf("failed to load manifests: %w", err)
	}
	a.logger.Debug("Manifest model loaded.", "targets", len(model.Targets), "configs", len(model.Configs))

	graph, err := builder.Build(ctx, model, builder.Options{
		SourceRoot: a.config.SourceRoot,
		CacheSize:  a.config.CacheSize,
	})
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}
	a.logger.Info("Graph built.", "targets", len(graph.Targets))

	if len(graph.Targets) == 0 {
		a.logger.Warn("No targets found under root, nothing to print.")
		return nil
	}

	a.printGraph(graph)
	a.logger.Debug("App.Run method finished.")
	return nil
}

// printGraph writes one block per target to the primary output stream.
func (a *App) printGraph(graph *builder.Graph) {
	for _, t := range graph.Targets {
		fmt.Fprintf(a.outW, "%s%s (%s)\n", t.Dir.Value(), t.Name, t.Type)
		for _, src := range t.Sources {
			fmt.Fprintf(a.outW, "  source %s\n", src.Value())
		}
		if len(t.FlattenedDeps) > 0 {
			fmt.Fprintf(a.outW, "  deps   %s\n", strings.Join(t.FlattenedDeps, " "))
		}
		if len(t.EffectiveConfigs) > 0 {
			fmt.Fprintf(a.outW, "  cfgs   %s\n", strings.Join(t.EffectiveConfigs, " "))
		}
	}
}
