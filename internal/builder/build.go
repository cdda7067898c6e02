package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/buildgridgo/internal/ctxlog"
	"github.com/vk/buildgridgo/internal/manifest"
	"github.com/vk/buildgridgo/internal/sourcepath"
	"github.com/vk/buildgridgo/internal/uniquevec"
)

// Options configure graph construction.
type Options struct {
	// SourceRoot is the host path treated as the source tree root "//".
	// When set, system-absolute source paths that point inside the tree are
	// rewritten into source-absolute form.
	SourceRoot string

	// CacheSize bounds the path resolution memo; zero disables it.
	CacheSize int
}

// Build constructs a complete, validated build graph from a manifest model.
func Build(ctx context.Context, model *manifest.Model, opts Options) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting graph construction.", "targets", len(model.Targets))

	res, err := newResolver(opts.SourceRoot, opts.CacheSize)
	if err != nil {
		return nil, err
	}

	graph := &Graph{byName: make(map[string]*Target, len(model.Targets))}

	// First pass: create targets and resolve their source lists.
	for _, mt := range model.Targets {
		sources, err := resolveSources(res, mt)
		if err != nil {
			return nil, err
		}
		t := &Target{
			Name:    mt.Name,
			Type:    mt.Type,
			Dir:     mt.Dir,
			Sources: sources,
			Deps:    mt.Deps,
			Configs: mt.Configs,
		}
		graph.Targets = append(graph.Targets, t)
		graph.byName[t.Name] = t
	}
	logger.Debug("Build: target creation complete.")

	// Second pass: validate references.
	for _, t := range graph.Targets {
		mt := model.TargetIndex[t.Name]
		for _, dep := range t.Deps {
			if _, ok := graph.byName[dep]; !ok {
				return nil, fmt.Errorf("target %q depends on undeclared target %q (%s)", t.Name, dep, mt.File)
			}
		}
		for _, cfg := range t.Configs {
			if _, ok := model.Configs[cfg]; !ok {
				return nil, fmt.Errorf("target %q attaches undeclared config %q (%s)", t.Name, cfg, mt.File)
			}
		}
	}
	logger.Debug("Build: reference validation complete.")

	if err := detectCycles(graph); err != nil {
		return nil, fmt.Errorf("error validating dependency graph: %w", err)
	}
	logger.Debug("Build: cycle detection passed.")

	// Final pass: flatten transitive deps and configs. The first occurrence
	// of a value fixes its position; later duplicates are dropped.
	for _, t := range graph.Targets {
		flattenTarget(graph, t)
	}

	logger.Debug("Build: graph construction successful.")
	return graph, nil
}

// resolveSources evaluates a target's sources expression and resolves every
// entry against the target's manifest directory.
func resolveSources(res *resolver, mt *manifest.Target) ([]sourcepath.File, error) {
	if mt.Sources == nil {
		return nil, nil
	}

	val, diags := mt.Sources.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("target %q: failed to evaluate sources: %w", mt.Name, diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if ty := val.Type(); !ty.IsTupleType() && !ty.IsListType() && !ty.IsSetType() {
		return nil, fmt.Errorf("target %q: sources must be a list of strings (%s)", mt.Name, mt.Sources.Range())
	}

	var files []sourcepath.File
	for it := val.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		if ev.IsNull() || ev.Type() != cty.String {
			return nil, fmt.Errorf("target %q: sources elements must be strings (%s)", mt.Name, mt.Sources.Range())
		}
		f, err := res.resolveFile(mt.Dir, ev.AsString(), mt.Sources.Range())
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", mt.Name, err)
		}
		files = append(files, f)
	}
	return files, nil
}

// detectCycles rejects dependency cycles with a trail naming every target on
// the cycle.
func detectCycles(g *Graph) error {
	const (
		white = iota // unvisited
		grey         // on the current DFS stack
		black        // fully explored
	)
	state := make(map[string]int, len(g.Targets))

	var visit func(t *Target, trail []string) error
	visit = func(t *Target, trail []string) error {
		state[t.Name] = grey
		trail = append(trail, t.Name)
		for _, dep := range t.Deps {
			switch state[dep] {
			case grey:
				return fmt.Errorf("dependency cycle: %s -> %s", strings.Join(trail, " -> "), dep)
			case white:
				if err := visit(g.byName[dep], trail); err != nil {
					return err
				}
			}
		}
		state[t.Name] = black
		return nil
	}

	for _, t := range g.Targets {
		if state[t.Name] == white {
			if err := visit(t, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

// flattenTarget computes the transitive dep list in first-seen (link) order
// and the effective config list, own configs first.
func flattenTarget(g *Graph, t *Target) {
	var deps uniquevec.UniqueVector[string]
	var visit func(cur *Target)
	visit = func(cur *Target) {
		for _, depName := range cur.Deps {
			if deps.Append(depName) {
				visit(g.byName[depName])
			}
		}
	}
	visit(t)
	t.FlattenedDeps = deps.Slice()

	var configs uniquevec.UniqueVector[string]
	configs.AppendSlice(t.Configs)
	for _, depName := range t.FlattenedDeps {
		configs.AppendSlice(g.byName[depName].Configs)
	}
	t.EffectiveConfigs = configs.Slice()
}
