package builder

import (
	"github.com/vk/buildgridgo/internal/sourcepath"
)

// Target is a fully resolved node of the build graph.
type Target struct {
	Name string
	Type string

	// Dir is the source-absolute directory of the declaring manifest.
	Dir sourcepath.Dir

	// Sources are the target's resolved source files, in declaration order.
	Sources []sourcepath.File

	// Deps and Configs are the direct references as declared.
	Deps    []string
	Configs []string

	// FlattenedDeps is the transitive dep closure in first-seen order: the
	// link order.
	FlattenedDeps []string

	// EffectiveConfigs is the target's own configs followed by its
	// transitive deps' configs, duplicates suppressed, the first occurrence
	// fixing the override position.
	EffectiveConfigs []string
}

// Graph holds the resolved targets in declaration order.
type Graph struct {
	Targets []*Target
	byName  map[string]*Target
}

// Target looks a target up by name.
func (g *Graph) Target(name string) (*Target, bool) {
	t, ok := g.byName[name]
	return t, ok
}
