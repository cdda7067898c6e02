package manifest

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/vk/buildgridgo/internal/sourcepath"
)

// Config is a named, reusable group of compile settings that targets attach
// by reference. Attachment order is meaningful and preserved downstream.
type Config struct {
	Name    string
	CFlags  []string
	Defines []string

	// Dir is the source-absolute directory of the declaring manifest.
	Dir sourcepath.Dir
	// File is the host path of the declaring manifest, for diagnostics.
	File string
}

// Target is the format-agnostic representation of a `target` block.
type Target struct {
	Name    string
	Type    string
	Deps    []string
	Configs []string

	// Sources is kept as an unevaluated expression. The builder evaluates it
	// and resolves every entry against Dir, using the expression's range to
	// blame bad paths on their build-file location.
	Sources hcl.Expression

	Dir  sourcepath.Dir
	File string
}

// Model is the unified representation of every manifest discovered under a
// source root. Targets keep declaration order (manifest discovery order,
// then in-file order); lookups are by name.
type Model struct {
	Targets     []*Target
	TargetIndex map[string]*Target
	Configs     map[string]*Config
}

// NewModel returns an empty, initialized Model.
func NewModel() *Model {
	return &Model{
		TargetIndex: make(map[string]*Target),
		Configs:     make(map[string]*Config),
	}
}
