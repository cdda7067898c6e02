package manifest

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/buildgridgo/internal/ctxlog"
	"github.com/vk/buildgridgo/internal/fsutil"
	"github.com/vk/buildgridgo/internal/sourcepath"
)

// ManifestName is the file name the loader discovers under the source root.
const ManifestName = "BUILD.hcl"

// Loader discovers and parses BUILD.hcl manifests into a Model.
type Loader struct{}

// NewLoader creates a new manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level blocks of a single manifest file.
type fileRoot struct {
	Configs []*hclConfig `hcl:"config,block"`
	Targets []*hclTarget `hcl:"target,block"`
}

type hclConfig struct {
	Name    string   `hcl:"name,label"`
	CFlags  []string `hcl:"cflags,optional"`
	Defines []string `hcl:"defines,optional"`
}

type hclTarget struct {
	Name    string         `hcl:"name,label"`
	Type    string         `hcl:"type"`
	Sources hcl.Expression `hcl:"sources,optional"`
	Deps    []string       `hcl:"deps,optional"`
	Configs []string       `hcl:"configs,optional"`
}

// Load walks rootPath for manifests, parses them, and merges all blocks into
// a single Model. Target and config names are global: redeclaring a name in
// another manifest is an error.
func (l *Loader) Load(ctx context.Context, rootPath string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "root", rootPath)

	files, err := fsutil.FindFilesByName(rootPath, ManifestName)
	if err != nil {
		return nil, fmt.Errorf("failed to discover manifests in %s: %w", rootPath, err)
	}
	logger.Debug("Discovered manifests.", "count", len(files))

	model := NewModel()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest %s: %w", file, diags)
		}

		dir, err := dirForManifest(rootPath, file)
		if err != nil {
			return nil, err
		}

		for _, c := range root.Configs {
			if prev, exists := model.Configs[c.Name]; exists {
				return nil, fmt.Errorf("config %q declared in both %s and %s", c.Name, prev.File, file)
			}
			model.Configs[c.Name] = &Config{
				Name:    c.Name,
				CFlags:  c.CFlags,
				Defines: c.Defines,
				Dir:     dir,
				File:    file,
			}
		}

		for _, t := range root.Targets {
			if prev, exists := model.TargetIndex[t.Name]; exists {
				return nil, fmt.Errorf("target %q declared in both %s and %s", t.Name, prev.File, file)
			}
			target := &Target{
				Name:    t.Name,
				Type:    t.Type,
				Deps:    t.Deps,
				Configs: t.Configs,
				Sources: t.Sources,
				Dir:     dir,
				File:    file,
			}
			model.Targets = append(model.Targets, target)
			model.TargetIndex[t.Name] = target
		}
	}

	logger.Debug("Manifest loading complete.", "targets", len(model.Targets), "configs", len(model.Configs))
	return model, nil
}

// dirForManifest converts a manifest's host path into the source-absolute
// directory its blocks are declared in.
func dirForManifest(root, file string) (sourcepath.Dir, error) {
	rel, err := filepath.Rel(root, filepath.Dir(file))
	if err != nil {
		return sourcepath.Dir{}, fmt.Errorf("manifest %s is outside the source root %s: %w", file, root, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		return sourcepath.MakeDir("//"), nil
	}
	return sourcepath.MakeDir("//" + rel + "/"), nil
}
