// Package manifest defines the format-agnostic model of the build manifests
// found under a source root, along with the HCL loader that produces it.
//
// A manifest is a BUILD.hcl file declaring `config` and `target` blocks. The
// loader records, for every block, the source-absolute directory of its
// declaring file; relative paths inside the block are later resolved against
// that directory. The manifest.Model is the single source of truth for the
// builder package.
package manifest
