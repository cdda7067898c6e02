// Package uniquevec provides an append-only, order-preserving collection
// that silently suppresses duplicates while keeping membership and index
// lookups at expected O(1).
//
// Dependency lists in the build graph (configs, libraries, transitive deps)
// are order-sensitive: the first occurrence of a value fixes its position
// (link order, override order), and later duplicates must be dropped without
// disturbing it. UniqueVector is that container.
package uniquevec
