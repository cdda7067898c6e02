// Package resolvecache memoizes path resolution outcomes behind an LRU.
//
// Manifest trees repeat the same relative inputs over and over (every target
// in a directory names sibling files, every directory attaches the same
// configs), so the builder consults this cache before re-running resolution.
// The cache stores the normalized result or the failure kind, never the
// caller's blame context: blame differs per call site and is re-attached by
// the caller on a hit. Semantics are identical with the cache disabled.
package resolvecache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Key identifies a single resolution request.
type Key struct {
	Base       string
	Input      string
	AsFile     bool
	SourceRoot string
}

// Result is a cached resolution outcome: a normalized value string, or the
// sentinel error kind that resolution failed with.
type Result struct {
	Value   string
	ErrKind error
}

// Cache is a fixed-size LRU of resolution outcomes. A nil or disabled Cache
// is valid and never hits.
type Cache struct {
	lru *lru.Cache[Key, Result]
}

// New creates a cache holding up to size entries. A size of zero or less
// returns a disabled cache.
func New(size int) (*Cache, error) {
	if size <= 0 {
		return &Cache{}, nil
	}
	l, err := lru.New[Key, Result](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Get returns the cached outcome for k, if any.
func (c *Cache) Get(k Key) (Result, bool) {
	if c == nil || c.lru == nil {
		return Result{}, false
	}
	return c.lru.Get(k)
}

// Add records the outcome for k, evicting the least recently used entry if
// the cache is full.
func (c *Cache) Add(k Key, r Result) {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Add(k, r)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	if c == nil || c.lru == nil {
		return 0
	}
	return c.lru.Len()
}
