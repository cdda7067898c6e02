// Package builder turns a manifest model into a validated build graph.
//
// Construction runs in passes: resolve every target's declared sources
// against its manifest directory, validate dep and config references, reject
// dependency cycles, then flatten each target's transitive deps and configs.
// Flattening preserves first-occurrence order and suppresses duplicates;
// that order is the link order and config override order consumed
// downstream.
package builder
