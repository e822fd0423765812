// Package cachestore persists a compiled grammar (spec.md §6's "cache
// file") across process restarts, adapted from the prior revision's
// app/services cache hierarchy: ICacheService becomes Store, CacheService
// (in-memory) becomes the L1 layer folded into HybridCacheStore,
// RedisCacheService/HybridCacheService keep their names and shape.
package cachestore

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/cjktextnorm/textnorm/internal/tnorm"
)

// Store is the narrow load/save contract tnorm.WithCache expects. It
// mirrors ICacheService but specialized to one value type
// (CompiledGrammar is large, write-once, read-many — none of
// ICacheService's Delete/Exists/GetTTL/InvalidateByVersion methods have
// a caller here, so they are dropped rather than carried as dead API
// surface; see DESIGN.md).
type Store interface {
	Load(key string) (*tnorm.CompiledGrammar, bool, error)
	Save(key string, g *tnorm.CompiledGrammar) error
}

// Encode gob-encodes a compiled grammar for any Store backend.
func Encode(g *tnorm.CompiledGrammar) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(g); err != nil {
		return nil, fmt.Errorf("cachestore: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode.
func Decode(data []byte) (*tnorm.CompiledGrammar, error) {
	var g tnorm.CompiledGrammar
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return nil, fmt.Errorf("cachestore: decode: %w", err)
	}
	return &g, nil
}

// AsNormalizerOptions adapts a Store into the load/save closures
// tnorm.WithCache takes, so callers don't have to write this glue
// themselves at every call site. Pass the result straight through to
// tnorm.WithCache along with the caller's own overwrite flag.
func AsNormalizerOptions(s Store) (load func(string) (*tnorm.CompiledGrammar, bool), save func(string, *tnorm.CompiledGrammar)) {
	load = func(key string) (*tnorm.CompiledGrammar, bool) {
		g, ok, err := s.Load(key)
		if err != nil || !ok {
			return nil, false
		}
		return g, true
	}
	save = func(key string, g *tnorm.CompiledGrammar) {
		_ = s.Save(key, g)
	}
	return load, save
}
