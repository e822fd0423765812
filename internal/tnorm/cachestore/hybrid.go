package cachestore

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/cjktextnorm/textnorm/internal/tnorm"
)

// HybridCacheStore layers an in-process L1 ring in front of Redis,
// mirroring HybridCacheService (there: Redis L1 +
// MongoDB L2). The L2 here is Redis rather than MongoDB — the compiled
// grammar artifact is a handful of immutable blobs keyed by a tiny
// (lang, deterministic, whitelist-size) space, not a growing document
// store's workload, so a disk-backed L2 buys nothing a shared in-memory
// L1 plus Redis doesn't already cover (see DESIGN.md for the MongoDB
// disposition). The L1 ring is golang-lru, its own indirect
// dependency, promoted here to direct use.
type HybridCacheStore struct {
	l1     *lru.Cache[string, *tnorm.CompiledGrammar]
	l2     *RedisCacheStore
	logger *zap.Logger
}

func NewHybridCacheStore(l1Size int, l2 *RedisCacheStore, logger *zap.Logger) (*HybridCacheStore, error) {
	l1, err := lru.New[string, *tnorm.CompiledGrammar](l1Size)
	if err != nil {
		return nil, err
	}
	return &HybridCacheStore{l1: l1, l2: l2, logger: logger}, nil
}

func (s *HybridCacheStore) Load(key string) (*tnorm.CompiledGrammar, bool, error) {
	if g, ok := s.l1.Get(key); ok {
		s.logger.Debug("cachestore: L1 hit", zap.String("key", key))
		return g, true, nil
	}

	g, ok, err := s.l2.Load(key)
	if err != nil {
		s.logger.Warn("cachestore: L2 load failed", zap.Error(err), zap.String("key", key))
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	s.l1.Add(key, g)
	s.logger.Debug("cachestore: L2 hit, promoted to L1", zap.String("key", key))
	return g, true, nil
}

func (s *HybridCacheStore) Save(key string, g *tnorm.CompiledGrammar) error {
	s.l1.Add(key, g)
	return s.l2.Save(key, g)
}
