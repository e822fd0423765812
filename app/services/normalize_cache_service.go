package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/cjktextnorm/textnorm/app/models"
)

// NormalizeCacheService is an in-memory, TTL-evicted cache of per-text
// normalize results, mirroring, field for field, CacheService (same
// map+timestamp+RWMutex shape) but keyed by RequestKey instead of an
// address string, and storing a NormalizeResult instead of an
// AddressResult. This sits above internal/tnorm/cachestore: that
// package caches the compiled grammar; this caches the result of
// running a specific text through it, since repeated identical
// normalize requests are common in batch TTS pipelines.
type NormalizeCacheService struct {
	cache      map[string]*models.NormalizeResult
	timestamps map[string]time.Time
	mu         sync.RWMutex
	ttl        time.Duration

	hits   int64
	misses int64
}

func NewNormalizeCacheService(ttl time.Duration) *NormalizeCacheService {
	return &NormalizeCacheService{
		cache:      make(map[string]*models.NormalizeResult),
		timestamps: make(map[string]time.Time),
		ttl:        ttl,
	}
}

// RequestKey is sha256(lang|deterministic|text), per spec (the
// NormalizeCacheService section of the ambient stack).
func RequestKey(lang string, deterministic bool, text string) string {
	h := sha256.New()
	h.Write([]byte(lang))
	h.Write([]byte{'|'})
	if deterministic {
		h.Write([]byte{'1'})
	} else {
		h.Write([]byte{'0'})
	}
	h.Write([]byte{'|'})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

func (cs *NormalizeCacheService) Get(ctx context.Context, key string) (*models.NormalizeResult, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	result, exists := cs.cache[key]
	if !exists {
		cs.misses++
		return nil, false
	}
	if cs.isExpired(key) {
		go cs.deleteExpired(key)
		cs.misses++
		return nil, false
	}
	cs.hits++
	return result, true
}

func (cs *NormalizeCacheService) Set(ctx context.Context, key string, result *models.NormalizeResult) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.timestamps[key] = time.Now()
	cs.cache[key] = result
}

func (cs *NormalizeCacheService) Invalidate(ctx context.Context, key string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	delete(cs.cache, key)
	delete(cs.timestamps, key)
}

// InvalidateLang drops every cached result tagged with lang, used by
// POST /v1/admin/cache/invalidate.
func (cs *NormalizeCacheService) InvalidateLang(ctx context.Context, lang string) int {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	removed := 0
	for key, result := range cs.cache {
		if result.Lang == lang {
			delete(cs.cache, key)
			delete(cs.timestamps, key)
			removed++
		}
	}
	return removed
}

func (cs *NormalizeCacheService) Stats() (hits, misses int64, size int) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.hits, cs.misses, len(cs.cache)
}

func (cs *NormalizeCacheService) isExpired(key string) bool {
	timestamp, exists := cs.timestamps[key]
	if !exists {
		return true
	}
	return time.Since(timestamp) > cs.ttl
}

func (cs *NormalizeCacheService) deleteExpired(key string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	delete(cs.cache, key)
	delete(cs.timestamps, key)
}

// CleanupExpired sweeps every expired entry, meant to be driven by
// StartCleanupWorker the way CleanupExpired is.
func (cs *NormalizeCacheService) CleanupExpired() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for key := range cs.cache {
		if cs.isExpired(key) {
			delete(cs.cache, key)
			delete(cs.timestamps, key)
		}
	}
}

func (cs *NormalizeCacheService) StartCleanupWorker(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			cs.CleanupExpired()
		}
	}()
}
