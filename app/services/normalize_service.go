package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cjktextnorm/textnorm/app/models"
	"github.com/cjktextnorm/textnorm/internal/tnorm"
	"github.com/cjktextnorm/textnorm/internal/tnorm/ja"
	"github.com/cjktextnorm/textnorm/internal/tnorm/zh"
)

// NormalizeService owns one compiled Normalizer per supported language
// and fronts it with NormalizeCacheService, the way the prior revision's
// AddressService fronts AddressParser with ICacheService. Unlike the
// this domain, there is no per-request job queue: normalize calls are pure,
// fast CPU work (spec.md §5), so BatchNormalize runs synchronously.
type NormalizeService struct {
	normalizers map[tnorm.Lang]*tnorm.Normalizer
	cache       *NormalizeCacheService
	logger      *zap.Logger
	startedAt   time.Time
}

// NormalizeServiceConfig carries the per-normalizer options through to
// tnorm.NewNormalizer (whitelist entries, cache-store load/save hooks).
type NormalizeServiceConfig struct {
	Deterministic  bool
	WhitelistPairs [][2]string
	CacheLoad      func(key string) (*tnorm.CompiledGrammar, bool)
	CacheSave      func(key string, g *tnorm.CompiledGrammar)
	OverwriteCache bool
}

func NewNormalizeService(cfg NormalizeServiceConfig, cache *NormalizeCacheService, logger *zap.Logger) (*NormalizeService, error) {
	opts := []tnorm.Option{tnorm.WithLogger(logger), tnorm.WithWhitelist(cfg.WhitelistPairs)}
	if cfg.CacheLoad != nil {
		opts = append(opts, tnorm.WithCache(cfg.CacheLoad, cfg.CacheSave, cfg.OverwriteCache))
	}

	zhNorm, err := tnorm.NewNormalizer(tnorm.LangZh, tnorm.InputCased, cfg.Deterministic, zh.BuildRegistry, opts...)
	if err != nil {
		return nil, fmt.Errorf("services: build zh normalizer: %w", err)
	}
	jaNorm, err := tnorm.NewNormalizer(tnorm.LangJa, tnorm.InputCased, cfg.Deterministic, ja.BuildRegistry, opts...)
	if err != nil {
		return nil, fmt.Errorf("services: build ja normalizer: %w", err)
	}

	return &NormalizeService{
		normalizers: map[tnorm.Lang]*tnorm.Normalizer{tnorm.LangZh: zhNorm, tnorm.LangJa: jaNorm},
		cache:       cache,
		logger:      logger,
		startedAt:   time.Now(),
	}, nil
}

// Normalize runs one text through the requested language's grammar,
// consulting the request-level cache first.
func (s *NormalizeService) Normalize(lang string, deterministic bool, text string, verbose bool, punctPostProcess bool) (*models.NormalizeResult, error) {
	n, ok := s.normalizers[tnorm.Lang(lang)]
	if !ok {
		return nil, fmt.Errorf("services: unsupported lang %q", lang)
	}

	ctx := context.Background()
	key := RequestKey(lang, deterministic, text)
	if !verbose {
		if cached, found := s.cache.Get(ctx, key); found {
			cached.CacheHit = true
			return cached, nil
		}
	}

	start := time.Now()
	res := n.Normalize(text, verbose, punctPostProcess)
	result := &models.NormalizeResult{
		Text:             res.Text,
		Tokens:           res.Tokens,
		Lang:             lang,
		Deterministic:    deterministic,
		CacheHit:         false,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		CreatedAt:        start,
	}

	if !verbose {
		s.cache.Set(ctx, key, result)
	}
	return result, nil
}

// BatchNormalize runs every text through Normalize in turn (spec.md §5:
// normalize calls are pure CPU work with no shared mutable state across
// calls, so no worker pool is needed for correctness here — cmd/worker
// adds one purely for throughput on very large batches).
func (s *NormalizeService) BatchNormalize(lang string, deterministic bool, texts []string, verbose bool, punctPostProcess bool) ([]*models.NormalizeResult, error) {
	results := make([]*models.NormalizeResult, len(texts))
	for i, text := range texts {
		r, err := s.Normalize(lang, deterministic, text, verbose, punctPostProcess)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}

func (s *NormalizeService) StartTime() time.Time { return s.startedAt }

func (s *NormalizeService) CacheStats() (hits, misses int64, size int) {
	return s.cache.Stats()
}

func (s *NormalizeService) InvalidateLang(lang string) int {
	return s.cache.InvalidateLang(context.Background(), lang)
}
