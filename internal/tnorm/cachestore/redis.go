package cachestore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cjktextnorm/textnorm/internal/tnorm"
)

// RedisCacheStore shares one compiled grammar over the network across
// every process in a deployment, adapted from the prior revision's
// RedisCacheService (same prefix/TTL/hit-miss-counter shape, swapped to
// gob-encoded CompiledGrammar values instead of JSON AddressResult).
type RedisCacheStore struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration

	hits   int64
	misses int64
}

func NewRedisCacheStore(redisURL string, logger *zap.Logger) (*RedisCacheStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cachestore: parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("cachestore: connect redis: %w", err)
	}

	return &RedisCacheStore{
		client: client,
		logger: logger,
		prefix: "textnorm:grammar:",
		ttl:    7 * 24 * time.Hour,
	}, nil
}

func (s *RedisCacheStore) Load(key string) (*tnorm.CompiledGrammar, bool, error) {
	ctx := context.Background()
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err == redis.Nil {
		s.misses++
		return nil, false, nil
	}
	if err != nil {
		s.logger.Warn("cachestore: redis get failed", zap.Error(err), zap.String("key", key))
		return nil, false, err
	}
	g, err := Decode(val)
	if err != nil {
		s.logger.Warn("cachestore: redis value undecodable", zap.Error(err), zap.String("key", key))
		return nil, false, nil
	}
	s.hits++
	return g, true, nil
}

func (s *RedisCacheStore) Save(key string, g *tnorm.CompiledGrammar) error {
	data, err := Encode(g)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("cachestore: redis set %s: %w", key, err)
	}
	return nil
}

// Stats reports the running hit/miss counters (adapted from the
// earlier CacheStats, trimmed to the two counters this store tracks).
func (s *RedisCacheStore) Stats() (hits, misses int64) {
	return s.hits, s.misses
}
