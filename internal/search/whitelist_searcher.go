// Package search indexes whitelist overrides in Meilisearch so an
// operator-facing admin surface can fuzzy-search and manage them at
// runtime, mirroring GazetteerSearcher. The normalize
// hot path never depends on this package: it reads its whitelist from
// the StringMap the grammar was built with (spec.md §6). Nothing in this
// module feeds the index's contents back into a running normalizer.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"
)

// Entry is one whitelist override: a literal surface string mapped to
// its spoken reading.
type Entry struct {
	Surface string `json:"surface"`
	Reading string `json:"reading"`
}

// Config mirrors SearchConfig, trimmed to what a flat
// whitelist index needs (no admin-hierarchy levels).
type Config struct {
	Host      string
	APIKey    string
	IndexName string
	Timeout   time.Duration
}

// WhitelistSearcher wraps a Meilisearch index of whitelist entries.
type WhitelistSearcher struct {
	client    meilisearch.ServiceManager
	logger    *zap.Logger
	indexName string
	timeout   time.Duration
}

func NewWhitelistSearcher(cfg Config, logger *zap.Logger) (*WhitelistSearcher, error) {
	client := meilisearch.New(cfg.Host, meilisearch.WithAPIKey(cfg.APIKey))
	if _, err := client.Health(); err != nil {
		return nil, fmt.Errorf("search: connect meilisearch: %w", err)
	}
	return &WhitelistSearcher{
		client:    client,
		logger:    logger,
		indexName: cfg.IndexName,
		timeout:   cfg.Timeout,
	}, nil
}

// Configure sets up searchable/filterable attributes and typo
// tolerance the way BuildIndexes does, scoped to the two
// whitelist fields.
func (s *WhitelistSearcher) Configure() error {
	index := s.client.Index(s.indexName)
	oneTypo := int64(3)
	twoTypos := int64(7)
	task, err := index.UpdateSettings(&meilisearch.Settings{
		SearchableAttributes: []string{"surface", "reading"},
		FilterableAttributes: []string{"surface"},
		RankingRules:         []string{"words", "typo", "proximity", "attribute", "sort", "exactness"},
		TypoTolerance: &meilisearch.TypoTolerance{
			Enabled: true,
			MinWordSizeForTypos: meilisearch.MinWordSizeForTypos{
				OneTypo:  oneTypo,
				TwoTypos: twoTypos,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("search: configure whitelist index: %w", err)
	}
	s.logger.Info("search: whitelist index configured", zap.Int64("task_uid", task.TaskUID))
	return nil
}

// Seed adds entries to the index under ids "0".."n-1", batched the way the
// earlier SeedData batches admin units. Documents with those ids are
// replaced; other documents already in the index are left in place.
func (s *WhitelistSearcher) Seed(entries []Entry) error {
	if len(entries) == 0 {
		return errors.New("search: no whitelist entries to seed")
	}
	index := s.client.Index(s.indexName)

	docs := make([]map[string]interface{}, len(entries))
	for i, e := range entries {
		docs[i] = map[string]interface{}{
			"id":      fmt.Sprintf("%d", i),
			"surface": e.Surface,
			"reading": e.Reading,
		}
	}

	const batchSize = 1000
	for i := 0; i < len(docs); i += batchSize {
		end := i + batchSize
		if end > len(docs) {
			end = len(docs)
		}
		task, err := index.AddDocuments(docs[i:end], "id")
		if err != nil {
			return fmt.Errorf("search: seed whitelist batch %d-%d: %w", i, end, err)
		}
		s.logger.Info("search: whitelist batch seeded", zap.Int("from", i), zap.Int("to", end), zap.Int64("task_uid", task.TaskUID))
	}
	return nil
}

// Search fuzzy-searches the whitelist index for an admin-facing lookup.
func (s *WhitelistSearcher) Search(query string, limit int64) ([]Entry, error) {
	if query == "" {
		return nil, errors.New("search: empty query")
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	_ = ctx

	index := s.client.Index(s.indexName)
	result, err := index.Search(query, &meilisearch.SearchRequest{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("search: whitelist search: %w", err)
	}

	entries := make([]Entry, 0, len(result.Hits))
	for _, hit := range result.Hits {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		var e Entry
		if v, ok := hitMap["surface"].(string); ok {
			e.Surface = v
		}
		if v, ok := hitMap["reading"].(string); ok {
			e.Reading = v
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Flatten pulls entries back out of the index, at most 10000 of them
// (a single search page).
func (s *WhitelistSearcher) Flatten() ([]Entry, error) {
	index := s.client.Index(s.indexName)
	result, err := index.Search("", &meilisearch.SearchRequest{Limit: 10000})
	if err != nil {
		return nil, fmt.Errorf("search: flatten whitelist: %w", err)
	}
	entries := make([]Entry, 0, len(result.Hits))
	for _, hit := range result.Hits {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		var e Entry
		if v, ok := hitMap["surface"].(string); ok {
			e.Surface = v
		}
		if v, ok := hitMap["reading"].(string); ok {
			e.Reading = v
		}
		entries = append(entries, e)
	}
	return entries, nil
}
