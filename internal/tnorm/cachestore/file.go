package cachestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cjktextnorm/textnorm/internal/tnorm"
)

// FileCacheStore persists one compiled grammar per key as a gob-encoded
// `.far`-style archive on local disk, adapted from the prior revision's
// CacheService but backed by the filesystem instead of an in-process
// map, since the grammar compiled here is too large to rebuild on every
// process start. Concurrent readers are safe (plain os.ReadFile);
// writers use O_EXCL so two processes racing to populate the same key
// never corrupt each other's write (spec §5 "writers must use exclusive
// file creation").
type FileCacheStore struct {
	dir string
}

func NewFileCacheStore(dir string) *FileCacheStore {
	return &FileCacheStore{dir: dir}
}

func (s *FileCacheStore) path(key string) string {
	return filepath.Join(s.dir, key+".far")
}

func (s *FileCacheStore) Load(key string) (*tnorm.CompiledGrammar, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cachestore: read %s: %w", key, err)
	}
	g, err := Decode(data)
	if err != nil {
		// spec §7 CacheError: present but unreadable, recovered by the
		// caller rebuilding from scratch — report miss, not error. The
		// unreadable file is removed so the rebuild's Save can replace it.
		_ = os.Remove(s.path(key))
		return nil, false, nil
	}
	return g, true, nil
}

func (s *FileCacheStore) Save(key string, g *tnorm.CompiledGrammar) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("cachestore: mkdir %s: %w", s.dir, err)
	}
	data, err := Encode(g)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(s.path(key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		// Another writer already populated this key; treat as success.
		return nil
	}
	if err != nil {
		return fmt.Errorf("cachestore: create %s: %w", key, err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("cachestore: write %s: %w", key, err)
	}
	return nil
}
