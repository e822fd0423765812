package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// CacheBackend selects which internal/tnorm/cachestore.Store the
// composition root wires up.
type CacheBackend string

const (
	CacheBackendNone   CacheBackend = "none"
	CacheBackendFile   CacheBackend = "file"
	CacheBackendRedis  CacheBackend = "redis"
	CacheBackendHybrid CacheBackend = "hybrid"
)

type CacheCfg struct {
	Backend  CacheBackend `yaml:"backend" json:"backend"`
	Dir      string       `yaml:"dir" json:"dir"`
	RedisURL string       `yaml:"redis_url" json:"redis_url"`
	L1Size   int          `yaml:"l1_size" json:"l1_size"`
}

type MeiliCfg struct {
	Host      string `yaml:"host" json:"host"`
	MasterKey string `yaml:"master_key" json:"master_key"`
	IndexName string `yaml:"index_name" json:"index_name"`
}

type NormalizeCfg struct {
	DefaultLang   string `yaml:"default_lang" json:"default_lang"`
	Deterministic bool   `yaml:"deterministic" json:"deterministic"`
	WhitelistPath string `yaml:"whitelist_path" json:"whitelist_path"`
}

// AppCfg is the top-level YAML document read from config/app.yaml,
// shaped after the earlier ParserCfg but scoped to the normalization
// domain: default language, determinism, whitelist source, cache
// backend choice, and the HTTP bind address.
type AppCfg struct {
	App struct {
		Env  string `yaml:"env" json:"env"`
		Port string `yaml:"port" json:"port"`
	} `yaml:"app" json:"app"`

	Normalize NormalizeCfg `yaml:"normalize" json:"normalize"`
	Cache     CacheCfg     `yaml:"cache" json:"cache"`
	Meili     MeiliCfg     `yaml:"meilisearch" json:"meilisearch"`

	Worker struct {
		Concurrency int `yaml:"concurrency" json:"concurrency"`
	} `yaml:"worker" json:"worker"`
}

// C holds the loaded configuration, matching package-level
// var C ParserCfg convention.
var C AppCfg

// Load reads path into C, applying defaults first and then a handful of
// env-var overrides the same way the earlier config.Load overrides
// UseLibpostal from USE_LIBPOSTAL.
func Load(path string) error {
	applyDefaults()

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &C); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	if v := os.Getenv("NORMALIZE_DETERMINISTIC"); v == "0" {
		C.Normalize.Deterministic = false
	}
	if v := os.Getenv("NORMALIZE_DETERMINISTIC"); v == "1" {
		C.Normalize.Deterministic = true
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		C.Cache.RedisURL = v
	}
	if v := os.Getenv("MEILI_HOST"); v != "" {
		C.Meili.Host = v
	}
	return nil
}

func applyDefaults() {
	C.App.Env = "development"
	C.App.Port = "8080"
	C.Normalize.DefaultLang = "zh"
	C.Normalize.Deterministic = true
	C.Cache.Backend = CacheBackendFile
	C.Cache.Dir = "./cache"
	C.Cache.L1Size = 4096
	C.Meili.IndexName = "whitelist"
	C.Worker.Concurrency = 4
}

// RequestTimeout returns a per-request time budget (1.5s) for HTTP
// normalize calls. No handler or service in this module applies it.
func RequestTimeout() time.Duration { return 1500 * time.Millisecond }
