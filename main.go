package main

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cjktextnorm/textnorm/app/config"
	"github.com/cjktextnorm/textnorm/app/controllers"
	"github.com/cjktextnorm/textnorm/app/services"
	"github.com/cjktextnorm/textnorm/internal/tnorm/cachestore"
	"github.com/cjktextnorm/textnorm/routes"
)

func main() {
	// 1. Load configuration
	loadConfig()
	if err := config.Load("config/app.yaml"); err != nil {
		log.Printf("Warning: cannot read config/app.yaml: %v", err)
	}

	// 2. Initialize logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting text normalization service")

	// 3. Load whitelist overrides
	whitelistPairs := loadWhitelist(config.C.Normalize.WhitelistPath, logger)

	// 4. Initialize the grammar cache backend
	cacheStore, err := initCacheStore(logger)
	if err != nil {
		logger.Warn("Failed to initialize grammar cache backend, compiling uncached", zap.Error(err))
	}

	// 5. Initialize the normalize service
	cfg := services.NormalizeServiceConfig{
		Deterministic:  config.C.Normalize.Deterministic,
		WhitelistPairs: whitelistPairs,
	}
	if cacheStore != nil {
		cfg.CacheLoad, cfg.CacheSave = cachestore.AsNormalizerOptions(cacheStore)
	}

	requestCache := services.NewNormalizeCacheService(24 * time.Hour)
	requestCache.StartCleanupWorker(time.Hour)

	normalizeService, err := services.NewNormalizeService(cfg, requestCache, logger)
	if err != nil {
		logger.Fatal("Failed to build normalize service", zap.Error(err))
	}

	// 6. Initialize controllers
	normalizeController := controllers.NewNormalizeController(normalizeService, logger)
	adminController := controllers.NewAdminController(normalizeService, logger)

	// 7. Initialize Gin router
	router := gin.Default()
	routes.SetupAllRoutes(router, normalizeController, adminController)

	// 8. Start server
	port := getEnv("APP_PORT", config.C.App.Port)
	logger.Info("text normalization service starting", zap.String("port", port))

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// loadConfig sets up viper (defaults, environment binding and config-file
// discovery), matching mixed yaml+viper usage. Nothing in this binary
// reads values back out of viper: config.C comes from config.Load, and
// the only environment overrides applied are APP_PORT, APP_ENV and
// L1_CACHE_SIZE via getEnv/getEnvInt.
func loadConfig() {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("cache.redis_url", "redis://localhost:6379")
	viper.SetDefault("cache.l1_size", 4096)
	viper.SetDefault("worker.concurrency", 4)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: cannot read viper config: %v", err)
	}
}

func initLogger() *zap.Logger {
	env := getEnv("APP_ENV", "development")

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}
	return logger
}

// initCacheStore wires a cachestore.Store per config.C.Cache.Backend.
// A "none" backend (or one that fails to connect) leaves cacheStore nil
// and the service simply compiles its grammar on every start.
func initCacheStore(logger *zap.Logger) (cachestore.Store, error) {
	l1Size := getEnvInt("L1_CACHE_SIZE", config.C.Cache.L1Size)

	switch config.C.Cache.Backend {
	case config.CacheBackendFile:
		return cachestore.NewFileCacheStore(config.C.Cache.Dir), nil
	case config.CacheBackendRedis:
		redis, err := cachestore.NewRedisCacheStore(config.C.Cache.RedisURL, logger)
		if err != nil {
			return nil, err
		}
		return redis, nil
	case config.CacheBackendHybrid:
		redis, err := cachestore.NewRedisCacheStore(config.C.Cache.RedisURL, logger)
		if err != nil {
			return nil, err
		}
		hybrid, err := cachestore.NewHybridCacheStore(l1Size, redis, logger)
		if err != nil {
			return nil, err
		}
		return hybrid, nil
	default:
		return nil, nil
	}
}

// loadWhitelist reads a two-column TSV of surface\treading overrides
// from disk. An empty path or missing file means no whitelist, not a
// fatal error — the normalizer still works over the class grammars
// alone.
func loadWhitelist(path string, logger *zap.Logger) [][2]string {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("Cannot open whitelist file, continuing without it", zap.String("path", path), zap.Error(err))
		return nil
	}
	defer f.Close()

	var pairs [][2]string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		cols := strings.SplitN(line, "\t", 2)
		if len(cols) != 2 {
			continue
		}
		pairs = append(pairs, [2]string{cols[0], cols[1]})
	}
	return pairs
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt overrides config.C.Cache.L1Size from L1_CACHE_SIZE, the
// same override knob the earlier getEnvInt served for its own L1
// cache sizing.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
