package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cjktextnorm/textnorm/app/config"
	"github.com/cjktextnorm/textnorm/app/controllers"
	"github.com/cjktextnorm/textnorm/app/services"
	"github.com/cjktextnorm/textnorm/internal/tnorm/cachestore"
	"github.com/cjktextnorm/textnorm/routes"
)

// cmd/api is the lighter-weight composition root the prior revision also
// shipped alongside the root main.go (no viper, release-mode gin) — use
// this for container deployments where configuration comes entirely
// from config/app.yaml + env. On SIGINT/SIGTERM it logs and exits; the
// HTTP server is not drained first.
func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/app.yaml"
	}
	if err := config.Load(configPath); err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("starting text normalization API")

	cacheStore, err := initCacheStore(logger)
	if err != nil {
		logger.Fatal("failed to initialize cache store", zap.Error(err))
	}

	cfg := services.NormalizeServiceConfig{Deterministic: config.C.Normalize.Deterministic}
	if cacheStore != nil {
		cfg.CacheLoad, cfg.CacheSave = cachestore.AsNormalizerOptions(cacheStore)
	}

	requestCache := services.NewNormalizeCacheService(24 * time.Hour)
	normalizeService, err := services.NewNormalizeService(cfg, requestCache, logger)
	if err != nil {
		logger.Fatal("failed to build normalize service", zap.Error(err))
	}

	normalizeController := controllers.NewNormalizeController(normalizeService, logger)
	adminController := controllers.NewAdminController(normalizeService, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	routes.SetupAllRoutes(router, normalizeController, adminController)

	port := getPort()
	go func() {
		logger.Info("starting HTTP server", zap.String("port", port))
		if err := router.Run(":" + port); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	_, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info("server exited")
}

func getPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return config.C.App.Port
}

// initCacheStore mirrors the root main.go's cache backend switch. Unlike
// the root main.go, this binary loads no whitelist and treats a cache
// backend error as fatal.
func initCacheStore(logger *zap.Logger) (cachestore.Store, error) {
	switch config.C.Cache.Backend {
	case config.CacheBackendFile:
		return cachestore.NewFileCacheStore(config.C.Cache.Dir), nil
	case config.CacheBackendRedis:
		return cachestore.NewRedisCacheStore(config.C.Cache.RedisURL, logger)
	case config.CacheBackendHybrid:
		redis, err := cachestore.NewRedisCacheStore(config.C.Cache.RedisURL, logger)
		if err != nil {
			return nil, err
		}
		l1Size := config.C.Cache.L1Size
		if v := os.Getenv("L1_CACHE_SIZE"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				l1Size = n
			}
		}
		return cachestore.NewHybridCacheStore(l1Size, redis, logger)
	default:
		return nil, nil
	}
}
