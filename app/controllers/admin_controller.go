package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cjktextnorm/textnorm/app/requests"
	"github.com/cjktextnorm/textnorm/app/responses"
	"github.com/cjktextnorm/textnorm/app/services"
)

// AdminController serves the operator-facing endpoints, adapted from
// the earlier AdminController: cache invalidation and runtime stats,
// trimmed to what this domain tracks (no gazetteer seeding, no
// learned-alias synonym rebuild — the whitelist is managed through
// internal/search.WhitelistSearcher instead).
type AdminController struct {
	normalizeService *services.NormalizeService
	logger           *zap.Logger
}

func NewAdminController(normalizeService *services.NormalizeService, logger *zap.Logger) *AdminController {
	return &AdminController{normalizeService: normalizeService, logger: logger}
}

// InvalidateCache handles POST /v1/admin/cache/invalidate.
func (ac *AdminController) InvalidateCache(c *gin.Context) {
	var req requests.CacheInvalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:     "INVALID_REQUEST",
			Message:   "invalid request: " + err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	removed := ac.normalizeService.InvalidateLang(req.Lang)
	ac.logger.Info("admin: cache invalidated", zap.String("lang", req.Lang), zap.Int("removed", removed))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"removed": removed,
	})
}

// GetStats handles GET /v1/admin/stats.
func (ac *AdminController) GetStats(c *gin.Context) {
	hits, misses, _ := ac.normalizeService.CacheStats()

	c.JSON(http.StatusOK, responses.AdminStatsResponse{
		RequestCacheHits:   hits,
		RequestCacheMisses: misses,
		UptimeSeconds:      int64(time.Since(ac.normalizeService.StartTime()).Seconds()),
		LastUpdated:        time.Now().Format(time.RFC3339),
	})
}
