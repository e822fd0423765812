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

// NormalizeController serves spec.md §6's programmatic surface over
// HTTP, mirroring AddressController (same
// bind-validate-call-respond shape, one endpoint per normalize
// operation instead of per address operation).
type NormalizeController struct {
	normalizeService *services.NormalizeService
	logger           *zap.Logger
	startedAt        time.Time
}

func NewNormalizeController(normalizeService *services.NormalizeService, logger *zap.Logger) *NormalizeController {
	return &NormalizeController{
		normalizeService: normalizeService,
		logger:           logger,
		startedAt:        time.Now(),
	}
}

// Normalize handles POST /v1/normalize.
func (nc *NormalizeController) Normalize(c *gin.Context) {
	var req requests.NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:     "INVALID_REQUEST",
			Message:   "invalid request: " + err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	result, err := nc.normalizeService.Normalize(req.Lang, req.Deterministic, req.Text, req.Verbose, req.PunctPostProcess)
	if err != nil {
		nc.logger.Error("normalize failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:     "NORMALIZE_ERROR",
			Message:   err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, responses.NormalizeResponse{
		Text:             result.Text,
		Tokens:           result.Tokens,
		CacheHit:         result.CacheHit,
		ProcessingTimeMs: result.ProcessingTimeMs,
	})
}

// BatchNormalize handles POST /v1/normalize/batch, synchronously
// (normalize calls are pure CPU work per spec.md §5, so unlike the
// earlier revision's BatchParse there is no job ID or async queue).
func (nc *NormalizeController) BatchNormalize(c *gin.Context) {
	var req requests.BatchNormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:     "INVALID_REQUEST",
			Message:   "invalid request: " + err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	start := time.Now()
	results, err := nc.normalizeService.BatchNormalize(req.Lang, req.Deterministic, req.Texts, req.Verbose, req.PunctPostProcess)
	if err != nil {
		nc.logger.Error("batch normalize failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:     "NORMALIZE_ERROR",
			Message:   err.Error(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	resp := make([]responses.NormalizeResponse, len(results))
	for i, r := range results {
		resp[i] = responses.NormalizeResponse{
			Text:             r.Text,
			Tokens:           r.Tokens,
			CacheHit:         r.CacheHit,
			ProcessingTimeMs: r.ProcessingTimeMs,
		}
	}

	c.JSON(http.StatusOK, responses.BatchNormalizeResponse{
		Results:          resp,
		TotalTexts:       len(req.Texts),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	})
}

// HealthCheck backs /health, /ready, /live, unchanged in shape from the
// earlier HealthCheck.
func (nc *NormalizeController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    time.Since(nc.startedAt).String(),
		Version:   "1.0.0",
		Services: map[string]string{
			"normalizer": "healthy",
			"cache":      "healthy",
		},
	})
}
