package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cjktextnorm/textnorm/app/controllers"
)

// SetupAPIRoutes wires spec.md §6's HTTP surface, adapted from the
// earlier SetupAPIRoutes (same /v1 group + admin subgroup shape).
func SetupAPIRoutes(router *gin.Engine, normalizeController *controllers.NormalizeController, adminController *controllers.AdminController) {
	v1 := router.Group("/v1")
	{
		v1.POST("/normalize", normalizeController.Normalize)
		v1.POST("/normalize/batch", normalizeController.BatchNormalize)

		admin := v1.Group("/admin")
		{
			admin.POST("/cache/invalidate", adminController.InvalidateCache)
			admin.GET("/stats", adminController.GetStats)
		}
	}
}

// SetupHealthRoutes mirrors SetupHealthRoutes.
func SetupHealthRoutes(router *gin.Engine, normalizeController *controllers.NormalizeController) {
	router.GET("/health", normalizeController.HealthCheck)
	router.GET("/ready", normalizeController.HealthCheck)
	router.GET("/live", normalizeController.HealthCheck)
}

// SetupAllRoutes mirrors SetupAllRoutes composition.
func SetupAllRoutes(router *gin.Engine, normalizeController *controllers.NormalizeController, adminController *controllers.AdminController) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	SetupHealthRoutes(router, normalizeController)
	SetupAPIRoutes(router, normalizeController, adminController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}
