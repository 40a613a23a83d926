package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"skateshop-backend/internal/shared/middleware"
	"skateshop-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAssetRoutes(v1, c)
		setupDesignRoutes(v1, c)
	}

	return router
}

// ========================================
// ASSET ROUTES (catalog management)
// ========================================
func setupAssetRoutes(v1 *gin.RouterGroup, c *container.Container) {
	assets := v1.Group("/assets")
	{
		assets.GET("", c.AssetHandler.List)
		assets.POST("", c.AssetHandler.Create) // JSON hoặc multipart
		assets.GET("/:id", c.AssetHandler.GetByID)
		assets.PUT("/:id", c.AssetHandler.Update)
		assets.DELETE("/:id", c.AssetHandler.Delete)
	}
}

// ========================================
// DESIGN ROUTES (submissions + review)
// ========================================
func setupDesignRoutes(v1 *gin.RouterGroup, c *container.Container) {
	designs := v1.Group("/designs")
	{
		designs.GET("", c.DesignHandler.List)
		designs.POST("", c.DesignHandler.Create)
		designs.GET("/:id", c.DesignHandler.GetByID)
		designs.PUT("/:id", c.DesignHandler.Update)
		designs.DELETE("/:id", c.DesignHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check MinIO
		storageStatus := "ok"
		if appCtx.Storage == nil {
			storageStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Storage.HealthCheck(ctx); err != nil {
				storageStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
			"storage":  storageStatus,
		}

		c.JSON(200, health)
	}
}
