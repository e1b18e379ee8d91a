package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"template-backend/internal/shared/middleware"
	"template-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupExampleRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// EXAMPLE ROUTES
// ========================================
func setupExampleRoutes(v1 *gin.RouterGroup, c *container.Container) {
	examples := v1.Group("/examples")
	examples.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		examples.GET("", c.ExampleHandler.List)
		examples.POST("", c.ExampleHandler.Create)
		examples.GET("/:id", c.ExampleHandler.GetByID)
		examples.PUT("/:id", c.ExampleHandler.Update)
		examples.DELETE("/:id", c.ExampleHandler.Delete)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(c.JWTManager),
		middleware.AdminMiddleware(),
	)
	{
		admin.GET("/examples", c.ExampleHandler.Search)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check storage
		storageStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.StorageHealth(ctx); err != nil {
			storageStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		health["services"] = gin.H{
			"database": storageStatus,
		}

		statusCode := http.StatusOK
		if storageStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
