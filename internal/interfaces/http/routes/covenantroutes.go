package routes

import (
	"github.com/gin-gonic/gin"

	"covena/internal/interfaces/http/handlers"
	"covena/internal/interfaces/http/middleware"
)

// CovenantRouteConfig holds dependencies for covenant routes.
type CovenantRouteConfig struct {
	CovenantHandler      *handlers.CovenantHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCovenantRoutes configures covenant routes.
func SetupCovenantRoutes(engine *gin.Engine, cfg *CovenantRouteConfig) {
	covenants := engine.Group("/covenants")
	covenants.Use(cfg.AuthMiddleware.RequireAuth())
	{
		covenants.GET("", cfg.PermissionMiddleware.RequirePermission("covenant", "read"), cfg.CovenantHandler.List)
		covenants.GET("/:id", cfg.PermissionMiddleware.RequirePermission("covenant", "read"), cfg.CovenantHandler.Get)
		covenants.POST("", cfg.PermissionMiddleware.RequirePermission("covenant", "create"), cfg.CovenantHandler.Create)
		covenants.PUT("/:id", cfg.PermissionMiddleware.RequirePermission("covenant", "update"), cfg.CovenantHandler.Update)

		// Metric ingestion endpoint, typically called by the data pipeline.
		covenants.POST("/:id/recompute", cfg.PermissionMiddleware.RequirePermission("covenant", "update"), cfg.CovenantHandler.Recompute)
	}
}
