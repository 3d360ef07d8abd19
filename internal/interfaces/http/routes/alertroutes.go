package routes

import (
	"github.com/gin-gonic/gin"

	"covena/internal/interfaces/http/handlers"
	"covena/internal/interfaces/http/middleware"
)

// AlertRouteConfig holds dependencies for alert routes.
type AlertRouteConfig struct {
	AlertHandler         *handlers.AlertHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAlertRoutes configures alert lifecycle routes.
func SetupAlertRoutes(engine *gin.Engine, cfg *AlertRouteConfig) {
	alerts := engine.Group("/alerts")
	alerts.Use(cfg.AuthMiddleware.RequireAuth())
	{
		alerts.GET("", cfg.PermissionMiddleware.RequirePermission("alert", "read"), cfg.AlertHandler.List)
		alerts.GET("/:id", cfg.PermissionMiddleware.RequirePermission("alert", "read"), cfg.AlertHandler.Get)
		alerts.POST("/:id/acknowledge", cfg.PermissionMiddleware.RequirePermission("alert", "acknowledge"), cfg.AlertHandler.Acknowledge)
		alerts.POST("/:id/resolve", cfg.PermissionMiddleware.RequirePermission("alert", "resolve"), cfg.AlertHandler.Resolve)
		alerts.POST("/:id/escalate", cfg.PermissionMiddleware.RequirePermission("alert", "escalate"), cfg.AlertHandler.Escalate)
	}
}
