package routes

import (
	"github.com/gin-gonic/gin"

	"covena/internal/interfaces/http/handlers"
	"covena/internal/interfaces/http/middleware"
)

// ReportRouteConfig holds dependencies for report routes.
type ReportRouteConfig struct {
	ReportHandler        *handlers.ReportHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupReportRoutes configures report routes.
func SetupReportRoutes(engine *gin.Engine, cfg *ReportRouteConfig) {
	reports := engine.Group("/reports")
	reports.Use(cfg.AuthMiddleware.RequireAuth())
	{
		reports.GET("/portfolio", cfg.PermissionMiddleware.RequirePermission("report", "create"), cfg.ReportHandler.Portfolio)
	}
}
