package routes

import (
	"github.com/gin-gonic/gin"

	"covena/internal/interfaces/http/handlers"
	"covena/internal/interfaces/http/middleware"
)

// ContractRouteConfig holds dependencies for contract routes.
type ContractRouteConfig struct {
	ContractHandler      *handlers.ContractHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupContractRoutes configures the read-only contract routes.
func SetupContractRoutes(engine *gin.Engine, cfg *ContractRouteConfig) {
	contracts := engine.Group("/contracts")
	contracts.Use(cfg.AuthMiddleware.RequireAuth())
	{
		contracts.GET("", cfg.PermissionMiddleware.RequirePermission("contract", "read"), cfg.ContractHandler.List)
		contracts.GET("/:id", cfg.PermissionMiddleware.RequirePermission("contract", "read"), cfg.ContractHandler.Get)
	}
}
