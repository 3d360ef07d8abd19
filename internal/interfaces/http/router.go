package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"covena/internal/interfaces/http/handlers"
	"covena/internal/interfaces/http/middleware"
	"covena/internal/interfaces/http/routes"
	"covena/internal/shared/config"
	"covena/internal/shared/constants"
	"covena/internal/shared/logger"
)

// RouterDeps carries the constructed handlers and middleware the router
// assembles into the HTTP surface.
type RouterDeps struct {
	DB *gorm.DB

	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware

	CovenantHandler *handlers.CovenantHandler
	AlertHandler    *handlers.AlertHandler
	ReportHandler   *handlers.ReportHandler
	ContractHandler *handlers.ContractHandler
}

// NewRouter builds the gin engine with the full middleware chain and all
// resource routes registered.
func NewRouter(cfg *config.ServerConfig, deps *RouterDeps, log logger.Interface) *gin.Engine {
	if cfg.Mode == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(cfg.AllowedOrigins))

	healthHandler := handlers.NewHealthHandler(deps.DB)
	engine.GET("/health", healthHandler.Check)

	routes.SetupContractRoutes(engine, &routes.ContractRouteConfig{
		ContractHandler:      deps.ContractHandler,
		AuthMiddleware:       deps.AuthMiddleware,
		PermissionMiddleware: deps.PermissionMiddleware,
	})

	routes.SetupCovenantRoutes(engine, &routes.CovenantRouteConfig{
		CovenantHandler:      deps.CovenantHandler,
		AuthMiddleware:       deps.AuthMiddleware,
		PermissionMiddleware: deps.PermissionMiddleware,
	})

	routes.SetupAlertRoutes(engine, &routes.AlertRouteConfig{
		AlertHandler:         deps.AlertHandler,
		AuthMiddleware:       deps.AuthMiddleware,
		PermissionMiddleware: deps.PermissionMiddleware,
	})

	routes.SetupReportRoutes(engine, &routes.ReportRouteConfig{
		ReportHandler:        deps.ReportHandler,
		AuthMiddleware:       deps.AuthMiddleware,
		PermissionMiddleware: deps.PermissionMiddleware,
	})

	return engine
}
