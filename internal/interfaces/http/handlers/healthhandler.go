package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"covena/internal/shared/version"
)

// HealthHandler serves the liveness/readiness probe.
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	dbStatus := "up"

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
		dbStatus = "down"
	}

	c.JSON(code, gin.H{
		"status":   status,
		"version":  version.Version,
		"database": dbStatus,
	})
}
