package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"covena/internal/infrastructure/permission"
	"covena/internal/shared/logger"
	"covena/internal/shared/utils"
)

// PermissionMiddleware gates routes on the casbin mirror of the role matrix.
// Usecases re-check authorization with tenant context; this layer exists to
// reject obviously unauthorized requests before they reach the application.
type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := AuthUserFromContext(c)
		if user == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(user.Role.String(), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", user.ID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", user.ID, "role", user.Role.String(), "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
