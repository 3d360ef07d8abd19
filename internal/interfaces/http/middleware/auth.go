package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"covena/internal/domain/authorization"
	"covena/internal/infrastructure/auth"
	"covena/internal/shared/constants"
	"covena/internal/shared/logger"
	"covena/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and installs the authenticated
// user/role/bank triple into the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		user, err := m.jwtService.AuthUser(claims)
		if err != nil {
			m.logger.Warnw("token carries malformed identity", "error", err, "user_id", claims.UserID)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid identity claims")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAuthUser, user)
		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUserRole, user.Role.String())
		c.Set(constants.ContextKeyBankID, user.BankID)

		c.Next()
	}
}

// AuthUserFromContext returns the authenticated user installed by
// RequireAuth, or nil when the request is unauthenticated.
func AuthUserFromContext(c *gin.Context) *authorization.AuthUser {
	v, exists := c.Get(constants.ContextKeyAuthUser)
	if !exists {
		return nil
	}
	user, ok := v.(*authorization.AuthUser)
	if !ok {
		return nil
	}
	return user
}
