package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covena/internal/domain/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", "idp.test")

	token, err := svc.Generate(42, "analyst", 7, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "analyst", claims.Role)
	assert.Equal(t, uint(7), claims.BankID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestJWTService_Verify_Rejections(t *testing.T) {
	svc := NewJWTService("test-secret", "idp.test")

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("other-secret", "idp.test")
		token, err := other.Generate(1, "viewer", 1, time.Hour)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := NewJWTService("test-secret", "someone-else")
		token, err := other.Generate(1, "viewer", 1, time.Hour)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.Generate(1, "viewer", 1, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		assert.Error(t, err)
	})
}

func TestJWTService_AuthUser(t *testing.T) {
	svc := NewJWTService("test-secret", "idp.test")

	t.Run("valid claims", func(t *testing.T) {
		token, err := svc.Generate(42, "admin", 7, time.Hour)
		require.NoError(t, err)
		claims, err := svc.Verify(token)
		require.NoError(t, err)

		user, err := svc.AuthUser(claims)
		require.NoError(t, err)
		assert.Equal(t, uint(42), user.ID)
		assert.Equal(t, authorization.RoleAdmin, user.Role)
		assert.Equal(t, uint(7), user.BankID)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.AuthUser(&Claims{UserID: 1, Role: "superuser", BankID: 1})
		assert.Error(t, err)
	})

	t.Run("missing bank", func(t *testing.T) {
		_, err := svc.AuthUser(&Claims{UserID: 1, Role: "viewer", BankID: 0})
		assert.Error(t, err)
	})
}
