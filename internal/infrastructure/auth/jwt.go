// Package auth verifies bearer tokens issued by the external identity
// provider. The platform consumes identity; it never issues, refreshes or
// revokes credentials.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"covena/internal/domain/authorization"
	"covena/internal/shared/biztime"
)

type TokenType string

const (
	TokenTypeAccess TokenType = "access"
)

// Claims is the user/role/bank triple the identity provider embeds in every
// access token.
type Claims struct {
	UserID    uint      `json:"user_id"`
	Role      string    `json:"role"`
	BankID    uint      `json:"bank_id"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret []byte
	issuer string
}

func NewJWTService(secret string, issuer string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Verify parses and validates an access token, returning its claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if s.issuer != "" {
		issuer, err := claims.GetIssuer()
		if err != nil || issuer != s.issuer {
			return nil, fmt.Errorf("unexpected token issuer")
		}
	}

	return claims, nil
}

// AuthUser converts verified claims into the domain identity, rejecting
// malformed triples.
func (s *JWTService) AuthUser(claims *Claims) (*authorization.AuthUser, error) {
	role, err := authorization.NewRole(claims.Role)
	if err != nil {
		return nil, err
	}
	return authorization.NewAuthUser(claims.UserID, role, claims.BankID)
}

// Generate mints an access token locally. Intended for development and the
// CLI; production tokens come from the identity provider.
func (s *JWTService) Generate(userID uint, role string, bankID uint, ttl time.Duration) (string, error) {
	now := biztime.NowUTC()

	claims := &Claims{
		UserID:    userID,
		Role:      role,
		BankID:    bankID,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
