// Package middleware contains the HTTP middleware chain for the Echo server.
package middleware

import (
	"strings"

	deliverycontext "lens/internal/delivery/context"
	"lens/internal/delivery/http/response"
	"lens/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware is the access gate in front of every protected route. It
// verifies the bearer access token cryptographically; session existence is
// deliberately not re-checked here, the short access TTL bounds staleness.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and exposes the
// authenticated identity to downstream handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "ACCESS_TOKEN_INVALID", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "ACCESS_TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ParseAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "ACCESS_TOKEN_INVALID", "Invalid or expired access token")
		}

		// Set identity on the context for handlers to use
		c.Set(deliverycontext.KeyUserID, claims.UserID)
		c.Set(deliverycontext.KeyUserEmail, claims.Email)

		return next(c)
	}
}
