package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/classora/classora-backend/internal/response"
	"github.com/classora/classora-backend/internal/service"
)

const (
	// ContextKeyIdentity is the Gin context key for the authenticated identity.
	ContextKeyIdentity = "identity"

	// TokenCookieName is the fallback cookie the login flow sets.
	TokenCookieName = "token"
)

// RequireAuth is the authentication gate. It locates a token in the
// Authorization header first, then the token cookie, verifies it, and stores
// the resolved identity as an immutable value for downstream stages. Failure
// is terminal and the verification reason is never leaked.
func RequireAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, "Missing token")
			return
		}

		identity, err := authService.VerifyToken(tokenStr)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(ContextKeyIdentity, identity)
		c.Next()
	}
}

// GetIdentity retrieves the authenticated identity from the Gin context.
func GetIdentity(c *gin.Context) (service.Identity, bool) {
	val, exists := c.Get(ContextKeyIdentity)
	if !exists {
		return service.Identity{}, false
	}
	identity, ok := val.(service.Identity)
	return identity, ok
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	if cookie, err := c.Cookie(TokenCookieName); err == nil {
		return cookie
	}
	return ""
}
