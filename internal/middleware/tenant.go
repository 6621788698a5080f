package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classora/classora-backend/internal/response"
)

// ContextKeyTenantID is the Gin context key for the active tenant.
const ContextKeyTenantID = "tenant_id"

// RequireTenant is the tenant scoper. It runs strictly after RequireAuth,
// derives the active tenant from the identity, and is the single choke point
// through which tenant scoping reaches every handler. Handlers must never
// take a tenant ID from a request body or query string as the authorization
// source.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		// Unreachable when RequireAuth ran first, but checked anyway.
		if !ok || identity.TenantID == "" {
			response.AbortFail(c, http.StatusUnauthorized, "Tenant not found in token")
			return
		}

		c.Set(ContextKeyTenantID, identity.TenantID)
		c.Next()
	}
}

// GetTenantID retrieves the active tenant set by RequireTenant. Empty means
// the scoper did not run.
func GetTenantID(c *gin.Context) string {
	return c.GetString(ContextKeyTenantID)
}
