package middleware

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey = contextKey("userID")
	claimsKey = contextKey("claims")
	tenantKey = contextKey("tenant")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetClaimsFromContext retrieves the verified token claims.
func GetClaimsFromContext(c *gin.Context) (*utils.LedgerClaims, bool) {
	claims, ok := c.Request.Context().Value(claimsKey).(*utils.LedgerClaims)
	return claims, ok && claims != nil
}

// GetTenantFromContext retrieves the tenant resolved by TenantMiddleware.
func GetTenantFromContext(c *gin.Context) (domain.TenantContext, bool) {
	return TenantFromCtx(c.Request.Context())
}

// TenantFromCtx retrieves the tenant from a standard context.
func TenantFromCtx(ctx context.Context) (domain.TenantContext, bool) {
	tenant, ok := ctx.Value(tenantKey).(domain.TenantContext)
	return tenant, ok && tenant.IsComplete()
}
