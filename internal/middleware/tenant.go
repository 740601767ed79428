package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// WorkplaceParam is the route parameter naming the tenant.
const WorkplaceParam = "workplaceID"

// TenantMiddleware resolves the TenantContext for routes under
// /workplaces/:workplaceID. The token must list the workplace; otherwise the
// request is rejected with 403. Must run after AuthMiddleware.
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		workplaceID := c.Param(WorkplaceParam)

		claims, ok := GetClaimsFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !claims.CanAccess(workplaceID) {
			logger.Warn("Workplace not granted by token", slog.String("workplace_id", workplaceID))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access to workplace denied"})
			return
		}

		tenant := domain.TenantContext{WorkplaceID: workplaceID, UserID: claims.Subject}
		ctx := context.WithValue(c.Request.Context(), tenantKey, tenant)
		ctx = WithLogger(ctx, logger.With(slog.String("workplace_id", workplaceID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
