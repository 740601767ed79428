package middleware

import (
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware tracks successful API calls as analytics events named after
// the route, e.g. "api_v1_workplaces_:workplaceID_journal-entries".
func PosthogMiddleware(tracker portssvc.EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if workplaceID := c.Param(WorkplaceParam); workplaceID != "" {
			props["workplace_id"] = workplaceID
		}

		tracker.Enqueue(userID, eventName, props)
	}
}
