package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = contextKey("userID")
	tenantIDKey = contextKey("tenantID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetTenantIDFromContext retrieves the tenant resolved for the caller.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	tenantID, ok := c.Request.Context().Value(tenantIDKey).(string)
	return tenantID, ok && tenantID != ""
}

// withUserID is also used by tests to fake an authenticated request.
func withUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func withTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// WithIdentity stores an already-resolved user and tenant. Handler tests use it to skip auth.
func WithIdentity(ctx context.Context, userID, tenantID string) context.Context {
	return withTenantID(withUserID(ctx, userID), tenantID)
}
