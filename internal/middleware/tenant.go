package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// TenantMiddleware resolves the caller's tenant and stores it in the request context.
// Users without a membership join the default tenant. Must run after AuthMiddleware.
func TenantMiddleware(tenantSvc portssvc.TenantSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		membership, err := tenantSvc.GetOrCreateMembership(c.Request.Context(), userID)
		if err != nil {
			logger.Error("Failed to resolve tenant", slog.String("error", err.Error()))
			status := apperrors.HTTPStatus(err)
			msg := "Failed to resolve tenant"
			if status == http.StatusForbidden {
				msg = apperrors.ErrTenantUnavailable.Error()
			}
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}

		ctx := withTenantID(c.Request.Context(), membership.TenantID)
		ctx = WithLogger(ctx, logger.With(slog.String("tenant_id", membership.TenantID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
