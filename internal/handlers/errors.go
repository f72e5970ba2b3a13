package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError writes {"error": ...} with the status mapped from err.
// Client errors carry the error text; server errors only carry fallbackMsg.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := apperrors.HTTPStatus(err)
	switch {
	case status >= http.StatusInternalServerError && status != http.StatusBadGateway:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallbackMsg})
	case status == http.StatusBadGateway:
		logger.Error("Exchange rate unavailable", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": apperrors.ErrRateUnavailable.Error()})
	default:
		logger.Warn(fallbackMsg, slog.String("error", err.Error()), slog.Int("status", status))
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// requireIdentity reads the identity set by the auth and tenant middlewares.
func requireIdentity(c *gin.Context, logger *slog.Logger) (userID, tenantID string, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	tenantID, ok = middleware.GetTenantIDFromContext(c)
	if !ok {
		logger.Error("Tenant ID not found in context")
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrTenantUnavailable.Error()})
		return "", "", false
	}
	return userID, tenantID, true
}
