package handlers

import (
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerTenantRoutes exposes the membership resolved by TenantMiddleware.
func registerTenantRoutes(rg *gin.RouterGroup) {
	rg.GET("/tenant", getTenant)
}

// getTenant godoc
// @Summary Get the caller's tenant
// @Description Returns the tenant membership resolved for the authenticated user, joining the default tenant on first use
// @Tags tenant
// @Produce  json
// @Success 200 {object} dto.TenantResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Tenant not available"
// @Security BearerAuth
// @Router /tenant [get]
func getTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, tenantID, ok := requireIdentity(c, logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.TenantResponse{TenantID: tenantID, UserID: userID})
}
