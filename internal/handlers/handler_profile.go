package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileReaderSvc) {
	rg.GET("/profiles", func(c *gin.Context) { listProfiles(c, profileService) })
}

// listProfiles godoc
// @Summary List user profiles
// @Description Lists the display names used to label expense creators
// @Tags profiles
// @Produce  json
// @Success 200 {array} dto.ProfileResponse
// @Security BearerAuth
// @Router /profiles [get]
func listProfiles(c *gin.Context, profileService portssvc.ProfileReaderSvc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profiles, err := profileService.ListProfiles(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list profiles")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProfileResponse(profiles))
}
