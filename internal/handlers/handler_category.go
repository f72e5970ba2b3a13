package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests for categories and subcategories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers routes related to categories and subcategories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.PUT("/:categoryID", h.renameCategory)
		categories.POST("/:categoryID/subcategories", h.createSubcategory)
	}

	subcategories := rg.Group("/subcategories")
	{
		subcategories.GET("", h.listSubcategories)
		subcategories.PUT("/:subcategoryID", h.renameSubcategory)
	}
}

// listCategories godoc
// @Summary List categories
// @Description Lists the categories of the caller's tenant ordered by name
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := requireIdentity(c, logger)
	if !ok {
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), tenantID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.NameRequest true "Category name"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Category already exists"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := requireIdentity(c, logger)
	if !ok {
		return
	}

	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), tenantID, req.Name)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create category")
		return
	}

	logger.Info("Category created successfully", slog.String("category_id", category.CategoryID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// renameCategory godoc
// @Summary Rename a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   categoryID path string true "Category ID"
// @Param   category body dto.NameRequest true "New name"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 409 {object} map[string]string "Category already exists"
// @Security BearerAuth
// @Router /categories/{categoryID} [put]
func (h *categoryHandler) renameCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := requireIdentity(c, logger)
	if !ok {
		return
	}

	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RenameCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.RenameCategory(c.Request.Context(), tenantID, c.Param("categoryID"), req.Name)
	if err != nil {
		respondWithError(c, logger, err, "Failed to rename category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// listSubcategories godoc
// @Summary List subcategories
// @Description Lists every subcategory of the caller's tenant ordered by name
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.SubcategoryResponse
// @Security BearerAuth
// @Router /subcategories [get]
func (h *categoryHandler) listSubcategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := requireIdentity(c, logger)
	if !ok {
		return
	}

	subcategories, err := h.categoryService.ListSubcategories(c.Request.Context(), tenantID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list subcategories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSubcategoryResponse(subcategories))
}

// createSubcategory godoc
// @Summary Create a subcategory
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   categoryID path string true "Parent category ID"
// @Param   subcategory body dto.NameRequest true "Subcategory name"
// @Success 201 {object} dto.SubcategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 409 {object} map[string]string "Subcategory already exists"
// @Security BearerAuth
// @Router /categories/{categoryID}/subcategories [post]
func (h *categoryHandler) createSubcategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := requireIdentity(c, logger)
	if !ok {
		return
	}

	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSubcategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	subcategory, err := h.categoryService.CreateSubcategory(c.Request.Context(), tenantID, c.Param("categoryID"), req.Name)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create subcategory")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSubcategoryResponse(subcategory))
}

// renameSubcategory godoc
// @Summary Rename a subcategory
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   subcategoryID path string true "Subcategory ID"
// @Param   subcategory body dto.NameRequest true "New name"
// @Success 200 {object} dto.SubcategoryResponse
// @Failure 404 {object} map[string]string "Subcategory not found"
// @Security BearerAuth
// @Router /subcategories/{subcategoryID} [put]
func (h *categoryHandler) renameSubcategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := requireIdentity(c, logger)
	if !ok {
		return
	}

	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	subcategory, err := h.categoryService.RenameSubcategory(c.Request.Context(), tenantID, c.Param("subcategoryID"), req.Name)
	if err != nil {
		respondWithError(c, logger, err, "Failed to rename subcategory")
		return
	}
	c.JSON(http.StatusOK, dto.ToSubcategoryResponse(subcategory))
}
