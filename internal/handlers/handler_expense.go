package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expenses and their summary.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
	summaryService portssvc.SummarySvc
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade, ss portssvc.SummarySvc) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
		summaryService: ss,
	}
}

// RegisterExpenseRoutes registers expense and summary routes on an already authenticated group.
func RegisterExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade, summaryService portssvc.SummarySvc) {
	h := newExpenseHandler(expenseService, summaryService)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.createExpense)
		expenses.GET("/:expenseID", h.getExpense)
		expenses.PUT("/:expenseID", h.updateExpense)
	}
	rg.GET("/summary", h.getSummary)
}

// createExpense godoc
// @Summary Record an expense
// @Description Records an expense in any currency. The USD (and ARS) amounts are computed from the current exchange rate.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.ExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Tenant not available"
// @Failure 502 {object} map[string]string "Exchange rate unavailable"
// @Failure 500 {object} map[string]string "Failed to create expense"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, tenantID, ok := requireIdentity(c, logger)
	if !ok {
		return
	}

	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create expense",
		slog.String("currency_code", req.CurrencyCode),
		slog.String("amount", req.Amount.String()),
	)

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create expense")
		return
	}

	logger.Info("Expense created successfully", slog.String("expense_id", expense.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// updateExpense godoc
// @Summary Update an expense
// @Description Replaces an expense. The reference-currency amounts are recomputed with the current exchange rate.
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Param   expense body dto.ExpenseRequest true "Expense details"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 502 {object} map[string]string "Exchange rate unavailable"
// @Security BearerAuth
// @Router /expenses/{expenseID} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, tenantID, ok := requireIdentity(c, logger)
	if !ok {
		return
	}
	expenseID := c.Param("expenseID")
	logger = logger.With(slog.String("expense_id", expenseID))

	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), tenantID, expenseID, userID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update expense")
		return
	}

	logger.Info("Expense updated successfully")
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// getExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /expenses/{expenseID} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := requireIdentity(c, logger)
	if !ok {
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), tenantID, c.Param("expenseID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists the tenant's expenses, newest first, with optional filters and token based pagination
// @Tags expenses
// @Produce  json
// @Param   startDate query string false "Earliest expense date (YYYY-MM-DD)"
// @Param   endDate query string false "Latest expense date (YYYY-MM-DD)"
// @Param   categoryId query string false "Category ID"
// @Param   userId query string false "Creator user ID"
// @Param   currencyCode query string false "Original currency"
// @Param   limit query int false "Page size (default 100, max 500)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := requireIdentity(c, logger)
	if !ok {
		return
	}

	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListExpenses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	filters, err := params.ToFilters()
	if err != nil {
		respondWithError(c, logger, err, "Invalid query parameters")
		return
	}

	expenses, nextToken, err := h.expenseService.ListExpenses(c.Request.Context(), tenantID, filters)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list expenses")
		return
	}

	logger.Debug("Expenses listed successfully", slog.Int("count", len(expenses)))
	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses, nextToken))
}

// getSummary godoc
// @Summary Summarize expenses
// @Description Totals the normalized USD and ARS amounts per category and subcategory
// @Tags expenses
// @Produce  json
// @Param   startDate query string false "Earliest expense date (YYYY-MM-DD)"
// @Param   endDate query string false "Latest expense date (YYYY-MM-DD)"
// @Param   categoryId query string false "Category ID"
// @Param   userId query string false "Creator user ID"
// @Param   currencyCode query string false "Original currency"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /summary [get]
func (h *expenseHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := requireIdentity(c, logger)
	if !ok {
		return
	}

	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	filters, err := params.ToFilters()
	if err != nil {
		respondWithError(c, logger, err, "Invalid query parameters")
		return
	}

	summary, err := h.summaryService.Summarize(c.Request.Context(), tenantID, filters)
	if err != nil {
		respondWithError(c, logger, err, "Failed to summarize expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
