package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type paymentMethodHandler struct {
	paymentMethodService portssvc.PaymentMethodSvcFacade
}

func registerPaymentMethodRoutes(rg *gin.RouterGroup, paymentMethodService portssvc.PaymentMethodSvcFacade) {
	h := &paymentMethodHandler{paymentMethodService: paymentMethodService}

	methods := rg.Group("/payment-methods")
	{
		methods.GET("", h.listPaymentMethods)
		methods.POST("", h.createPaymentMethod)
		methods.PUT("/:paymentMethodID", h.renamePaymentMethod)
	}
}

// listPaymentMethods godoc
// @Summary List active payment methods
// @Tags payment methods
// @Produce  json
// @Success 200 {array} dto.PaymentMethodResponse
// @Security BearerAuth
// @Router /payment-methods [get]
func (h *paymentMethodHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := requireIdentity(c, logger)
	if !ok {
		return
	}

	methods, err := h.paymentMethodService.ListPaymentMethods(c.Request.Context(), tenantID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list payment methods")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentMethodResponse(methods))
}

// createPaymentMethod godoc
// @Summary Create a payment method
// @Tags payment methods
// @Accept  json
// @Produce  json
// @Param   paymentMethod body dto.NameRequest true "Payment method name"
// @Success 201 {object} dto.PaymentMethodResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Payment method already exists"
// @Security BearerAuth
// @Router /payment-methods [post]
func (h *paymentMethodHandler) createPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, tenantID, ok := requireIdentity(c, logger)
	if !ok {
		return
	}

	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePaymentMethod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	method, err := h.paymentMethodService.CreatePaymentMethod(c.Request.Context(), tenantID, req.Name)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create payment method")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(method))
}

// renamePaymentMethod godoc
// @Summary Rename a payment method
// @Tags payment methods
// @Accept  json
// @Produce  json
// @Param   paymentMethodID path string true "Payment method ID"
// @Param   paymentMethod body dto.NameRequest true "New name"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 404 {object} map[string]string "Payment method not found"
// @Security BearerAuth
// @Router /payment-methods/{paymentMethodID} [put]
func (h *paymentMethodHandler) renamePaymentMethod(c *gin.Context) {
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

	method, err := h.paymentMethodService.RenamePaymentMethod(c.Request.Context(), tenantID, c.Param("paymentMethodID"), req.Name)
	if err != nil {
		respondWithError(c, logger, err, "Failed to rename payment method")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}
