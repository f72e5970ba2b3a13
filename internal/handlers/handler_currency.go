package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies and their rates.
type currencyHandler struct {
	currencyService portssvc.CurrencyReaderSvc
	rateResolver    portssvc.RateResolverSvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencyReaderSvc, rr portssvc.RateResolverSvc) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
		rateResolver:    rr,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencyReaderSvc, rateResolver portssvc.RateResolverSvc) {
	h := newCurrencyHandler(currencyService, rateResolver)

	rg.GET("/currencies", h.listCurrencies)
	rg.GET("/fx-rates/:currency", h.getFxRate)
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Retrieves the currencies users can record expenses in
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies := h.currencyService.ListCurrencies(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getFxRate godoc
// @Summary Resolve the rates of a currency
// @Description Returns the rate of one unit of the currency into every reference currency, from cache or the provider
// @Tags currencies
// @Produce  json
// @Param   currency path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.FxRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 502 {object} map[string]string "Exchange rate unavailable"
// @Security BearerAuth
// @Router /fx-rates/{currency} [get]
func (h *currencyHandler) getFxRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code, err := domain.ParseCurrencyCode(c.Param("currency"))
	if err != nil {
		respondWithError(c, logger, err, "Invalid currency code")
		return
	}
	currency := string(code)
	logger = logger.With(slog.String("currency_code", currency))

	rates, err := h.rateResolver.Resolve(c.Request.Context(), currency)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve exchange rate")
		return
	}

	logger.Debug("Exchange rate resolved", slog.Int("references", len(rates)))
	c.JSON(http.StatusOK, dto.ToFxRateResponse(currency, rates))
}
