package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/agarrido2001/XaveMarket/internal/dto"
	"github.com/agarrido2001/XaveMarket/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to accepted currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.addCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.DELETE("/:address", h.removeCurrency)
	}
}

// addCurrency godoc
// @Summary Register an accepted currency
// @Description Registers a fungible asset contract as a payment currency (NFT_ADMIN)
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.AddCurrencyRequest true "Currency contract"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid currency"
// @Failure 403 {object} handlers.ErrorResponse "Caller lacks NFT_ADMIN"
// @Failure 409 {object} handlers.ErrorResponse "Currency already registered"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) addCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	logger.Info("Received request to add currency", slog.String("currency", req.Address.String()))
	currency, err := h.currencyService.AddCurrency(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err, "Add currency")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List accepted currencies
// @Description Lists registered currencies in registration order
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} handlers.ErrorResponse "Failed to list currencies"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, err, "List currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// removeCurrency godoc
// @Summary Unregister a currency
// @Description Removes a currency; refused while the market still holds any of it (NFT_ADMIN)
// @Tags currencies
// @Param   address path string true "Currency contract address"
// @Success 204 "No Content"
// @Failure 404 {object} handlers.ErrorResponse "Currency not registered"
// @Failure 422 {object} handlers.ErrorResponse "Balance outstanding"
// @Security BearerAuth
// @Router /currencies/{address} [delete]
func (h *currencyHandler) removeCurrency(c *gin.Context) {
	currency, ok := addressParam(c, "address")
	if !ok {
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	if err := h.currencyService.RemoveCurrency(c.Request.Context(), caller, currency); err != nil {
		respondError(c, err, "Remove currency")
		return
	}
	c.Status(http.StatusNoContent)
}
