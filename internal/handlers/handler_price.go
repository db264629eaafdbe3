package handlers

import (
	"net/http"

	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/agarrido2001/XaveMarket/internal/dto"
	"github.com/gin-gonic/gin"
)

type priceHandler struct {
	priceService portssvc.PriceSvcFacade
}

// registerPriceRoutes registers price routes under /collections.
func registerPriceRoutes(collections *gin.RouterGroup, priceService portssvc.PriceSvcFacade) {
	h := &priceHandler{priceService: priceService}

	collections.PUT("/:address/prices/default", h.setDefaultPrices)
	collections.PUT("/:address/prices/override", h.setOverridePrices)
	collections.POST("/:address/prices/override/clear", h.clearOverridePrices)
	collections.GET("/:address/tokens/:tokenID/prices", h.getAllPrices)
	collections.GET("/:address/tokens/:tokenID/prices/:currency", h.resolvePrice)
}

// setDefaultPrices godoc
// @Summary Set default prices
// @Description Overwrites the collection-wide price in each given currency (NFT_ADMIN)
// @Tags prices
// @Accept  json
// @Param   address path string true "Collection contract address"
// @Param   prices body dto.SetDefaultPricesRequest true "Parallel currency and amount arrays"
// @Success 204 "No Content"
// @Failure 400 {object} handlers.ErrorResponse "Empty batch, length mismatch, zero amount or unknown currency"
// @Security BearerAuth
// @Router /collections/{address}/prices/default [put]
func (h *priceHandler) setDefaultPrices(c *gin.Context) {
	collection, ok := addressParam(c, "address")
	if !ok {
		return
	}
	var req dto.SetDefaultPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	if err := h.priceService.SetDefaultPrices(c.Request.Context(), caller, collection, req.Currencies, req.Amounts); err != nil {
		respondError(c, err, "Set default prices")
		return
	}
	c.Status(http.StatusNoContent)
}

// setOverridePrices godoc
// @Summary Set per-token prices
// @Description Sets an override price in one currency for each token (NFT_ADMIN)
// @Tags prices
// @Accept  json
// @Param   address path string true "Collection contract address"
// @Param   prices body dto.SetOverridePricesRequest true "Currency, token ids and amounts"
// @Success 204 "No Content"
// @Failure 400 {object} handlers.ErrorResponse "Invalid batch"
// @Security BearerAuth
// @Router /collections/{address}/prices/override [put]
func (h *priceHandler) setOverridePrices(c *gin.Context) {
	collection, ok := addressParam(c, "address")
	if !ok {
		return
	}
	var req dto.SetOverridePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	err := h.priceService.SetOverridePrices(c.Request.Context(), caller, collection, req.Currency, req.TokenIDs, req.Amounts)
	if err != nil {
		respondError(c, err, "Set override prices")
		return
	}
	c.Status(http.StatusNoContent)
}

// clearOverridePrices godoc
// @Summary Clear per-token prices
// @Description Removes the override price in one currency; every token must have one (NFT_ADMIN)
// @Tags prices
// @Accept  json
// @Param   address path string true "Collection contract address"
// @Param   prices body dto.ClearOverridePricesRequest true "Currency and token ids"
// @Success 204 "No Content"
// @Failure 422 {object} handlers.ErrorResponse "A token has no override"
// @Security BearerAuth
// @Router /collections/{address}/prices/override/clear [post]
func (h *priceHandler) clearOverridePrices(c *gin.Context) {
	collection, ok := addressParam(c, "address")
	if !ok {
		return
	}
	var req dto.ClearOverridePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	if err := h.priceService.ClearOverridePrices(c.Request.Context(), caller, collection, req.Currency, req.TokenIDs); err != nil {
		respondError(c, err, "Clear override prices")
		return
	}
	c.Status(http.StatusNoContent)
}

// getAllPrices godoc
// @Summary Resolve a token's price in every currency
// @Description Returns parallel arrays over registered currencies; unpriced entries are "0"
// @Tags prices
// @Produce  json
// @Param   address path string true "Collection contract address"
// @Param   tokenID path int true "Token id"
// @Success 200 {object} dto.GetAllPricesResponse
// @Failure 404 {object} handlers.ErrorResponse "Collection not registered"
// @Security BearerAuth
// @Router /collections/{address}/tokens/{tokenID}/prices [get]
func (h *priceHandler) getAllPrices(c *gin.Context) {
	collection, ok := addressParam(c, "address")
	if !ok {
		return
	}
	token, ok := tokenParam(c, "tokenID")
	if !ok {
		return
	}
	prices, err := h.priceService.GetAllPrices(c.Request.Context(), collection, token)
	if err != nil {
		respondError(c, err, "Get prices")
		return
	}
	c.JSON(http.StatusOK, dto.ToGetAllPricesResponse(prices))
}

// resolvePrice godoc
// @Summary Resolve a token's price in one currency
// @Description Returns the override price, else the default price, else an unset price
// @Tags prices
// @Produce  json
// @Param   address path string true "Collection contract address"
// @Param   tokenID path int true "Token id"
// @Param   currency path string true "Currency contract address"
// @Success 200 {object} dto.PriceResponse
// @Security BearerAuth
// @Router /collections/{address}/tokens/{tokenID}/prices/{currency} [get]
func (h *priceHandler) resolvePrice(c *gin.Context) {
	collection, ok := addressParam(c, "address")
	if !ok {
		return
	}
	token, ok := tokenParam(c, "tokenID")
	if !ok {
		return
	}
	currency, ok := addressParam(c, "currency")
	if !ok {
		return
	}
	price, err := h.priceService.ResolvePrice(c.Request.Context(), collection, token, currency)
	if err != nil {
		respondError(c, err, "Resolve price")
		return
	}
	c.JSON(http.StatusOK, dto.PriceResponse{Currency: currency.String(), Amount: price.AmountOrZero(), Set: price.IsSet()})
}
