package handlers

import (
	"net/http"

	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/agarrido2001/XaveMarket/internal/dto"
	"github.com/gin-gonic/gin"
)

type listingHandler struct {
	listingService portssvc.ListingSvcFacade
}

// registerListingRoutes registers listing routes under /collections.
func registerListingRoutes(collections *gin.RouterGroup, listingService portssvc.ListingSvcFacade) {
	h := &listingHandler{listingService: listingService}

	collections.POST("/:address/listings", h.addToMarket)
	collections.POST("/:address/listings/remove", h.removeFromMarket)
	collections.GET("/:address/listings", h.listListings)
	collections.GET("/:address/tokens/:tokenID/listed", h.isListed)
}

// addToMarket godoc
// @Summary List tokens for sale
// @Description Adds tokens to the market; requires at least one default price (NFT_ADMIN)
// @Tags listings
// @Accept  json
// @Param   address path string true "Collection contract address"
// @Param   tokens body dto.ListingBatchRequest true "Token ids"
// @Success 204 "No Content"
// @Failure 422 {object} handlers.ErrorResponse "No default price"
// @Security BearerAuth
// @Router /collections/{address}/listings [post]
func (h *listingHandler) addToMarket(c *gin.Context) {
	h.changeListing(c, true)
}

// removeFromMarket godoc
// @Summary Delist tokens
// @Description Removes tokens from the market; every token must be listed (NFT_ADMIN)
// @Tags listings
// @Accept  json
// @Param   address path string true "Collection contract address"
// @Param   tokens body dto.ListingBatchRequest true "Token ids"
// @Success 204 "No Content"
// @Failure 422 {object} handlers.ErrorResponse "A token is not listed"
// @Security BearerAuth
// @Router /collections/{address}/listings/remove [post]
func (h *listingHandler) removeFromMarket(c *gin.Context) {
	h.changeListing(c, false)
}

func (h *listingHandler) changeListing(c *gin.Context, add bool) {
	collection, ok := addressParam(c, "address")
	if !ok {
		return
	}
	var req dto.ListingBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var err error
	if add {
		err = h.listingService.AddToMarket(c.Request.Context(), caller, collection, req.TokenIDs)
	} else {
		err = h.listingService.RemoveFromMarket(c.Request.Context(), caller, collection, req.TokenIDs)
	}
	if err != nil {
		respondError(c, err, "Change listings")
		return
	}
	c.Status(http.StatusNoContent)
}

// listListings godoc
// @Summary Page through listed tokens
// @Tags listings
// @Produce  json
// @Param   address path string true "Collection contract address"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListListingsResponse
// @Security BearerAuth
// @Router /collections/{address}/listings [get]
func (h *listingHandler) listListings(c *gin.Context) {
	collection, ok := addressParam(c, "address")
	if !ok {
		return
	}
	var params dto.ListListingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	tokens, next, err := h.listingService.ListListings(c.Request.Context(), collection, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err, "List listings")
		return
	}
	c.JSON(http.StatusOK, dto.ListListingsResponse{Collection: collection.String(), TokenIDs: tokens, NextToken: next})
}

// isListed godoc
// @Summary Check whether a token is listed
// @Tags listings
// @Produce  json
// @Param   address path string true "Collection contract address"
// @Param   tokenID path int true "Token id"
// @Success 200 {object} dto.IsListedResponse
// @Security BearerAuth
// @Router /collections/{address}/tokens/{tokenID}/listed [get]
func (h *listingHandler) isListed(c *gin.Context) {
	collection, ok := addressParam(c, "address")
	if !ok {
		return
	}
	token, ok := tokenParam(c, "tokenID")
	if !ok {
		return
	}
	listed, err := h.listingService.IsListed(c.Request.Context(), collection, token)
	if err != nil {
		respondError(c, err, "Check listing")
		return
	}
	c.JSON(http.StatusOK, dto.IsListedResponse{Collection: collection.String(), TokenID: token, Listed: listed})
}
