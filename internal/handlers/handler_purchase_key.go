package handlers

import (
	"net/http"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/agarrido2001/XaveMarket/internal/dto"
	"github.com/gin-gonic/gin"
)

type purchaseKeyHandler struct {
	purchaseKeyService portssvc.PurchaseKeySvcFacade
}

// registerPurchaseKeyRoutes registers purchase key routes under /collections.
func registerPurchaseKeyRoutes(collections *gin.RouterGroup, purchaseKeyService portssvc.PurchaseKeySvcFacade) {
	h := &purchaseKeyHandler{purchaseKeyService: purchaseKeyService}

	collections.PUT("/:address/purchase-keys", h.setPurchaseKey)
	collections.POST("/:address/purchase-keys/clear", h.clearPurchaseKey)
	collections.GET("/:address/tokens/:tokenID/purchase-key", h.getPurchaseKey)
}

// setPurchaseKey godoc
// @Summary Gate tokens behind a purchase key
// @Description Buyers of these tokens must also pay amount of (asset, subId) (NFT_ADMIN)
// @Tags purchase-keys
// @Accept  json
// @Param   address path string true "Collection contract address"
// @Param   key body dto.SetPurchaseKeyRequest true "Token ids and key"
// @Success 204 "No Content"
// @Failure 400 {object} handlers.ErrorResponse "Invalid asset or zero amount"
// @Security BearerAuth
// @Router /collections/{address}/purchase-keys [put]
func (h *purchaseKeyHandler) setPurchaseKey(c *gin.Context) {
	collection, ok := addressParam(c, "address")
	if !ok {
		return
	}
	var req dto.SetPurchaseKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	key := domain.PurchaseKey{Asset: req.Asset, SubID: req.SubID, Amount: req.Amount}
	if err := h.purchaseKeyService.SetPurchaseKey(c.Request.Context(), caller, collection, req.TokenIDs, key); err != nil {
		respondError(c, err, "Set purchase key")
		return
	}
	c.Status(http.StatusNoContent)
}

// clearPurchaseKey godoc
// @Summary Remove purchase keys
// @Description Every token must currently have a key (NFT_ADMIN)
// @Tags purchase-keys
// @Accept  json
// @Param   address path string true "Collection contract address"
// @Param   tokens body dto.ClearPurchaseKeyRequest true "Token ids"
// @Success 204 "No Content"
// @Failure 422 {object} handlers.ErrorResponse "A token has no purchase key"
// @Security BearerAuth
// @Router /collections/{address}/purchase-keys/clear [post]
func (h *purchaseKeyHandler) clearPurchaseKey(c *gin.Context) {
	collection, ok := addressParam(c, "address")
	if !ok {
		return
	}
	var req dto.ClearPurchaseKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	if err := h.purchaseKeyService.ClearPurchaseKey(c.Request.Context(), caller, collection, req.TokenIDs); err != nil {
		respondError(c, err, "Clear purchase key")
		return
	}
	c.Status(http.StatusNoContent)
}

// getPurchaseKey godoc
// @Summary Get a token's purchase key
// @Description An ungated token returns the zero asset and amount "0"
// @Tags purchase-keys
// @Produce  json
// @Param   address path string true "Collection contract address"
// @Param   tokenID path int true "Token id"
// @Success 200 {object} dto.PurchaseKeyResponse
// @Security BearerAuth
// @Router /collections/{address}/tokens/{tokenID}/purchase-key [get]
func (h *purchaseKeyHandler) getPurchaseKey(c *gin.Context) {
	collection, ok := addressParam(c, "address")
	if !ok {
		return
	}
	token, ok := tokenParam(c, "tokenID")
	if !ok {
		return
	}
	key, err := h.purchaseKeyService.GetPurchaseKey(c.Request.Context(), collection, token)
	if err != nil {
		respondError(c, err, "Get purchase key")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseKeyResponse(key))
}
