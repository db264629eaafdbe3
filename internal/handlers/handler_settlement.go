package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/agarrido2001/XaveMarket/internal/dto"
	"github.com/agarrido2001/XaveMarket/internal/middleware"
	"github.com/gin-gonic/gin"
)

type settlementHandler struct {
	settlementService portssvc.SettlementSvcFacade
}

// registerSettlementRoutes registers purchase, withdrawal and balance routes.
func registerSettlementRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade) {
	h := &settlementHandler{settlementService: settlementService}

	rg.POST("/purchases", h.buyToken)
	rg.POST("/withdrawals", h.withdraw)
	rg.GET("/balances", h.getBalances)
}

// buyToken godoc
// @Summary Buy listed tokens
// @Description Pays the resolved price of every token (and any purchase keys) from the caller and delivers the tokens. The whole batch settles or nothing does.
// @Tags settlement
// @Accept  json
// @Produce  json
// @Param   purchase body dto.BuyTokenRequest true "Collection, token ids and currency"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid batch or unknown currency"
// @Failure 404 {object} handlers.ErrorResponse "Collection not registered"
// @Failure 409 {object} handlers.ErrorResponse "Reentrant call"
// @Failure 422 {object} handlers.ErrorResponse "Token not listed, no price or purchase key required"
// @Failure 502 {object} handlers.ErrorResponse "Asset ledger rejected a transfer"
// @Security BearerAuth
// @Router /purchases [post]
func (h *settlementHandler) buyToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BuyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	buyer, ok := callerOrAbort(c)
	if !ok {
		return
	}

	logger.Info("Received purchase request",
		slog.String("collection", req.Collection.String()),
		slog.String("currency", req.Currency.String()),
		slog.Int("tokens", len(req.TokenIDs)))

	purchase, err := h.settlementService.BuyToken(c.Request.Context(), buyer, req.Collection, req.TokenIDs, req.Currency)
	if err != nil {
		respondError(c, err, "Buy token")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// withdraw godoc
// @Summary Withdraw the market's holdings
// @Description Transfers every non-zero currency and semi-fungible balance to the caller (WITHDRAW)
// @Tags settlement
// @Produce  json
// @Success 200 {object} dto.WithdrawalResponse
// @Failure 403 {object} handlers.ErrorResponse "Caller lacks WITHDRAW"
// @Failure 422 {object} handlers.ErrorResponse "No balance available"
// @Failure 502 {object} handlers.ErrorResponse "Asset ledger rejected a transfer"
// @Security BearerAuth
// @Router /withdrawals [post]
func (h *settlementHandler) withdraw(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	withdrawal, err := h.settlementService.Withdraw(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, "Withdraw")
		return
	}
	c.JSON(http.StatusOK, dto.ToWithdrawalResponse(withdrawal))
}

// getBalances godoc
// @Summary Get the market's holdings
// @Tags settlement
// @Produce  json
// @Success 200 {object} dto.BalancesResponse
// @Security BearerAuth
// @Router /balances [get]
func (h *settlementHandler) getBalances(c *gin.Context) {
	balances, err := h.settlementService.GetBalances(c.Request.Context())
	if err != nil {
		respondError(c, err, "Get balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalancesResponse(balances))
}
