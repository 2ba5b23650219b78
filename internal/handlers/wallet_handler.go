package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hudumapay/settlement-service/internal/middlewares"
	"github.com/hudumapay/settlement-service/internal/models"
	"github.com/hudumapay/settlement-service/internal/models/dto"
)

type WalletAPI interface {
	Summary(ctx context.Context, ownerID string) (*dto.WalletSummary, error)
	History(ctx context.Context, ownerID string) ([]models.WalletTransaction, error)
	Transfer(ctx context.Context, fromOwnerID string, req *dto.WalletTransfer) error
}

type WalletHandler struct {
	Wallet     WalletAPI
	Settlement SettlementService
}

func NewWalletHandler(wallet WalletAPI, settlement SettlementService) *WalletHandler {
	return &WalletHandler{Wallet: wallet, Settlement: settlement}
}

// GET /wallet
func (h *WalletHandler) GetWallet(c *gin.Context) {
	summary, err := h.Wallet.Summary(c.Request.Context(), middlewares.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GET /wallet/transactions
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	history, err := h.Wallet.History(c.Request.Context(), middlewares.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": history})
}

// POST /wallet/topup
func (h *WalletHandler) Topup(c *gin.Context) {
	var req dto.WalletTopup
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	handle, err := h.Settlement.InitiateTopup(c.Request.Context(), middlewares.CallerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, handle)
}

// POST /wallet/transfer
func (h *WalletHandler) Transfer(c *gin.Context) {
	var req dto.WalletTransfer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Wallet.Transfer(c.Request.Context(), middlewares.CallerID(c), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "transfer completed"})
}
