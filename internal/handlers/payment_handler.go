package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hudumapay/settlement-service/internal/apperr"
	"github.com/hudumapay/settlement-service/internal/middlewares"
	"github.com/hudumapay/settlement-service/internal/models/dto"
)

type SettlementService interface {
	Initiate(ctx context.Context, payerID string, req *dto.InitiatePayment) (*dto.PaymentHandle, error)
	InitiateTopup(ctx context.Context, payerID string, req *dto.WalletTopup) (*dto.PaymentHandle, error)
	Status(ctx context.Context, callerID, paymentID string) (*dto.PaymentStatus, error)
}

type PaymentHandler struct {
	Service SettlementService
}

func NewPaymentHandler(s SettlementService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// POST /payments
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var req dto.InitiatePayment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	handle, err := h.Service.Initiate(c.Request.Context(), middlewares.CallerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, handle)
}

// GET /payments/:id/status
func (h *PaymentHandler) PaymentStatus(c *gin.Context) {
	status, err := h.Service.Status(c.Request.Context(), middlewares.CallerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// respondError maps the error taxonomy onto HTTP. The retryable flag tells
// clients whether "try again" is worth showing.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrBookingNotPayable), errors.Is(err, apperr.ErrPaymentInProgress):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, apperr.ErrGatewayRejected):
		status = http.StatusBadGateway
	case errors.Is(err, apperr.ErrGatewayUnavailable):
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"error":     err.Error(),
		"retryable": apperr.Retryable(err),
	})
}
