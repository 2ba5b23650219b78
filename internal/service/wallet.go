package service

import (
	"context"
	"fmt"

	"github.com/hudumapay/settlement-service/internal/apperr"
	"github.com/hudumapay/settlement-service/internal/models"
	"github.com/hudumapay/settlement-service/internal/models/dto"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// WalletStore is the persistence contract for the ledger. Implemented by
// posgrest.WalletStore.
type WalletStore interface {
	AccountFor(ctx context.Context, ownerID string) (*models.Wallet, error)
	Apply(ctx context.Context, ownerID string, txType models.TransactionType, amount decimal.Decimal, reason models.TransactionReason, idempotencyKey *string) (*models.WalletTransaction, error)
	Transfer(ctx context.Context, fromOwnerID, toOwnerID string, amount decimal.Decimal, idempotencyKey string) error
	Transactions(ctx context.Context, walletID string) ([]models.WalletTransaction, error)
	ReplayBalance(ctx context.Context, walletID string) (decimal.Decimal, error)
	RepairBalance(ctx context.Context, walletID string) (decimal.Decimal, bool, error)
}

// WalletService fronts the append-only ledger: summaries, history, transfers
// and credits. Balance mutations happen in the store's transactions; this
// layer validates and logs.
type WalletService struct {
	Store WalletStore
}

func NewWalletService(store WalletStore) *WalletService {
	return &WalletService{Store: store}
}

func (s *WalletService) Summary(ctx context.Context, ownerID string) (*dto.WalletSummary, error) {
	wallet, err := s.Store.AccountFor(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &dto.WalletSummary{
		WalletID: wallet.ID,
		OwnerID:  wallet.OwnerID,
		Balance:  wallet.Balance.StringFixed(2),
	}, nil
}

func (s *WalletService) History(ctx context.Context, ownerID string) ([]models.WalletTransaction, error) {
	wallet, err := s.Store.AccountFor(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.Store.Transactions(ctx, wallet.ID)
}

// ApplyTransaction is the single entry point for ad-hoc ledger mutations
// (rewards, refunds, bill payments). Settlement credits go through the
// settlement store's own transaction instead.
func (s *WalletService) ApplyTransaction(ctx context.Context, ownerID string, txType models.TransactionType, amount decimal.Decimal, reason models.TransactionReason, idempotencyKey string) (*models.WalletTransaction, error) {
	if !txType.IsValid() {
		return nil, fmt.Errorf("%w: invalid transaction type %q", apperr.ErrValidation, txType)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperr.ErrValidation)
	}

	var key *string
	if idempotencyKey != "" {
		key = &idempotencyKey
	}

	entry, err := s.Store.Apply(ctx, ownerID, txType, amount, reason, key)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"wallet_id":      entry.WalletID,
		"transaction_id": entry.ID,
		"type":           entry.Type,
		"reason":         entry.Reason,
	}).Info("wallet transaction applied")
	return entry, nil
}

// Transfer moves funds between two users atomically.
func (s *WalletService) Transfer(ctx context.Context, fromOwnerID string, req *dto.WalletTransfer) error {
	req.Sanitize()
	if req.ToUserID == "" {
		return fmt.Errorf("%w: to_user_id is required", apperr.ErrValidation)
	}
	if req.ToUserID == fromOwnerID {
		return fmt.Errorf("%w: cannot transfer to your own wallet", apperr.ErrValidation)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be a positive decimal", apperr.ErrValidation)
	}

	if err := s.Store.Transfer(ctx, fromOwnerID, req.ToUserID, amount, req.IdempotencyKey); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"from": fromOwnerID,
		"to":   req.ToUserID,
	}).Info("wallet transfer applied")
	return nil
}

// CheckIntegrity replays the COMPLETED ledger for the owner's wallet and
// repairs the cached balance if it diverged. Divergence is an anomaly worth
// shouting about, not a routine event.
func (s *WalletService) CheckIntegrity(ctx context.Context, ownerID string) (decimal.Decimal, bool, error) {
	wallet, err := s.Store.AccountFor(ctx, ownerID)
	if err != nil {
		return decimal.Zero, false, err
	}

	balance, repaired, err := s.Store.RepairBalance(ctx, wallet.ID)
	if err != nil {
		return decimal.Zero, false, err
	}
	if repaired {
		logrus.WithFields(logrus.Fields{
			"wallet_id": wallet.ID,
			"cached":    wallet.Balance,
			"replayed":  balance,
		}).Error("wallet balance diverged from ledger, repaired")
	}
	return balance, repaired, nil
}
