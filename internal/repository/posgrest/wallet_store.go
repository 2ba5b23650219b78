package posgrest

import (
	"context"
	"errors"
	"fmt"

	"github.com/hudumapay/settlement-service/internal/apperr"
	"github.com/hudumapay/settlement-service/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletStore owns every balance mutation. All writers go through Apply (or
// Transfer, which composes two Applies in one transaction); nothing else
// touches the wallets or wallet_transactions tables.
type WalletStore struct {
	db *gorm.DB
}

func NewWalletStore(db *gorm.DB) *WalletStore {
	return &WalletStore{db: db}
}

// AccountFor returns the owner's wallet, creating it lazily on first use.
func (s *WalletStore) AccountFor(ctx context.Context, ownerID string) (*models.Wallet, error) {
	var wallet models.Wallet
	err := s.db.WithContext(ctx).
		Where(models.Wallet{OwnerID: ownerID}).
		Attrs(models.Wallet{Balance: decimal.Zero}).
		FirstOrCreate(&wallet).Error
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Apply appends one ledger entry and moves the cached balance in the same
// transaction. Debits fail with ErrInsufficientFunds before any write; credits
// carrying an idempotency key insert at most once per key.
func (s *WalletStore) Apply(ctx context.Context, ownerID string, txType models.TransactionType, amount decimal.Decimal, reason models.TransactionReason, idempotencyKey *string) (*models.WalletTransaction, error) {
	var applied *models.WalletTransaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		applied, err = applyTransaction(tx, ownerID, txType, amount, reason, idempotencyKey)
		return err
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}

// applyTransaction is the transactional body shared with the settlement store,
// which credits provider wallets inside its own finalize transaction.
func applyTransaction(tx *gorm.DB, ownerID string, txType models.TransactionType, amount decimal.Decimal, reason models.TransactionReason, idempotencyKey *string) (*models.WalletTransaction, error) {
	if !txType.IsValid() {
		return nil, fmt.Errorf("%w: invalid transaction type %s", apperr.ErrValidation, txType)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: transaction amount must be positive", apperr.ErrValidation)
	}

	if idempotencyKey != nil && *idempotencyKey != "" {
		var existing models.WalletTransaction
		err := tx.Where("idempotency_key = ?", *idempotencyKey).First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		idempotencyKey = nil
	}

	var wallet models.Wallet
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(models.Wallet{OwnerID: ownerID}).
		Attrs(models.Wallet{Balance: decimal.Zero}).
		FirstOrCreate(&wallet).Error
	if err != nil {
		return nil, err
	}

	newBalance := wallet.Balance
	switch txType {
	case models.TransactionCredit:
		newBalance = newBalance.Add(amount)
	case models.TransactionDebit:
		if wallet.Balance.LessThan(amount) {
			return nil, fmt.Errorf("%w: balance %s, requested %s", apperr.ErrInsufficientFunds, wallet.Balance, amount)
		}
		newBalance = newBalance.Sub(amount)
	}

	entry := models.WalletTransaction{
		WalletID:       wallet.ID,
		Type:           txType,
		Amount:         amount,
		Reason:         reason,
		Status:         models.TransactionCompleted,
		IdempotencyKey: idempotencyKey,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, err
	}

	if err := tx.Model(&models.Wallet{}).Where("id = ?", wallet.ID).
		Update("balance", newBalance).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

// Transfer moves funds between two owners as a DEBIT/CREDIT pair in one
// transaction. The key, when given, makes the whole transfer idempotent.
func (s *WalletStore) Transfer(ctx context.Context, fromOwnerID, toOwnerID string, amount decimal.Decimal, idempotencyKey string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var outKey, inKey *string
		if idempotencyKey != "" {
			out := idempotencyKey + ":out"
			in := idempotencyKey + ":in"
			outKey, inKey = &out, &in
		}

		if _, err := applyTransaction(tx, fromOwnerID, models.TransactionDebit, amount, models.ReasonTransferOut, outKey); err != nil {
			return err
		}
		_, err := applyTransaction(tx, toOwnerID, models.TransactionCredit, amount, models.ReasonTransferIn, inKey)
		return err
	})
}

// Transactions returns the ledger history for a wallet, newest first.
func (s *WalletStore) Transactions(ctx context.Context, walletID string) ([]models.WalletTransaction, error) {
	var entries []models.WalletTransaction
	err := s.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ReplayBalance recomputes the balance from COMPLETED entries only. The cached
// balance must always equal this sum.
func (s *WalletStore) ReplayBalance(ctx context.Context, walletID string) (decimal.Decimal, error) {
	var entries []models.WalletTransaction
	err := s.db.WithContext(ctx).
		Where("wallet_id = ? AND status = ?", walletID, models.TransactionCompleted).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case models.TransactionCredit:
			balance = balance.Add(e.Amount)
		case models.TransactionDebit:
			balance = balance.Sub(e.Amount)
		}
	}
	return balance, nil
}

// RepairBalance overwrites a diverged cached balance with the replayed value.
// Returns the replayed balance and whether a repair was needed.
func (s *WalletStore) RepairBalance(ctx context.Context, walletID string) (decimal.Decimal, bool, error) {
	replayed, err := s.ReplayBalance(ctx, walletID)
	if err != nil {
		return decimal.Zero, false, err
	}

	var wallet models.Wallet
	if err := s.db.WithContext(ctx).Where("id = ?", walletID).First(&wallet).Error; err != nil {
		return decimal.Zero, false, translate(err)
	}

	if wallet.Balance.Equal(replayed) {
		return replayed, false, nil
	}

	err = s.db.WithContext(ctx).Model(&models.Wallet{}).
		Where("id = ?", walletID).
		Update("balance", replayed).Error
	if err != nil {
		return decimal.Zero, false, err
	}
	return replayed, true, nil
}
