package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/models"
	"github.com/rentmart/rentmart/internal/repositories"
)

var (
	// ErrInvalidAmount is returned when a top-up amount is not a positive finite number.
	ErrInvalidAmount = errors.New("amount must be a positive number")
	// ErrUserNotFound is returned when the wallet owner does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// WalletCreditor atomically credits a balance and appends the ledger row.
type WalletCreditor interface {
	Credit(ctx context.Context, userID uuid.UUID, amount float64) (float64, uuid.UUID, error)
}

// BalanceReader reads a user's current balance.
type BalanceReader interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (float64, error)
}

// TransactionLister reads a user's ledger, newest first.
type TransactionLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
}

// WalletService handles top-ups, balance reads and ledger history.
type WalletService struct {
	creditor     WalletCreditor
	balances     BalanceReader
	transactions TransactionLister
	kafkaWriter  KafkaWriter
}

// NewWalletService creates a new WalletService.
func NewWalletService(creditor WalletCreditor, balances BalanceReader, transactions TransactionLister, kafkaWriter KafkaWriter) *WalletService {
	return &WalletService{
		creditor:     creditor,
		balances:     balances,
		transactions: transactions,
		kafkaWriter:  kafkaWriter,
	}
}

// TopUp adds funds to a user's balance. The balance increment and the
// positive ledger row commit together or not at all.
func (svc *WalletService) TopUp(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidAmount
	}

	balance, txnID, err := svc.creditor.Credit(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return 0, ErrUserNotFound
		}
		logger.Log.Errorw("failed to credit balance", "userID", userID, "amount", amount, "error", err)
		return 0, err
	}

	publishLedgerEvent(ctx, svc.kafkaWriter, models.LedgerEvent{
		TransactionID: txnID.String(),
		Timestamp:     time.Now().Unix(),
		Amount:        amount,
		UserID:        userID.String(),
		Kind:          models.TransactionKindTopUp,
	})

	return balance, nil
}

// GetBalance returns the user's current balance.
func (svc *WalletService) GetBalance(ctx context.Context, userID uuid.UUID) (float64, error) {
	balance, err := svc.balances.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return 0, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get balance", "userID", userID, "error", err)
		return 0, err
	}
	return balance, nil
}

// History returns the user's ledger rows, newest first.
func (svc *WalletService) History(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	transactions, err := svc.transactions.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
		return nil, err
	}
	return transactions, nil
}
