package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/models"
	"github.com/rentmart/rentmart/internal/repositories"
)

// ErrInsufficientBalance is returned when a user's balance does not cover the
// product price.
var ErrInsufficientBalance = errors.New("insufficient balance")

// PriceReader reads the authoritative product row for pricing. The rental
// flow reads the database directly, not the cache: a stale cached price must
// never decide how much to debit.
type PriceReader interface {
	GetByID(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error)
}

// WalletDebitor atomically debits a balance and appends the ledger row,
// re-verifying the balance precondition at write time.
type WalletDebitor interface {
	Debit(ctx context.Context, userID uuid.UUID, amount float64) (float64, uuid.UUID, error)
}

// RentalService orchestrates the rental flow: price lookup, conditional
// debit and ledger append.
type RentalService struct {
	products    PriceReader
	wallet      WalletDebitor
	kafkaWriter KafkaWriter
}

// NewRentalService creates a new RentalService.
func NewRentalService(products PriceReader, wallet WalletDebitor, kafkaWriter KafkaWriter) *RentalService {
	return &RentalService{
		products:    products,
		wallet:      wallet,
		kafkaWriter: kafkaWriter,
	}
}

// Rent charges the product price against the user's balance and returns a
// receipt. The debit and the ledger row are one database transaction; on any
// failure between them the balance is left untouched. There is no automatic
// retry, the caller decides whether to resubmit.
func (svc *RentalService) Rent(ctx context.Context, userID, productID uuid.UUID) (*models.RentalReceipt, error) {
	product, err := svc.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		logger.Log.Errorw("failed to look up product price", "productID", productID, "error", err)
		return nil, err
	}

	balance, txnID, err := svc.wallet.Debit(ctx, userID, product.Price)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrInsufficientBalance):
			return nil, ErrInsufficientBalance
		default:
			logger.Log.Errorw("failed to debit balance", "userID", userID, "productID", productID, "error", err)
			return nil, err
		}
	}

	receipt := &models.RentalReceipt{
		ProductID:  productID,
		Amount:     product.Price,
		NewBalance: balance,
		Timestamp:  time.Now(),
	}

	publishLedgerEvent(ctx, svc.kafkaWriter, models.LedgerEvent{
		TransactionID: txnID.String(),
		Timestamp:     receipt.Timestamp.Unix(),
		Amount:        -product.Price,
		UserID:        userID.String(),
		Kind:          models.TransactionKindRental,
	})

	return receipt, nil
}
