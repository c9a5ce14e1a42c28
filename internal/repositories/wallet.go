package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/models"
)

// ErrInsufficientBalance is returned when a debit would take the balance negative.
var ErrInsufficientBalance = errors.New("insufficient balance")

// WalletRepository mutates user balances and the transaction ledger. Every
// mutation couples the balance update and the ledger insert in a single
// database transaction, so a debit can never commit without its ledger row.
type WalletRepository struct {
	db *sqlx.DB
}

func NewWalletRepository(db *sqlx.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// Credit atomically increments the user's balance and appends a positive
// ledger row. Returns the new balance and the ledger row ID.
func (r *WalletRepository) Credit(ctx context.Context, userID uuid.UUID, amount float64) (float64, uuid.UUID, error) {
	const updateQuery = `
		UPDATE users
		SET balance = balance + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING balance
	`
	const insertQuery = `
		INSERT INTO transactions (user_id, amount, kind)
		VALUES ($1, $2, $3)
		RETURNING transaction_id
	`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, uuid.Nil, storageErr("begin credit tx", err)
	}
	defer tx.Rollback()

	var balance float64
	if err := tx.GetContext(ctx, &balance, updateQuery, userID, amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, uuid.Nil, ErrUserNotFound
		}
		return 0, uuid.Nil, storageErr("credit balance", err)
	}

	var txnID uuid.UUID
	if err := tx.GetContext(ctx, &txnID, insertQuery, userID, amount, models.TransactionKindTopUp); err != nil {
		return 0, uuid.Nil, storageErr("insert topup transaction", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, uuid.Nil, storageErr("commit credit tx", err)
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(updateQuery), " "),
		"args", []any{userID, amount},
		"result", balance,
		"error", nil,
	)

	return balance, txnID, nil
}

// Debit atomically decrements the user's balance by amount and appends a
// negative ledger row. The balance precondition is re-verified at write time:
// the conditional UPDATE matches only rows with balance >= amount, so
// concurrent debits serialize at the database and can never interleave into
// a negative balance.
func (r *WalletRepository) Debit(ctx context.Context, userID uuid.UUID, amount float64) (float64, uuid.UUID, error) {
	const updateQuery = `
		UPDATE users
		SET balance = balance - $2, updated_at = NOW()
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance
	`
	const insertQuery = `
		INSERT INTO transactions (user_id, amount, kind)
		VALUES ($1, $2, $3)
		RETURNING transaction_id
	`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, uuid.Nil, storageErr("begin debit tx", err)
	}
	defer tx.Rollback()

	var balance float64
	err = tx.GetContext(ctx, &balance, updateQuery, userID, amount)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, uuid.Nil, storageErr("debit balance", err)
		}

		// Zero rows matched: either the user does not exist or the balance
		// does not cover the amount.
		var exists bool
		if probeErr := tx.GetContext(ctx, &exists,
			`SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`, userID); probeErr != nil {
			return 0, uuid.Nil, storageErr("probe user", probeErr)
		}
		if !exists {
			return 0, uuid.Nil, ErrUserNotFound
		}
		return 0, uuid.Nil, ErrInsufficientBalance
	}

	var txnID uuid.UUID
	if err := tx.GetContext(ctx, &txnID, insertQuery, userID, -amount, models.TransactionKindRental); err != nil {
		return 0, uuid.Nil, storageErr("insert rental transaction", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, uuid.Nil, storageErr("commit debit tx", err)
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(updateQuery), " "),
		"args", []any{userID, amount},
		"result", balance,
		"error", nil,
	)

	return balance, txnID, nil
}

// GetBalance returns the user's current balance.
func (r *WalletRepository) GetBalance(ctx context.Context, userID uuid.UUID) (float64, error) {
	const query = `SELECT balance FROM users WHERE user_id = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var balance float64
	err := r.db.GetContext(ctx, &balance, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", balance,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, storageErr("get balance", err)
	}

	return balance, nil
}
