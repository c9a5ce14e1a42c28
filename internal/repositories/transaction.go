package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/models"
)

// TransactionReadRepository reads the append-only ledger.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// ListByUser returns a user's ledger rows, newest first.
func (r *TransactionReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, amount, kind, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var transactions []models.TransactionDB
	err := r.db.SelectContext(ctx, &transactions, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(transactions),
		"error", err,
	)

	if err != nil {
		return nil, storageErr("list transactions", err)
	}

	return transactions, nil
}
