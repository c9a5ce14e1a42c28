package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, db *sqlx.DB, balance float64) uuid.UUID {
	t.Helper()
	var userID uuid.UUID
	err := db.Get(&userID, `
		INSERT INTO users (username, email, password_hash, role, balance)
		VALUES ($1, $2, 'hash', 'user', $3)
		RETURNING user_id
	`, "user-"+uuid.NewString(), uuid.NewString()+"@example.com", balance)
	require.NoError(t, err)
	return userID
}

func TestWalletRepositoryCreditAndDebit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewWalletRepository(db)
	ledger := NewTransactionReadRepository(db)
	ctx := context.Background()

	t.Run("credit appends positive ledger row", func(t *testing.T) {
		userID := createTestUser(t, db, 0)

		balance, txnID, err := repo.Credit(ctx, userID, 100)
		require.NoError(t, err)
		assert.Equal(t, 100.0, balance)
		assert.NotEqual(t, uuid.Nil, txnID)

		rows, err := ledger.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 100.0, rows[0].Amount)
		assert.Equal(t, "topup", rows[0].Kind)
	})

	t.Run("debit within balance", func(t *testing.T) {
		userID := createTestUser(t, db, 100)

		balance, txnID, err := repo.Debit(ctx, userID, 40)
		require.NoError(t, err)
		assert.Equal(t, 60.0, balance)
		assert.NotEqual(t, uuid.Nil, txnID)

		rows, err := ledger.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, -40.0, rows[0].Amount)
		assert.Equal(t, "rental", rows[0].Kind)
	})

	t.Run("debit beyond balance leaves everything untouched", func(t *testing.T) {
		userID := createTestUser(t, db, 30)

		_, _, err := repo.Debit(ctx, userID, 40)
		assert.ErrorIs(t, err, ErrInsufficientBalance)

		balance, err := repo.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 30.0, balance)

		rows, err := ledger.ListByUser(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("debit for unknown user", func(t *testing.T) {
		_, _, err := repo.Debit(ctx, uuid.New(), 40)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("credit for unknown user", func(t *testing.T) {
		_, _, err := repo.Credit(ctx, uuid.New(), 40)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("balance for unknown user", func(t *testing.T) {
		_, err := repo.GetBalance(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

// Concurrent debits must serialize at the database: with a balance covering
// only 3 of 10 identical rentals, exactly 3 may succeed and the rest fail
// with ErrInsufficientBalance, never driving the balance negative.
func TestWalletRepositoryConcurrentDebits(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewWalletRepository(db)
	ledger := NewTransactionReadRepository(db)
	ctx := context.Background()

	const (
		price      = 40.0
		affordable = 3
		attempts   = 10
	)
	userID := createTestUser(t, db, price*affordable)

	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := repo.Debit(ctx, userID, price)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, insufficient int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case err == ErrInsufficientBalance:
			insufficient++
		default:
			t.Fatalf("unexpected debit error: %v", err)
		}
	}

	assert.Equal(t, affordable, succeeded)
	assert.Equal(t, attempts-affordable, insufficient)

	balance, err := repo.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance)

	rows, err := ledger.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, rows, affordable)
}
