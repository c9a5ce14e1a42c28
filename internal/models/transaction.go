package models

import (
	"time"

	"github.com/google/uuid"
)

// Ledger transaction kinds. Top-ups are recorded with positive amounts,
// rental charges with negative amounts, so the balance always equals the
// sum of a user's ledger rows.
const (
	TransactionKindTopUp  = "topup"
	TransactionKindRental = "rental"
)

// TransactionDB represents an append-only ledger row in the database
type TransactionDB struct {
	TransactionID uuid.UUID `json:"transaction_id" db:"transaction_id"` // Primary key
	UserID        uuid.UUID `json:"user_id" db:"user_id"`               // Owning user
	Amount        float64   `json:"amount" db:"amount"`                 // Signed amount: positive credit, negative debit
	Kind          string    `json:"kind" db:"kind"`                     // "topup" or "rental"
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // When the transaction occurred
}

// RentalReceipt is returned to the caller after a completed rental.
type RentalReceipt struct {
	ProductID  uuid.UUID `json:"product_id"`  // Rented product
	Amount     float64   `json:"amount"`      // Amount charged (positive)
	NewBalance float64   `json:"new_balance"` // Balance after the debit
	Timestamp  time.Time `json:"timestamp"`   // When the rental was committed
}

// LedgerEvent is the message published to Kafka for every balance-affecting
// transaction.
type LedgerEvent struct {
	TransactionID string  `json:"transaction_id"` // Unique identifier of the ledger row
	Timestamp     int64   `json:"timestamp"`      // Unix timestamp (in seconds) of the event
	Amount        float64 `json:"amount"`         // Signed monetary amount
	UserID        string  `json:"user_id"`        // Identifier of the affected user
	Kind          string  `json:"kind"`           // Operation kind, e.g. "topup" or "rental"
}
