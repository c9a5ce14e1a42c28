package services

import (
	"context"
	"encoding/json"

	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishLedgerEvent publishes a ledger event to Kafka. Publishing is
// best-effort: the ledger row is already committed, so failures are logged
// and never surfaced to the caller.
func publishLedgerEvent(ctx context.Context, w KafkaWriter, event models.LedgerEvent) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", event.TransactionID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal ledger event for Kafka", "transaction_id", event.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish ledger event to Kafka", "transaction_id", event.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Ledger event published to Kafka", "transaction_id", event.TransactionID, "amount", event.Amount, "kind", event.Kind)
	}
}
