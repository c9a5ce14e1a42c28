package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/models"
	"github.com/rentmart/rentmart/internal/repositories"
	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalServiceRent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProducts := NewMockPriceReader(ctrl)
	mockWallet := NewMockWalletDebitor(ctrl)
	mockKafka := NewMockKafkaWriter(ctrl)

	svc := NewRentalService(mockProducts, mockWallet, mockKafka)
	ctx := context.Background()

	userID := uuid.New()
	productID := uuid.New()
	product := &models.ProductDB{
		ProductID: productID,
		Name:      "Mountain Bike",
		Price:     40,
	}

	t.Run("success", func(t *testing.T) {
		txnID := uuid.New()
		mockProducts.EXPECT().
			GetByID(gomock.Any(), productID).
			Return(product, nil)
		mockWallet.EXPECT().
			Debit(gomock.Any(), userID, 40.0).
			Return(60.0, txnID, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				var event models.LedgerEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, txnID.String(), event.TransactionID)
				assert.Equal(t, -40.0, event.Amount)
				assert.Equal(t, models.TransactionKindRental, event.Kind)
				return nil
			})

		receipt, err := svc.Rent(ctx, userID, productID)
		assert.NoError(t, err)
		assert.Equal(t, productID, receipt.ProductID)
		assert.Equal(t, 40.0, receipt.Amount)
		assert.Equal(t, 60.0, receipt.NewBalance)
	})

	t.Run("product not found", func(t *testing.T) {
		mockProducts.EXPECT().
			GetByID(gomock.Any(), productID).
			Return(nil, repositories.ErrProductNotFound)

		_, err := svc.Rent(ctx, userID, productID)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("insufficient balance leaves no receipt", func(t *testing.T) {
		mockProducts.EXPECT().
			GetByID(gomock.Any(), productID).
			Return(product, nil)
		mockWallet.EXPECT().
			Debit(gomock.Any(), userID, 40.0).
			Return(0.0, uuid.Nil, repositories.ErrInsufficientBalance)

		receipt, err := svc.Rent(ctx, userID, productID)
		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.Nil(t, receipt)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockProducts.EXPECT().
			GetByID(gomock.Any(), productID).
			Return(product, nil)
		mockWallet.EXPECT().
			Debit(gomock.Any(), userID, 40.0).
			Return(0.0, uuid.Nil, repositories.ErrUserNotFound)

		_, err := svc.Rent(ctx, userID, productID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
