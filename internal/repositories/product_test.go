package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgres(t)
	defer cleanup()

	readRepo := NewProductReadRepository(db)
	writeRepo := NewProductWriteRepository(db)
	ctx := context.Background()

	t.Run("save and read back", func(t *testing.T) {
		image := "1714000000000-bike.jpg"
		productID, err := writeRepo.Save(ctx, "Mountain Bike", "Hardtail, size M", 40, &image)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, productID)

		product, err := readRepo.GetByID(ctx, productID)
		require.NoError(t, err)
		assert.Equal(t, "Mountain Bike", product.Name)
		assert.Equal(t, 40.0, product.Price)
		require.NotNil(t, product.Image)
		assert.Equal(t, image, *product.Image)
	})

	t.Run("save without image", func(t *testing.T) {
		productID, err := writeRepo.Save(ctx, "Tent", "Two-person tent", 25, nil)
		require.NoError(t, err)

		product, err := readRepo.GetByID(ctx, productID)
		require.NoError(t, err)
		assert.Nil(t, product.Image)
	})

	t.Run("update", func(t *testing.T) {
		productID, err := writeRepo.Save(ctx, "Kayak", "Single seat", 30, nil)
		require.NoError(t, err)

		newImage := "1714000000001-kayak.jpg"
		err = writeRepo.Update(ctx, productID, "Kayak", "Single seat, includes paddle", 35, &newImage)
		require.NoError(t, err)

		product, err := readRepo.GetByID(ctx, productID)
		require.NoError(t, err)
		assert.Equal(t, "Single seat, includes paddle", product.Description)
		assert.Equal(t, 35.0, product.Price)
		require.NotNil(t, product.Image)
		assert.Equal(t, newImage, *product.Image)
	})

	t.Run("update unknown product", func(t *testing.T) {
		err := writeRepo.Update(ctx, uuid.New(), "Ghost", "Missing", 10, nil)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		productID, err := writeRepo.Save(ctx, "Scooter", "Electric scooter", 15, nil)
		require.NoError(t, err)

		require.NoError(t, writeRepo.Delete(ctx, productID))

		_, err = readRepo.GetByID(ctx, productID)
		assert.ErrorIs(t, err, ErrProductNotFound)

		err = writeRepo.Delete(ctx, productID)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("list", func(t *testing.T) {
		products, err := readRepo.List(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, products)
	})
}
