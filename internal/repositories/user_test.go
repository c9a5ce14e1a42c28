package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgres(t)
	defer cleanup()

	readRepo := NewUserReadRepository(db)
	writeRepo := NewUserWriteRepository(db)
	ctx := context.Background()

	t.Run("save and look up", func(t *testing.T) {
		userID, err := writeRepo.Save(ctx, "john_doe", "hash", "john@example.com", "1 Main Street", "91234567", "user")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, userID)

		username := "john_doe"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "john@example.com", user.Email)
		assert.Equal(t, "user", user.Role)
		assert.Equal(t, 0.0, user.Balance)

		byID, err := readRepo.GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "john_doe", byID.Username)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, "dup_user", "hash", "dup1@example.com", "", "", "user")
		require.NoError(t, err)

		_, err = writeRepo.Save(ctx, "dup_user", "hash", "dup2@example.com", "", "", "user")
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, "mail_user1", "hash", "same@example.com", "", "", "user")
		require.NoError(t, err)

		_, err = writeRepo.Save(ctx, "mail_user2", "hash", "same@example.com", "", "", "user")
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("no match returns nil without error", func(t *testing.T) {
		username := "nobody"
		user, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("unknown ID", func(t *testing.T) {
		_, err := readRepo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
