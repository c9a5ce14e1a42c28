package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/models"
)

var (
	// ErrUserExists is returned when registering a username or email that is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the given identifier.
	ErrUserNotFound = errors.New("user not found")
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail looks a user up by username and/or email. A nil
// argument skips that filter. Returns (nil, nil) when no user matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, role, balance, address, contact, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NULL OR username = $1)
		  AND ($2::VARCHAR IS NULL OR email = $2)
		LIMIT 1
	`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get user", err)
	}

	return &user, nil
}

// GetByID returns the user with the given ID.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, role, balance, address, contact, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, storageErr("get user by id", err)
	}

	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns its generated ID. Duplicate username
// or email is reported as ErrUserExists.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email, address, contact, role string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, role, address, contact, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING user_id
	`
	args := []any{username, email, passwordHash, role, address, contact}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var userID uuid.UUID
	err := r.db.GetContext(ctx, &userID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email, role},
		"result", userID,
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return uuid.Nil, ErrUserExists
		}
		return uuid.Nil, storageErr("save user", err)
	}

	return userID, nil
}
