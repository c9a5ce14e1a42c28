// Package repositories implements PostgreSQL and Redis data access.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// queryTimeout bounds every storage call so a stalled database surfaces as a
// retryable error instead of hanging the request.
const queryTimeout = 5 * time.Second

// ErrStorageTimeout is returned when a storage call exceeds queryTimeout.
var ErrStorageTimeout = errors.New("storage timeout")

// storageErr wraps a repository error, mapping context deadline expiry to
// ErrStorageTimeout.
func storageErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrStorageTimeout)
	}
	return fmt.Errorf("%s: %w", op, err)
}
