package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/middlewares"
	"github.com/rentmart/rentmart/internal/models"
	"github.com/rentmart/rentmart/internal/repositories"
)

// AccountReader defines the interface that the user repository must implement.
type AccountReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// AccountResponse represents the authenticated user's profile
// swagger:model AccountResponse
type AccountResponse struct {
	// The user's profile, password hash excluded
	User *models.UserDB `json:"user"`
}

// AccountErrorResponse represents an error response for the account view
// swagger:model AccountErrorResponse
type AccountErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewAccountHandler returns an HTTP handler for viewing the authenticated
// user's profile and balance.
// @Summary View account
// @Description Returns the authenticated user's profile and current balance
// @Tags account
// @Produce json
// @Success 200 {object} handlers.AccountResponse "The profile"
// @Failure 401 {object} handlers.AccountErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.AccountErrorResponse "User not found"
// @Router /account [get]
// @Security BearerAuth
func NewAccountHandler(users AccountReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Unauthorized"})
			return
		}

		user, err := users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AccountErrorResponse{Error: "User not found"})
				return
			}
			logger.Log.Errorw("failed to load account", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AccountResponse{User: user})
	}
}
