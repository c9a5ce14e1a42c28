package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/middlewares"
	"github.com/rentmart/rentmart/internal/models"
)

// HistoryLister defines the interface that the wallet service must implement.
type HistoryLister interface {
	History(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
}

// HistoryResponse represents the user's transaction history
// swagger:model HistoryResponse
type HistoryResponse struct {
	// Ledger rows, newest first. Top-ups are positive, rentals negative.
	Transactions []models.TransactionDB `json:"transactions"`
}

// HistoryErrorResponse represents an error response for the history view
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewHistoryHandler returns an HTTP handler for listing the authenticated
// user's ledger history.
// @Summary Transaction history
// @Description Lists the authenticated user's ledger rows, newest first
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.HistoryResponse "Ledger rows"
// @Failure 401 {object} handlers.HistoryErrorResponse "Unauthorized"
// @Router /history [get]
// @Security BearerAuth
func NewHistoryHandler(svc HistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Unauthorized"})
			return
		}

		transactions, err := svc.History(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list history", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Internal server error"})
			return
		}

		if transactions == nil {
			transactions = []models.TransactionDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HistoryResponse{Transactions: transactions})
	}
}
