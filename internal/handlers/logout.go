package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rentmart/rentmart/internal/logger"
)

// LogoutTokener extracts the bearer token from the request.
type LogoutTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that revokes the presented token.
// A request without a token is already logged out and succeeds.
// @Summary Log out
// @Description Revokes the presented bearer token for the remainder of its lifetime
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Router /logout [get]
func NewLogoutHandler(svc Logouter, tokener LogoutTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := tokener.GetTokenFromRequest(ctx, r)
		if err == nil && token != "" {
			if err := svc.Logout(ctx, token); err != nil {
				// An invalid token needs no revocation; anything else is logged
				// but the client still ends up logged out.
				logger.Log.Warnw("logout failed", "err", err)
			}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out",
		})
	}
}
