package middlewares

import (
	"context"
	"net/http"

	"github.com/rentmart/rentmart/internal/jwt"
	"github.com/rentmart/rentmart/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports whether a token has been revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware validates the bearer token, rejects revoked tokens and
// stores the validated claims in the request context for downstream
// handlers.
func AuthMiddleware(tokener Tokener, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(ctx, tokenString)
				if err != nil {
					logger.Log.Errorw("revocation check failed", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				if revoked {
					logger.Log.Warnw("revoked token presented")
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(setClaimsToContext(ctx, claims)))
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var claimsKey = contextKey{}

// setClaimsToContext stores validated claims in the context
func setClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves the validated claims from the context.
// Returns nil if the request did not pass the auth middleware.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}

// SetClaimsToContext exposes claim injection for tests.
func SetClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return setClaimsToContext(ctx, claims)
}
