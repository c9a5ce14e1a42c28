package middlewares

import (
	"net/http"

	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/models"
)

// AdminMiddleware rejects requests whose authenticated identity does not
// carry the admin role. Must run after AuthMiddleware.
func AdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaimsFromContext(r.Context())
			if claims == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if claims.Role != models.RoleAdmin {
				logger.Log.Warnw("admin access denied", "userID", claims.UserID, "role", claims.Role)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
