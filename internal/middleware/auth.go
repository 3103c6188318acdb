package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Lixing-Zhang/storefront-api/internal/auth"
	"github.com/Lixing-Zhang/storefront-api/internal/models"
)

type contextKey string

const claimsKey contextKey = "claims"

// RequireAdmin validates a Bearer access token and rejects tokens that do not
// carry the ADMIN role. Valid claims are stored on the request context.
func RequireAdmin(tokens *auth.TokenManager, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				writeJSON(w, http.StatusUnauthorized, failure{Message: "Access token required"})
				return
			}

			claims, err := tokens.Validate(strings.TrimSpace(token))
			if err != nil {
				logger.Warn("rejected access token", "error", err, "path", r.URL.Path)
				writeJSON(w, http.StatusUnauthorized, failure{Message: "Invalid or expired token"})
				return
			}

			if claims.Role != string(models.RoleAdmin) {
				writeJSON(w, http.StatusUnauthorized, failure{Message: "Admin access required"})
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the claims stored by RequireAdmin
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
