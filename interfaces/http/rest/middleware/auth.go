// Package middleware holds the HTTP middleware chain pieces.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"ejama-backend/infrastructure/identity"
	"ejama-backend/pkg/common"
)

// Authenticate resolves the bearer token before any handler runs. Requests
// without a resolvable identity are rejected here, so handlers and services
// always see a user in the context.
func Authenticate(resolver identity.Resolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing authentication token")
				return
			}

			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				logger.Debug("authentication failed",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				switch {
				case errors.Is(err, identity.ErrExpiredToken):
					common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Token has expired")
				default:
					common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
				}
				return
			}

			ctx := identity.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route subtree on the resolved user's role.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := identity.FromContext(r.Context())
			if !ok {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
				return
			}
			if user.Role != role {
				common.RespondError(w, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractToken pulls the bearer token from the Authorization header. A bare
// token without the Bearer prefix is accepted too.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return authHeader
}
