package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mdsai/analytics-api/internal/domain"
	"github.com/mdsai/analytics-api/internal/usecases/authenticating"
	"github.com/mdsai/analytics-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// protectedPrefixes lists the routes that refuse unauthenticated requests.
// Every other route stays open so the dashboard can render without a login,
// but a valid token still attaches the caller's claims to the context.
var protectedPrefixes = []string{
	"/v1/me",
	"/v1/users",
	"/v1/cron",
}

func requiresAuth(path string) bool {
	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := claimsFromHeader(authService, r.Header.Get("Authorization"))
			if claims != nil {
				r = r.WithContext(context.WithValue(r.Context(), ContextKeyUser, claims))
			}

			if requiresAuth(r.URL.Path) && claims == nil {
				code := apiErrors.ErrInvalidToken
				message := "Authentication required"

				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) {
					code = authErr.Code
					message = "Invalid or expired token"
				}

				apiErrors.WriteError(w, code, message, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func claimsFromHeader(authService authenticating.Authenticator, authHeader string) (*domain.Claims, error) {
	if authHeader == "" {
		return nil, nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, authenticating.ErrInvalidToken
	}

	return authService.ValidateToken(tokenString)
}
