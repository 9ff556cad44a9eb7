package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/seenhub/seenhub-server/internal/domain"
	"github.com/seenhub/seenhub-server/internal/http/response"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const contextKeyUser contextKey = "user"

// sessionToken extracts the session token from the request, preferring the
// session cookie over a Bearer header.
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// requireAuth is middleware that validates the session and attaches the user
// to the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			response.Unauthorized(w, "authentication required", s.logger)
			return
		}

		user, err := s.authService.VerifyToken(r.Context(), token)
		if err != nil {
			response.Unauthorized(w, "invalid or expired session", s.logger)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser extracts the authenticated user from request context.
// Returns nil when the request is unauthenticated.
func currentUser(ctx context.Context) *domain.User {
	if user, ok := ctx.Value(contextKeyUser).(*domain.User); ok {
		return user
	}
	return nil
}
