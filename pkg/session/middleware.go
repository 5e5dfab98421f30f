package session

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/slimauth/pkg/logger"
)

// RequireUser responds 401 unless the session holds an authenticated user.
// It must run after Middleware.
func (m *Manager) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.GetUserID(r) == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireValidAccessToken responds 401 unless HasValidAccessToken succeeds.
// Validator failures other than a rejected token respond 503.
func (m *Manager) RequireValidAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := m.HasValidAccessToken(r.Context(), r)
		switch {
		case err == nil:
			next.ServeHTTP(w, r)
		case errors.Is(err, ErrTokenValidation), errors.Is(err, ErrNoValidator):
			m.logger.LogAttrs(r.Context(), slog.LevelError, "cannot validate access token",
				logger.UserID(m.GetUserID(r)),
				logger.Error(err),
			)
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		default:
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		}
	})
}
