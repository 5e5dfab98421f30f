package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slimauth/pkg/session"
)

func TestManager_RequireUser(t *testing.T) {
	m := setupManager(t)
	protected := m.Middleware(m.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	w := httptest.NewRecorder()
	protected.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login := do(m, func(w http.ResponseWriter, r *http.Request) {
		view, _ := m.GetSession(r)
		_, err := view.SetUser(session.User{ID: "u1", AccessToken: "t1"})
		require.NoError(t, err)
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range login.Result().Cookies() {
		r.AddCookie(c)
	}
	w = httptest.NewRecorder()
	protected.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestManager_RequireValidAccessToken(t *testing.T) {
	tests := []struct {
		name      string
		validator session.AccessTokenValidator
		login     bool
		want      int
	}{
		{name: "anonymous", validator: allow(true, nil), login: false, want: http.StatusUnauthorized},
		{name: "valid", validator: allow(true, nil), login: true, want: http.StatusOK},
		{name: "rejected", validator: allow(false, nil), login: true, want: http.StatusUnauthorized},
		{name: "validator error", validator: allow(false, errors.New("down")), login: true, want: http.StatusServiceUnavailable},
		{name: "no validator", validator: nil, login: true, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupManager(t, session.WithAccessTokenValidator(tt.validator))
			protected := m.Middleware(m.RequireValidAccessToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.login {
				login := do(m, func(w http.ResponseWriter, r *http.Request) {
					view, _ := m.GetSession(r)
					_, _ = view.SetUser(session.User{ID: "u1", AccessToken: "t1"})
				})
				for _, c := range login.Result().Cookies() {
					r.AddCookie(c)
				}
			}

			w := httptest.NewRecorder()
			protected.ServeHTTP(w, r)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func allow(valid bool, err error) session.AccessTokenValidator {
	return session.AccessTokenValidatorFunc(func(context.Context, string) (bool, error) {
		return valid, err
	})
}
