package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/slimauth/pkg/environment"
	"github.com/dmitrymomot/slimauth/pkg/httpserver"
	"github.com/dmitrymomot/slimauth/pkg/logger"
	"github.com/dmitrymomot/slimauth/pkg/redis"
	"github.com/dmitrymomot/slimauth/pkg/session"
	"github.com/dmitrymomot/slimauth/pkg/tokenvalidator"
)

type app struct {
	cfg      appConfig
	log      *slog.Logger
	sessions *session.Manager
	tokens   *tokenvalidator.JWT
	revoked  *tokenvalidator.RevocationList
	cached   *tokenvalidator.Cached
	rdb      goredis.UniversalClient
}

func newApp(cfg appConfig, rdb goredis.UniversalClient, log *slog.Logger) (*app, error) {
	tokens, err := tokenvalidator.NewJWT(cfg.JWT)
	if err != nil {
		return nil, err
	}
	revoked, err := tokenvalidator.NewRevocationList(rdb, "")
	if err != nil {
		return nil, err
	}
	cached := tokenvalidator.NewCached(
		tokenvalidator.Chain(tokens, revoked),
		max(cfg.ValidationCacheSize, 1),
		cfg.ValidationCacheTTL,
	)

	sessions, err := session.New(cfg.Session,
		session.WithLogger(log),
		session.WithAccessTokenValidator(cached),
	)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		log:      log,
		sessions: sessions,
		tokens:   tokens,
		revoked:  revoked,
		cached:   cached,
		rdb:      rdb,
	}, nil
}

func (a *app) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(environment.Middleware(a.cfg.Session.Environment))

	r.Get("/healthz", httpserver.Healthcheck(a.log, map[string]httpserver.Check{
		"redis": redis.Healthcheck(a.rdb),
	}))

	r.Group(func(r chi.Router) {
		r.Use(a.sessions.Middleware)

		r.Get("/", a.handleIndex)
		r.Post("/login", a.handleLogin)
		r.Post("/logout", a.handleLogout)
		r.With(a.sessions.RequireValidAccessToken).Get("/me", a.handleMe)
	})

	return r
}

type indexResponse struct {
	AnonID        string `json:"anon_id,omitempty"`
	Host          string `json:"host,omitempty"`
	Authenticated bool   `json:"authenticated"`
	Visits        int    `json:"visits"`
}

func (a *app) handleIndex(w http.ResponseWriter, r *http.Request) {
	view, ok := a.sessions.GetSession(r)
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	visits, _ := view.CustomField("visits", float64(0)).(float64)
	visits++
	if err := view.SetCustomField("visits", visits); err != nil {
		a.log.WarnContext(r.Context(), "store visit counter", logger.Error(err))
	}

	resp := indexResponse{Authenticated: view.IsAuthenticated(), Visits: int(visits)}
	if anon, ok := view.AnonUser(); ok {
		resp.AnonID = anon.ID
	}
	resp.Host, _ = view.Host()

	writeJSON(w, http.StatusOK, resp)
}

type loginResponse struct {
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// handleLogin trusts the submitted user id; a real service would check
// credentials before issuing the token.
func (a *app) handleLogin(w http.ResponseWriter, r *http.Request) {
	view, ok := a.sessions.GetSession(r)
	if !ok {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	userID := r.FormValue("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	token, err := a.tokens.Issue(userID, a.cfg.TokenTTL)
	if err != nil {
		a.log.ErrorContext(r.Context(), "issue access token", logger.UserID(userID), logger.Error(err))
		http.Error(w, "cannot issue token", http.StatusInternalServerError)
		return
	}

	user, err := view.SetUser(session.User{ID: userID, AccessToken: token})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.log.InfoContext(r.Context(), "user signed in", logger.UserID(user.ID))
	writeJSON(w, http.StatusOK, loginResponse{UserID: user.ID, ExpiresAt: time.Now().Add(a.cfg.TokenTTL)})
}

func (a *app) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := a.sessions.GetUserAccessToken(r); token != "" {
		ttl := a.cfg.TokenTTL
		if claims, err := a.tokens.Claims(token); err == nil && claims.ExpiresAt != nil {
			ttl = time.Until(claims.ExpiresAt.Time)
		}
		if ttl > 0 {
			if err := a.revoked.Revoke(r.Context(), token, ttl); err != nil {
				a.log.ErrorContext(r.Context(), "revoke access token", logger.Error(err))
				http.Error(w, "cannot sign out", http.StatusServiceUnavailable)
				return
			}
		}
		a.cached.Forget(token)
	}

	if err := a.sessions.ResetSession(r); err != nil {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type meResponse struct {
	UserID   string     `json:"user_id"`
	SignedIn *time.Time `json:"signed_in,omitempty"`
}

func (a *app) handleMe(w http.ResponseWriter, r *http.Request) {
	user, _ := a.sessions.GetUser(r)
	resp := meResponse{UserID: user.ID}
	if !user.SetAt.IsZero() {
		resp.SignedIn = &user.SetAt
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
