package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/slimauth/pkg/clientsession"
	"github.com/dmitrymomot/slimauth/pkg/config"
	"github.com/dmitrymomot/slimauth/pkg/logger"
)

// Manager configures the session cookie and builds a View per request.
type Manager struct {
	cfg        Config
	cookieName string
	middleware *clientsession.Middleware
	ids        IDGenerator
	logger     *slog.Logger
	now        func() time.Time

	mu        sync.RWMutex
	validator AccessTokenValidator
}

// New validates cfg and creates a manager. A missing secret fails fast.
func New(cfg Config, opts ...Option) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	cfg = cfg.withDefaults()

	m := &Manager{
		cfg:        cfg,
		cookieName: cfg.EffectiveCookieName(),
		ids:        randomIDGenerator{},
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	mw, err := clientsession.New(m.MiddlewareConfig(),
		clientsession.WithLogger(m.logger),
		clientsession.WithClock(m.now),
	)
	if err != nil {
		return nil, err
	}
	m.middleware = mw

	return m, nil
}

// NewFromEnv loads Config from the environment and creates a manager.
func NewFromEnv(opts ...Option) (*Manager, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// CookieName returns the effective session cookie name.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// MiddlewareConfig returns the configuration handed to the cookie middleware.
func (m *Manager) MiddlewareConfig() clientsession.Config {
	cfg := clientsession.Config{
		CookieName:     m.cookieName,
		Secret:         m.cfg.Secret,
		Duration:       m.cfg.Duration,
		ActiveDuration: m.cfg.ActiveDuration,
		Ephemeral:      false,
		HTTPOnly:       true,
		Secure:         false,
	}

	// Scoping to the parent domain breaks local routing, so only outside development.
	if !m.cfg.Environment.IsDevelopment() && m.cfg.CookieDomain != "" {
		cfg.Cookie = &clientsession.CookieOptions{Domain: m.cfg.CookieDomain}
	}

	return cfg
}

// Middleware loads the session cookie of every request and writes it back.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return m.middleware.Handler(next)
}

// GetSession wraps the payload attached by Middleware. It reports false when
// the request did not pass through the middleware.
func (m *Manager) GetSession(r *http.Request) (*View, bool) {
	sess, ok := clientsession.FromRequest(r, m.cookieName)
	if !ok {
		return nil, false
	}

	view := NewView(r, sess, m.ids, m.now)
	return view, true
}

// ResetSession drops the payload of the current session.
func (m *Manager) ResetSession(r *http.Request) error {
	view, ok := m.GetSession(r)
	if !ok {
		return ErrNoSession
	}
	view.Reset()
	return nil
}

// GetSessionID returns the legacy database session id.
//
// Deprecated: see View.SessionID.
func (m *Manager) GetSessionID(r *http.Request) (string, bool) {
	view, ok := m.GetSession(r)
	if !ok {
		return "", false
	}
	return view.SessionID()
}

func (m *Manager) GetHost(r *http.Request) (string, bool) {
	view, ok := m.GetSession(r)
	if !ok {
		return "", false
	}
	return view.Host()
}

func (m *Manager) GetUser(r *http.Request) (User, bool) {
	view, ok := m.GetSession(r)
	if !ok {
		return User{}, false
	}
	return view.User(), true
}

func (m *Manager) GetUserID(r *http.Request) string {
	user, _ := m.GetUser(r)
	return user.ID
}

func (m *Manager) GetUserAccessToken(r *http.Request) string {
	user, _ := m.GetUser(r)
	return user.AccessToken
}

func (m *Manager) HasUserAccessToken(r *http.Request) bool {
	return m.GetUserAccessToken(r) != ""
}

// SetAccessTokenValidator replaces the validator used by HasValidAccessToken.
func (m *Manager) SetAccessTokenValidator(v AccessTokenValidator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validator = v
}

func (m *Manager) accessTokenValidator() AccessTokenValidator {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.validator
}

// HasValidAccessToken returns nil only when the session holds an access
// token and the validator affirms it. The call blocks until the validator
// returns; ctx is passed through unchanged.
func (m *Manager) HasValidAccessToken(ctx context.Context, r *http.Request) error {
	return m.validateAccessToken(ctx, m.GetUserAccessToken(r))
}

func (m *Manager) validateAccessToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrNoAccessToken
	}

	v := m.accessTokenValidator()
	if v == nil {
		return ErrNoValidator
	}

	valid, err := v.ValidateAccessToken(ctx, token)
	if err != nil {
		m.logger.WarnContext(ctx, "access token validation failed",
			logger.Component("session"),
			logger.Error(err),
		)
		return errors.Join(ErrTokenValidation, err)
	}
	if !valid {
		return ErrInvalidAccessToken
	}
	return nil
}
