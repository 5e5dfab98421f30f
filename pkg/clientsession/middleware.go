package clientsession

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/slimauth/pkg/cookie"
)

// Middleware loads and commits the cookie-backed session of every request.
type Middleware struct {
	cfg     Config
	cookies *cookie.Manager
	logger  *slog.Logger
	now     func() time.Time
}

// New validates cfg and returns a Middleware.
func New(cfg Config, opts ...Option) (*Middleware, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cookies, err := cookie.New([]string{cfg.Secret}, cookieOptions(cfg)...)
	if err != nil {
		return nil, errors.Join(ErrMissingSecret, err)
	}

	m := &Middleware{
		cfg:     cfg,
		cookies: cookies,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Config returns the configuration the middleware was built with.
func (m *Middleware) Config() Config {
	return m.cfg
}

// Handler attaches the session to the request context and commits it
// before the first byte of the response is written.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := m.Load(r)
		cw := &commitWriter{ResponseWriter: w, commit: func() {
			if err := m.Commit(w, sess); err != nil {
				m.logger.ErrorContext(r.Context(), "failed to commit session cookie",
					slog.String("cookie", m.cfg.CookieName),
					slog.String("error", err.Error()),
				)
			}
		}}

		ctx := WithSession(r.Context(), m.cfg.CookieName, sess)
		next.ServeHTTP(cw, r.WithContext(ctx))
		cw.flush()
	})
}

// Load opens the session cookie of r. A missing, undecryptable or expired
// cookie yields a fresh empty session.
func (m *Middleware) Load(r *http.Request) *Session {
	now := m.now()

	var env envelope
	if err := m.cookies.Read(r, m.cfg.CookieName, &env); err != nil {
		if !errors.Is(err, cookie.ErrCookieNotFound) {
			m.log(r.Context(), "discarding unreadable session cookie", err)
		}
		return NewSession(now, m.cfg.Duration)
	}

	sess := fromEnvelope(env)
	if sess.expired(now) {
		m.log(r.Context(), "discarding expired session cookie", nil)
		return NewSession(now, m.cfg.Duration)
	}

	sess.renew(now, m.cfg.ActiveDuration)
	return sess
}

// Commit writes the session cookie when the session changed, was renewed or
// was reset. It is a no-op otherwise.
func (m *Middleware) Commit(w http.ResponseWriter, sess *Session) error {
	now := m.now()

	if sess.reset {
		sess.createdAt = now
		sess.duration = m.cfg.Duration
		if sess.Len() == 0 {
			m.cookies.Clear(w, m.cfg.CookieName)
			sess.settle()
			return nil
		}
	} else if !sess.renewed && !sess.changed() {
		return nil
	}

	var opts []cookie.Option
	if !m.cfg.Ephemeral {
		maxAge := int(sess.ExpiresAt().Sub(now) / time.Second)
		opts = append(opts, cookie.WithMaxAge(max(maxAge, 1)))
	}

	if err := m.cookies.Write(w, m.cfg.CookieName, sess.toEnvelope(), opts...); err != nil {
		return err
	}
	sess.settle()
	return nil
}

func (m *Middleware) log(ctx context.Context, msg string, err error) {
	attrs := []slog.Attr{slog.String("cookie", m.cfg.CookieName)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	m.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

func cookieOptions(cfg Config) []cookie.Option {
	opts := []cookie.Option{
		cookie.WithHTTPOnly(cfg.HTTPOnly),
		cookie.WithSecure(cfg.Secure),
	}
	if cfg.Cookie != nil {
		if cfg.Cookie.Domain != "" {
			opts = append(opts, cookie.WithDomain(cfg.Cookie.Domain))
		}
		if cfg.Cookie.Path != "" {
			opts = append(opts, cookie.WithPath(cfg.Cookie.Path))
		}
		if cfg.Cookie.SameSite != 0 {
			opts = append(opts, cookie.WithSameSite(cfg.Cookie.SameSite))
		}
	}
	return opts
}

// commitWriter runs commit once, right before headers are sent.
type commitWriter struct {
	http.ResponseWriter
	commit    func()
	committed bool
}

func (w *commitWriter) flush() {
	if w.committed {
		return
	}
	w.committed = true
	w.commit()
}

func (w *commitWriter) WriteHeader(code int) {
	w.flush()
	w.ResponseWriter.WriteHeader(code)
}

func (w *commitWriter) Write(b []byte) (int, error) {
	w.flush()
	return w.ResponseWriter.Write(b)
}

func (w *commitWriter) Flush() {
	w.flush()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *commitWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
