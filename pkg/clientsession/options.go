package clientsession

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Middleware
type Option func(*Middleware)

// WithLogger sets the logger used for cookie decode and commit failures
func WithLogger(l *slog.Logger) Option {
	return func(m *Middleware) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock replaces time.Now; used by tests to move through session lifetimes
func WithClock(now func() time.Time) Option {
	return func(m *Middleware) {
		if now != nil {
			m.now = now
		}
	}
}
