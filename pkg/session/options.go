package session

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithAccessTokenValidator sets the validator used by HasValidAccessToken
func WithAccessTokenValidator(v AccessTokenValidator) Option {
	return func(m *Manager) {
		m.validator = v
	}
}

// WithIDGenerator replaces the random source of anonymous ids
func WithIDGenerator(g IDGenerator) Option {
	return func(m *Manager) {
		if g != nil {
			m.ids = g
		}
	}
}

// WithLogger sets the logger shared with the cookie middleware
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock replaces time.Now for user timestamps and cookie lifetimes
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}
