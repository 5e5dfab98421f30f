package clientsession

import (
	"fmt"
	"net/http"
	"time"
)

// Config describes how the session cookie is sealed and written.
type Config struct {
	CookieName string
	Secret     string

	// Duration is the lifetime of a session from its creation.
	Duration time.Duration
	// ActiveDuration extends Duration when a request arrives with less than
	// ActiveDuration left. Zero disables renewal.
	ActiveDuration time.Duration

	// Ephemeral turns the cookie into a browser-session cookie.
	Ephemeral bool
	HTTPOnly  bool
	Secure    bool

	// Cookie holds optional cookie scoping. Nil means host-only cookies on "/".
	Cookie *CookieOptions
}

// CookieOptions scopes the session cookie.
type CookieOptions struct {
	Domain   string
	Path     string
	SameSite http.SameSite
}

func (c Config) validate() error {
	if c.CookieName == "" {
		return ErrMissingCookieName
	}
	if c.Secret == "" {
		return ErrMissingSecret
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration %s", ErrInvalidDuration, c.Duration)
	}
	if c.ActiveDuration < 0 {
		return fmt.Errorf("%w: active duration %s", ErrInvalidDuration, c.ActiveDuration)
	}
	return nil
}
