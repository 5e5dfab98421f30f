package session

import (
	"time"

	"github.com/dmitrymomot/slimauth/pkg/environment"
)

const (
	// DefaultCookieName is used when Config.CookieName is empty.
	DefaultCookieName = "session"

	// DefaultDuration is the session lifetime used when Config.Duration is zero.
	DefaultDuration = 60 * 24 * time.Hour

	// DefaultActiveDuration is the renewal window used when Config.ActiveDuration is zero.
	DefaultActiveDuration = 30 * 24 * time.Hour
)

// Config holds session configuration
type Config struct {
	// Secret seals the session cookie. Required.
	Secret string `env:"SESSION_SECRET"`

	// CookieName is the base name of the session cookie (default: "session")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session"`
	// CookieNameSuffix is appended as "<name>__<suffix>" when set
	CookieNameSuffix string `env:"SESSION_COOKIE_NAME_SUFFIX"`

	// Duration is the session lifetime (default: 60 days)
	Duration time.Duration `env:"SESSION_DURATION" envDefault:"1440h"`
	// ActiveDuration extends the lifetime of sessions used within this window of expiry (default: 30 days)
	ActiveDuration time.Duration `env:"SESSION_ACTIVE_DURATION" envDefault:"720h"`

	// Environment selects development behaviour; outside development the
	// cookie is scoped to CookieDomain so subdomains share the session.
	Environment environment.Environment `env:"APP_ENV" envDefault:"development"`
	// CookieDomain is the shared parent domain, e.g. ".example.com"
	CookieDomain string `env:"SESSION_COOKIE_DOMAIN"`
}

// DefaultConfig returns default session configuration without a secret
func DefaultConfig() Config {
	return Config{
		CookieName:     DefaultCookieName,
		Duration:       DefaultDuration,
		ActiveDuration: DefaultActiveDuration,
		Environment:    environment.Development,
	}
}

// EffectiveCookieName composes the base cookie name and the optional suffix.
func (c Config) EffectiveCookieName() string {
	name := c.CookieName
	if name == "" {
		name = DefaultCookieName
	}
	if c.CookieNameSuffix != "" {
		return name + "__" + c.CookieNameSuffix
	}
	return name
}

func (c Config) withDefaults() Config {
	if c.CookieName == "" {
		c.CookieName = DefaultCookieName
	}
	// Only unset durations take defaults; negative values fail validation.
	if c.Duration == 0 {
		c.Duration = DefaultDuration
	}
	if c.ActiveDuration == 0 {
		c.ActiveDuration = DefaultActiveDuration
	}
	return c
}
