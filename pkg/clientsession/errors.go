package clientsession

import "errors"

var (
	// ErrMissingSecret indicates the configuration has no secret
	ErrMissingSecret = errors.New("clientsession.missing_secret")

	// ErrMissingCookieName indicates the configuration has no cookie name
	ErrMissingCookieName = errors.New("clientsession.missing_cookie_name")

	// ErrInvalidDuration indicates a non-positive duration
	ErrInvalidDuration = errors.New("clientsession.invalid_duration")
)
