package clientsession

import (
	"context"
	"net/http"
)

type contextKey struct {
	name string
}

// WithSession attaches s to ctx under the cookie name.
func WithSession(ctx context.Context, cookieName string, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{name: cookieName}, s)
}

// FromContext returns the session attached under the cookie name.
func FromContext(ctx context.Context, cookieName string) (*Session, bool) {
	s, ok := ctx.Value(contextKey{name: cookieName}).(*Session)
	return s, ok && s != nil
}

// FromRequest is FromContext for the request context.
func FromRequest(r *http.Request, cookieName string) (*Session, bool) {
	return FromContext(r.Context(), cookieName)
}
