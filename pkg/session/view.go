package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/slimauth/pkg/clientsession"
)

// View wraps the session payload of one request.
type View struct {
	sess *clientsession.Session
	now  func() time.Time
}

// NewView wraps sess and initialises its defaults from r. Initialisation is
// idempotent: only missing fields are filled in.
func NewView(r *http.Request, sess *clientsession.Session, ids IDGenerator, now func() time.Time) *View {
	if ids == nil {
		ids = randomIDGenerator{}
	}
	if now == nil {
		now = time.Now
	}

	v := &View{sess: sess, now: now}
	v.init(r, ids)
	return v
}

func (v *View) init(r *http.Request, ids IDGenerator) {
	s := v.sess

	if s.Has(keyLegacySessionID) {
		s.Delete(keyLegacySessionID)
	}
	if s.Has(keyLegacyUser) {
		s.Delete(keyLegacyUser)
	}

	if val, _ := s.Get(keyOAuth); !truthy(val) {
		s.Set(keyOAuth, map[string]any{})
	}

	if val, _ := s.Get(keyHost); !truthy(val) && r != nil && r.Host != "" {
		s.Set(keyHost, r.Host)
	}

	anon, _ := s.Get(keyUserAnon)
	userID, _ := s.Get(keyUserID)
	if !truthy(anon) && !truthy(userID) {
		s.Set(keyUserAnon, map[string]any{"id": AnonIDPrefix + ids.NewID()})
	}

	if val, _ := s.Get(keyFlags); !truthy(val) {
		s.Set(keyFlags, map[string]any{})
	}
}

// SetUser stores the authenticated identity together with the current time.
func (v *View) SetUser(u User) (User, error) {
	if u.ID == "" {
		return User{}, joinInvalidUser(ErrMissingUserID)
	}
	if u.AccessToken == "" {
		return User{}, joinInvalidUser(ErrMissingAccessToken)
	}

	v.sess.Set(keyUserID, u.ID)
	v.sess.Set(keyUserAccessToken, u.AccessToken)
	v.sess.Set(keyUserSetAt, v.now().UnixMilli())

	return v.User(), nil
}

// User returns the stored identity. Fields that were never set are zero.
func (v *View) User() User {
	id, _ := v.sess.Get(keyUserID)
	token, _ := v.sess.Get(keyUserAccessToken)
	setAt, _ := v.sess.Get(keyUserSetAt)

	u := User{ID: stringValue(id), AccessToken: stringValue(token)}
	if t, ok := millis(setAt); ok {
		u.SetAt = t
	}
	return u
}

// IsAuthenticated reports whether a user id is stored.
func (v *View) IsAuthenticated() bool {
	return v.User().ID != ""
}

// AnonUser returns the anonymous identity. It is absent when the session
// already had an authenticated user when it was first initialised.
func (v *View) AnonUser() (AnonUser, bool) {
	val, ok := v.sess.Get(keyUserAnon)
	if !ok {
		return AnonUser{}, false
	}
	m, ok := val.(map[string]any)
	if !ok {
		return AnonUser{}, false
	}
	id := stringValue(m["id"])
	return AnonUser{ID: id}, id != ""
}

// Host returns the host the session was first seen on.
func (v *View) Host() (string, bool) {
	val, _ := v.sess.Get(keyHost)
	host := stringValue(val)
	return host, host != ""
}

// SessionID returns the legacy database session id.
//
// Deprecated: the legacy id is removed on every request, so this always
// reports false. It is kept for callers migrating from older releases.
func (v *View) SessionID() (string, bool) {
	val, _ := v.sess.Get(keyLegacySessionID)
	id := stringValue(val)
	return id, id != ""
}

// CustomField returns the value stored under key when it is truthy, otherwise def.
func (v *View) CustomField(key string, def any) any {
	if val, _ := v.sess.Get(key); truthy(val) {
		return val
	}
	return def
}

// SetCustomField stores value under key. A value that cannot be encoded
// as JSON is rejected with ErrInvalidCustomField and the payload is left
// unchanged, so the rest of the session still persists.
func (v *View) SetCustomField(key string, value any) error {
	if _, err := json.Marshal(value); err != nil {
		return errors.Join(ErrInvalidCustomField, err)
	}
	v.sess.Set(key, value)
	return nil
}

// EnsureCustomFieldObject replaces the value under key with an empty object
// unless it already holds an object or an array.
func (v *View) EnsureCustomFieldObject(key string) {
	if val, _ := v.sess.Get(key); isObject(val) {
		return
	}
	v.sess.Set(key, map[string]any{})
}

// Flag reports whether the named flag is on.
func (v *View) Flag(name string) bool {
	on, _ := v.flags()[name].(bool)
	return on
}

// SetFlag switches the named flag.
func (v *View) SetFlag(name string, on bool) {
	v.flags()[name] = on
}

func (v *View) flags() map[string]any {
	if m, ok := v.mapField(keyFlags); ok {
		return m
	}
	m := map[string]any{}
	v.sess.Set(keyFlags, m)
	return m
}

// OAuth returns the OAuth scratch object. Writes to it are persisted.
func (v *View) OAuth() map[string]any {
	if m, ok := v.mapField(keyOAuth); ok {
		return m
	}
	m := map[string]any{}
	v.sess.Set(keyOAuth, m)
	return m
}

// Reset drops the whole payload. The next View built on the session
// initialises the defaults again, including a new anonymous id.
func (v *View) Reset() {
	v.sess.Reset()
}

func (v *View) mapField(key string) (map[string]any, bool) {
	val, _ := v.sess.Get(key)
	m, ok := val.(map[string]any)
	return m, ok
}
