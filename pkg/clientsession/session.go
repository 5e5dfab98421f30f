package clientsession

import (
	"encoding/json"
	"maps"
	"slices"
	"time"
)

// Session is the payload of one visitor, decoded from the session cookie.
// It is owned by a single request and is not safe for concurrent use.
type Session struct {
	values    map[string]any
	createdAt time.Time
	duration  time.Duration

	snapshot []byte
	renewed  bool
	reset    bool
}

// envelope is the sealed cookie representation
type envelope struct {
	Data      map[string]any `json:"d"`
	CreatedAt int64          `json:"c"`
	Duration  int64          `json:"t"`
}

// NewSession returns an empty session created at now.
func NewSession(now time.Time, duration time.Duration) *Session {
	s := &Session{
		values:    make(map[string]any),
		createdAt: now,
		duration:  duration,
	}
	s.snapshot = s.encodeValues()
	return s
}

func fromEnvelope(env envelope) *Session {
	s := &Session{
		values:    env.Data,
		createdAt: time.UnixMilli(env.CreatedAt).UTC(),
		duration:  time.Duration(env.Duration) * time.Millisecond,
	}
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.snapshot = s.encodeValues()
	return s
}

func (s *Session) toEnvelope() envelope {
	return envelope{
		Data:      s.values,
		CreatedAt: s.createdAt.UnixMilli(),
		Duration:  s.duration.Milliseconds(),
	}
}

// Get returns the value stored under key.
func (s *Session) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present, even when its value is nil.
func (s *Session) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Set stores value under key. The value must be JSON encodable.
func (s *Session) Set(key string, value any) {
	s.values[key] = value
}

func (s *Session) Delete(key string) {
	delete(s.values, key)
}

func (s *Session) Len() int {
	return len(s.values)
}

// Keys returns the stored keys in sorted order.
func (s *Session) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// Reset drops all values. The session lifetime restarts when the response is
// committed; a reset session that stays empty clears the cookie.
func (s *Session) Reset() {
	s.values = make(map[string]any)
	s.reset = true
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) ExpiresAt() time.Time {
	return s.createdAt.Add(s.duration)
}

// expired reports whether the session lifetime has passed at now
func (s *Session) expired(now time.Time) bool {
	return now.After(s.ExpiresAt())
}

// renew extends the lifetime when less than active is left
func (s *Session) renew(now time.Time, active time.Duration) {
	if active <= 0 {
		return
	}
	if s.ExpiresAt().Sub(now) < active {
		s.duration += active
		s.renewed = true
	}
}

// changed reports whether the payload differs from what was loaded
func (s *Session) changed() bool {
	return string(s.encodeValues()) != string(s.snapshot)
}

func (s *Session) encodeValues() []byte {
	// Values that fail to encode are reported when the cookie is sealed.
	data, _ := json.Marshal(s.values)
	return data
}

// settle marks the current state as persisted
func (s *Session) settle() {
	s.snapshot = s.encodeValues()
	s.renewed = false
	s.reset = false
}
