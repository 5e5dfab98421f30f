package cookie

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"golang.org/x/crypto/hkdf"
)

const (
	keyInfo = "slimauth/cookie/v1"

	// MaxCookieSize is the largest encoded cookie value browsers reliably keep.
	MaxCookieSize = 4096
)

type Manager struct {
	aeads    []cipher.AEAD
	defaults Options
}

func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	aeads := make([]cipher.AEAD, 0, len(secrets))
	for i, s := range secrets {
		aead, err := newAEAD(s)
		if err != nil {
			return nil, fmt.Errorf("cookie: secret %d: %w", i, err)
		}
		aeads = append(aeads, aead)
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		aeads:    aeads,
		defaults: applyOptions(defaults, opts),
	}, nil
}

// Seal encodes v as JSON and encrypts it for the cookie called name.
func (m *Manager) Seal(name string, v any) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal cookie value: %w", err)
	}

	aead := m.aeads[0]
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := aead.Seal(nonce, nonce, plaintext, []byte(name))
	encoded := base64.RawURLEncoding.EncodeToString(sealed)
	if len(encoded) > MaxCookieSize {
		return "", fmt.Errorf("%w: %d bytes", ErrCookieTooLarge, len(encoded))
	}
	return encoded, nil
}

// Open reverses Seal. Every configured secret is tried in order.
func (m *Manager) Open(name, value string, v any) error {
	data, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return ErrInvalidFormat
	}

	for _, aead := range m.aeads {
		if len(data) < aead.NonceSize()+aead.Overhead() {
			return ErrInvalidFormat
		}
		nonce, ciphertext := data[:aead.NonceSize()], data[aead.NonceSize():]
		plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(name))
		if err != nil {
			continue
		}
		if err := json.Unmarshal(plaintext, v); err != nil {
			return errors.Join(ErrInvalidFormat, err)
		}
		return nil
	}

	return ErrDecryptionFailed
}

// Write seals v and sets it as cookie name on w.
func (m *Manager) Write(w http.ResponseWriter, name string, v any, opts ...Option) error {
	value, err := m.Seal(name, v)
	if err != nil {
		return err
	}
	http.SetCookie(w, m.build(name, value, applyOptions(m.defaults, opts)))
	return nil
}

// Read opens cookie name from r into v.
func (m *Manager) Read(r *http.Request, name string, v any) error {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return ErrCookieNotFound
		}
		return err
	}
	return m.Open(name, c.Value, v)
}

// Clear expires cookie name on the client.
func (m *Manager) Clear(w http.ResponseWriter, name string, opts ...Option) {
	options := applyOptions(m.defaults, opts)
	options.MaxAge = -1
	options.Expires = time.Unix(0, 0)
	http.SetCookie(w, m.build(name, "", options))
}

func (m *Manager) build(name, value string, o Options) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   o.MaxAge,
		Expires:  o.Expires,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	}
}

func newAEAD(secret string) (cipher.AEAD, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
