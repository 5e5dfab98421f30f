package cookie_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrymomot/slimauth/pkg/cookie"
)

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		secrets []string
		wantErr error
	}{
		{name: "no secrets", secrets: nil, wantErr: cookie.ErrNoSecret},
		{name: "empty secrets", secrets: []string{"", ""}, wantErr: cookie.ErrNoSecret},
		{name: "short secret accepted", secrets: []string{"short"}, wantErr: nil},
		{name: "rotation", secrets: []string{"new-secret", "old-secret"}, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := cookie.New(tt.secrets)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestManager_SealOpen(t *testing.T) {
	t.Parallel()
	m, err := cookie.New([]string{"test-secret"})
	if err != nil {
		t.Fatal(err)
	}

	in := map[string]any{"user": "u1", "count": 3}
	sealed, err := m.Seal("session", in)
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	if strings.Contains(sealed, "u1") {
		t.Errorf("sealed value leaks plaintext: %s", sealed)
	}

	var out map[string]any
	if err := m.Open("session", sealed, &out); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if out["user"] != "u1" || out["count"] != float64(3) {
		t.Errorf("Open() = %v, want user=u1 count=3", out)
	}

	t.Run("unique nonce per seal", func(t *testing.T) {
		again, err := m.Seal("session", in)
		if err != nil {
			t.Fatal(err)
		}
		if again == sealed {
			t.Error("two seals of the same value are identical")
		}
	})

	t.Run("bound to cookie name", func(t *testing.T) {
		var v map[string]any
		if err := m.Open("other", sealed, &v); !errors.Is(err, cookie.ErrDecryptionFailed) {
			t.Errorf("Open() with other name error = %v, want %v", err, cookie.ErrDecryptionFailed)
		}
	})

	t.Run("tampered", func(t *testing.T) {
		b := []byte(sealed)
		i := len(b) / 2
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		var v map[string]any
		if err := m.Open("session", string(b), &v); err == nil {
			t.Error("Open() accepted a tampered value")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		var v map[string]any
		if err := m.Open("session", "!!not-base64!!", &v); !errors.Is(err, cookie.ErrInvalidFormat) {
			t.Errorf("Open() error = %v, want %v", err, cookie.ErrInvalidFormat)
		}
		if err := m.Open("session", "YWJj", &v); !errors.Is(err, cookie.ErrInvalidFormat) {
			t.Errorf("Open() short value error = %v, want %v", err, cookie.ErrInvalidFormat)
		}
	})
}

func TestManager_KeyRotation(t *testing.T) {
	t.Parallel()
	oldMgr, _ := cookie.New([]string{"old-secret"})
	rotated, _ := cookie.New([]string{"new-secret", "old-secret"})
	newOnly, _ := cookie.New([]string{"new-secret"})

	sealed, err := oldMgr.Seal("session", "payload")
	if err != nil {
		t.Fatal(err)
	}

	var v string
	if err := rotated.Open("session", sealed, &v); err != nil || v != "payload" {
		t.Errorf("rotated Open() = %q, %v; want payload, nil", v, err)
	}
	if err := newOnly.Open("session", sealed, &v); !errors.Is(err, cookie.ErrDecryptionFailed) {
		t.Errorf("newOnly Open() error = %v, want %v", err, cookie.ErrDecryptionFailed)
	}
}

func TestManager_WriteRead(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{"test-secret"}, cookie.WithSecure(true))

	w := httptest.NewRecorder()
	if err := m.Write(w, "prefs", map[string]string{"theme": "dark"}, cookie.WithMaxAge(60), cookie.WithDomain("example.com")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	c := cookies[0]
	if !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteLaxMode || c.Path != "/" {
		t.Errorf("unexpected attributes: %+v", c)
	}
	if c.MaxAge != 60 || c.Domain != "example.com" {
		t.Errorf("MaxAge = %d, Domain = %q", c.MaxAge, c.Domain)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	var got map[string]string
	if err := m.Read(r, "prefs", &got); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got["theme"] != "dark" {
		t.Errorf("Read() = %v", got)
	}

	empty := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := m.Read(empty, "prefs", &got); !errors.Is(err, cookie.ErrCookieNotFound) {
		t.Errorf("Read() missing error = %v, want %v", err, cookie.ErrCookieNotFound)
	}
}

func TestManager_Clear(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{"test-secret"})

	w := httptest.NewRecorder()
	m.Clear(w, "session")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	if cookies[0].MaxAge >= 0 || cookies[0].Value != "" {
		t.Errorf("Clear() cookie = %+v, want expired empty cookie", cookies[0])
	}
}

func TestManager_TooLarge(t *testing.T) {
	t.Parallel()
	m, _ := cookie.New([]string{"test-secret"})

	_, err := m.Seal("session", strings.Repeat("x", cookie.MaxCookieSize))
	if !errors.Is(err, cookie.ErrCookieTooLarge) {
		t.Errorf("Seal() error = %v, want %v", err, cookie.ErrCookieTooLarge)
	}
}
