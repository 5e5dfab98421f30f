// Package cookie seals arbitrary values into HTTP cookies.
//
// A Manager is built from one or more secrets. Each secret is stretched into
// an AES-256 key with HKDF-SHA256, so secrets of any length are accepted. The
// first secret seals new values, every secret is tried when opening, which
// allows rotating keys without logging visitors out.
//
// Sealed values are JSON encoded, encrypted with AES-GCM using the cookie
// name as additional data, and base64url encoded. A value sealed for one
// cookie name cannot be replayed under another.
//
// # Usage
//
//	man, err := cookie.New([]string{os.Getenv("SESSION_SECRET")})
//	if err != nil { log.Fatal(err) }
//
//	_ = man.Write(w, "session", map[string]any{"theme": "dark"})
//
//	var data map[string]any
//	err = man.Read(r, "session", &data)
//
// # Error Handling
//
// Sentinel errors such as ErrCookieNotFound, ErrInvalidFormat and
// ErrDecryptionFailed are returned so callers can use errors.Is.
package cookie
