package cookie

import "errors"

var (
	ErrNoSecret         = errors.New("cookie.no_secret")
	ErrCookieNotFound   = errors.New("cookie.not_found")
	ErrInvalidFormat    = errors.New("cookie.invalid_format")
	ErrDecryptionFailed = errors.New("cookie.decryption_failed")
	ErrCookieTooLarge   = errors.New("cookie.too_large")
)
