package session

import "errors"

var (
	// ErrMissingSecret indicates the manager was configured without a signing secret
	ErrMissingSecret = errors.New("session.missing_secret")

	// ErrInvalidUser is the parent of the user validation errors
	ErrInvalidUser = errors.New("session.invalid_user")

	// ErrMissingUserID indicates SetUser was called without an id
	ErrMissingUserID = errors.New("session.missing_user_id")

	// ErrMissingAccessToken indicates SetUser was called without an access token
	ErrMissingAccessToken = errors.New("session.missing_access_token")

	// ErrNoSession indicates the request carries no session payload
	ErrNoSession = errors.New("session.not_found")

	// ErrNoAccessToken indicates the session holds no access token
	ErrNoAccessToken = errors.New("session.no_access_token")

	// ErrNoValidator indicates no access token validator is configured
	ErrNoValidator = errors.New("session.no_validator")

	// ErrInvalidAccessToken indicates the validator rejected the access token
	ErrInvalidAccessToken = errors.New("session.invalid_access_token")

	// ErrInvalidCustomField indicates a custom field value is not JSON encodable
	ErrInvalidCustomField = errors.New("session.invalid_custom_field")

	// ErrTokenValidation indicates the validator itself failed
	ErrTokenValidation = errors.New("session.token_validation_failed")
)

func joinInvalidUser(err error) error {
	return errors.Join(ErrInvalidUser, err)
}
