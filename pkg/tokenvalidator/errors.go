package tokenvalidator

import "errors"

var (
	ErrMissingSecret        = errors.New("tokenvalidator.missing_secret")
	ErrUnsupportedAlgorithm = errors.New("tokenvalidator.unsupported_algorithm")
	ErrNilClient            = errors.New("tokenvalidator.nil_client")
	ErrMissingSubject       = errors.New("tokenvalidator.missing_subject")
)
