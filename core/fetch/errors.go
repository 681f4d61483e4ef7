package fetch

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyLanguage    = errors.New("language code is required")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrMissingField     = errors.New("missing field")
)

// RequestError is returned for every failed attempt to obtain a usable
// summary, whether the transport failed or the response could not be used.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
