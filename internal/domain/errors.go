package domain

import (
	"errors"
	"fmt"
)

var (
	ErrFetch      = errors.New("fetch failed")
	ErrValidation = errors.New("invalid query")
)

// ValidationError is returned when query parameters cannot form a request
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for a field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrValidation) match
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// FetchErrorKind classifies fetch failures
type FetchErrorKind string

const (
	FetchErrorMalformed FetchErrorKind = "malformed"
	FetchErrorStatus    FetchErrorKind = "status"
	FetchErrorTransport FetchErrorKind = "transport"
)

// FetchError is returned when the listing call does not yield a result set
type FetchError struct {
	Err        error
	Kind       FetchErrorKind
	StatusCode int // Set for FetchErrorStatus
}

// NewFetchError wraps err as a FetchError of the given kind
func NewFetchError(kind FetchErrorKind, statusCode int, err error) *FetchError {
	return &FetchError{Err: err, Kind: kind, StatusCode: statusCode}
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchErrorStatus:
		return fmt.Sprintf("request failed with status %d: %v", e.StatusCode, e.Err)
	case FetchErrorMalformed:
		return fmt.Sprintf("malformed response: %v", e.Err)
	default:
		return fmt.Sprintf("request failed: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFetch) match
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// IsValidation reports whether err is or wraps a ValidationError
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsFetch reports whether err is or wraps a FetchError
func IsFetch(err error) bool {
	return errors.Is(err, ErrFetch)
}

// StatusCode returns the upstream HTTP status of a FetchError, or 0
func StatusCode(err error) int {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.StatusCode
	}
	return 0
}
