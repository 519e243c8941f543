package types

import (
	"fmt"
)

// ArtifactErrorCode classifies what went wrong during encoding
type ArtifactErrorCode string

const (
	// Dispatch errors
	ErrCodeUnsupportedFormat ArtifactErrorCode = "UNSUPPORTED_FORMAT"

	// Input errors
	ErrCodeInvalidInput ArtifactErrorCode = "INVALID_INPUT"

	// Container errors
	ErrCodeDuplicateEntry ArtifactErrorCode = "DUPLICATE_ENTRY"
	ErrCodeEncodeError    ArtifactErrorCode = "ENCODE_ERROR"

	// Filesystem errors
	ErrCodeIOError ArtifactErrorCode = "IO_ERROR"
)

// ArtifactError carries a classification code alongside the message, so
// callers can branch on the category without parsing error text
type ArtifactError struct {
	Code    ArtifactErrorCode      // classification code
	Message string                 // human-readable description
	Cause   error                  // wrapped lower-level error, may be nil
	Context map[string]interface{} // extra detail (entry name, format, etc.)
}

// Error renders the code and message, appending the cause when present
func (e *ArtifactError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the cause so errors.Is and errors.As can walk the chain
func (e *ArtifactError) Unwrap() error {
	return e.Cause
}

// Is matches two ArtifactErrors on code alone, which lets sentinels stand
// in for any instance of their category
func (e *ArtifactError) Is(target error) bool {
	if t, ok := target.(*ArtifactError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithContext attaches a key/value detail and returns the receiver so calls
// can be chained at the error site
func (e *ArtifactError) WithContext(key string, value interface{}) *ArtifactError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewArtifactError builds an error from a code and a fixed message
func NewArtifactError(code ArtifactErrorCode, message string) *ArtifactError {
	return &ArtifactError{
		Code:    code,
		Message: message,
	}
}

// NewArtifactErrorf is NewArtifactError with printf-style message formatting
func NewArtifactErrorf(code ArtifactErrorCode, format string, args ...interface{}) *ArtifactError {
	return &ArtifactError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError classifies an underlying error under the given code
func WrapError(code ArtifactErrorCode, message string, cause error) *ArtifactError {
	return &ArtifactError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Sentinels: one per code, for errors.Is checks at call sites
var (
	ErrUnsupportedFormat = &ArtifactError{Code: ErrCodeUnsupportedFormat}
	ErrInvalidInput      = &ArtifactError{Code: ErrCodeInvalidInput}
	ErrDuplicateEntry    = &ArtifactError{Code: ErrCodeDuplicateEntry}
	ErrEncodeError       = &ArtifactError{Code: ErrCodeEncodeError}
	ErrIOError           = &ArtifactError{Code: ErrCodeIOError}
)

// GetErrorCode reports the classification code of err, if it carries one
func GetErrorCode(err error) (ArtifactErrorCode, bool) {
	if artErr, ok := err.(*ArtifactError); ok {
		return artErr.Code, true
	}
	return "", false
}
