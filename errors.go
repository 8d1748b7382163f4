package shroud

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrLengthMismatch indicates a byte slice did not match the expected
	// fixed size. Input is never truncated or padded to fit.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrInvalidEncoding indicates encoded input failed strict validation
	// (odd-length hex, non-hex characters, invalid base64url alphabet).
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrRandomSource indicates the system random source could not supply
	// entropy. There is no fallback to a weaker source.
	ErrRandomSource = errors.New("random source unavailable")

	// ErrNotSerializable indicates an attempt to marshal a secret wrapper.
	// Secrets never pass through encoders; use the explicit encode helpers
	// on an exposed view instead.
	ErrNotSerializable = errors.New("secret is not serializable")

	// ErrMemoryLock indicates a best-effort memory lock or unlock failed
	// or is unsupported on this platform.
	ErrMemoryLock = errors.New("memory lock failed")
)

// LengthError reports a fixed-size construction with wrong-sized input.
// It wraps ErrLengthMismatch with the expected and actual byte counts.
type LengthError struct {
	Want int // Expected byte count (the fixed size)
	Got  int // Actual byte count supplied
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: want %d bytes, got %d", ErrLengthMismatch.Error(), e.Want, e.Got)
}

func (e *LengthError) Unwrap() error {
	return ErrLengthMismatch
}

// EncodingError reports rejected encoded input.
// It wraps ErrInvalidEncoding with the encoding name and the underlying cause.
type EncodingError struct {
	Encoding string // Encoding that rejected the input ("hex", "base64url")
	Cause    error  // Original error from the decoder, if any
}

func (e *EncodingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", ErrInvalidEncoding.Error(), e.Encoding, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidEncoding.Error(), e.Encoding)
}

func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}

// RandomSourceError reports a failed read from the system random source.
// It wraps ErrRandomSource with the original read error.
type RandomSourceError struct {
	Cause error // Original error from crypto/rand
}

func (e *RandomSourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", ErrRandomSource.Error(), e.Cause)
	}
	return ErrRandomSource.Error()
}

func (e *RandomSourceError) Unwrap() error {
	return ErrRandomSource
}

// newLengthError creates a LengthError for fixed-size construction failures.
func newLengthError(want, got int) error {
	return &LengthError{Want: want, Got: got}
}

// newEncodingError creates an EncodingError for rejected encoded input.
func newEncodingError(encoding string, cause error) error {
	return &EncodingError{Encoding: encoding, Cause: cause}
}

// newRandomSourceError creates a RandomSourceError from a crypto/rand failure.
func newRandomSourceError(cause error) error {
	return &RandomSourceError{Cause: cause}
}
