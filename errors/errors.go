// Package errors defines the typed errors raised by the value-encoding layer.
//
// Every failure in this module is a deterministic decode or validation error.
// Errors are raised at the point of detection and propagate unchanged to the
// caller; nothing in this layer retries or coerces a failure to a default.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind categorizes an error raised by this module.
type Kind int

const (
	// KindMalformedLiteral indicates a literal token with the wrong length,
	// alphabet, or padding for its claimed encoding.
	KindMalformedLiteral Kind = iota
	// KindChecksumMismatch indicates an address whose embedded checksum does
	// not match the checksum computed from its public key bytes.
	KindChecksumMismatch
	// KindIndexOutOfRange indicates a positional lookup outside a list's bounds.
	KindIndexOutOfRange
	// KindType indicates a value of the wrong runtime type for an operation.
	KindType
)

// String returns the string representation of the error kind.
func (k Kind) String() string {
	switch k {
	case KindMalformedLiteral:
		return "malformed literal"
	case KindChecksumMismatch:
		return "checksum mismatch"
	case KindIndexOutOfRange:
		return "index out of range"
	case KindType:
		return "type error"
	default:
		return "error"
	}
}

// Error is a categorized error with an underlying cause.
type Error struct {
	kind Kind
	err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Kind returns the category of this error.
func (e *Error) Kind() Kind {
	return e.kind
}

// New wraps err with the given kind.
func New(kind Kind, err error) *Error {
	return &Error{kind: kind, err: err}
}

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, err: fmt.Errorf(format, args...)}
}

// MalformedLiteralf returns a malformed-literal error.
func MalformedLiteralf(format string, args ...any) *Error {
	return newf(KindMalformedLiteral, format, args...)
}

// ChecksumMismatchf returns a checksum-mismatch error.
func ChecksumMismatchf(format string, args ...any) *Error {
	return newf(KindChecksumMismatch, format, args...)
}

// IndexOutOfRangef returns an index-out-of-range error.
func IndexOutOfRangef(format string, args ...any) *Error {
	return newf(KindIndexOutOfRange, format, args...)
}

// TypeErrorf returns a type error.
func TypeErrorf(format string, args ...any) *Error {
	return newf(KindType, format, args...)
}

// HasKind reports whether any error in err's chain has the given kind.
func HasKind(err error, kind Kind) bool {
	var e *Error
	return stderrors.As(err, &e) && e.kind == kind
}

// IsMalformedLiteral reports whether err is a malformed-literal error.
func IsMalformedLiteral(err error) bool {
	return HasKind(err, KindMalformedLiteral)
}

// IsChecksumMismatch reports whether err is a checksum-mismatch error.
func IsChecksumMismatch(err error) bool {
	return HasKind(err, KindChecksumMismatch)
}

// IsIndexOutOfRange reports whether err is an index-out-of-range error.
func IsIndexOutOfRange(err error) bool {
	return HasKind(err, KindIndexOutOfRange)
}

// IsType reports whether err is a type error.
func IsType(err error) bool {
	return HasKind(err, KindType)
}
