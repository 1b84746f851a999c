package abi

import (
	"errors"
	"fmt"
)

// Global sentinel errors, following the source generator's convention of
// package-level Err* values instead of ad hoc dynamic errors, so callers can
// errors.Is against a stable taxonomy (spec §7).
var (
	// TypeParseError sentinels.
	ErrTypeStringTooLong  = errors.New("abi: type string exceeds maximum length")
	ErrUnknownType        = errors.New("abi: unknown type token")
	ErrMalformedTypeSize  = errors.New("abi: malformed width or scale suffix")
	ErrTrailingGarbage    = errors.New("abi: trailing characters after type")
	ErrNameCountMismatch  = errors.New("abi: element name count does not match arity")
	ErrUnbalancedBrackets = errors.New("abi: unbalanced parentheses or brackets")

	// ValidationError sentinels.
	ErrNilValue          = errors.New("abi: nil value where a value was required")
	ErrWrongValueClass   = errors.New("abi: value has the wrong runtime class for its type")
	ErrArrayLengthMismatch = errors.New("abi: fixed array length mismatch")
	ErrIntegerOutOfRange = errors.New("abi: integer out of range for its declared width")
	ErrInvalidUTF8       = errors.New("abi: string is not valid UTF-8")

	// DecodeError sentinels.
	ErrTruncatedInput     = errors.New("abi: truncated input")
	ErrDirtyPadding       = errors.New("abi: non-zero padding bytes")
	ErrIllegalBoolByte    = errors.New("abi: illegal boolean encoding")
	ErrBackwardsJump      = errors.New("abi: illegal backwards offset jump")
	ErrForwardSkipDenied  = errors.New("abi: forward-skipping offset denied in strict mode")
	ErrOffsetOutOfRange   = errors.New("abi: offset exceeds 31-bit bound")
	ErrTrailingBytes      = errors.New("abi: unconsumed trailing bytes after decode")

	// PackedDecodeError sentinels.
	ErrPackedAmbiguous      = errors.New("abi: packed decode has more than one dynamic element")
	ErrPackedZeroLenElement = errors.New("abi: packed decode of zero-length array elements is ambiguous")
)

// pathError attaches a decode/validate traversal path ("tuple index 2: array
// index 0: ...") to a sentinel error, unwound as the recursive
// validate/decode calls return (spec §4.4.2, §7).
type pathError struct {
	err  error
	path string
}

func (e *pathError) Error() string {
	if e.path == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.path, e.err.Error())
}

func (e *pathError) Unwrap() error { return e.err }

// withPath prepends a path segment to err, composing with any existing path
// already attached by an inner frame.
func withPath(err error, segment string) error {
	if err == nil {
		return nil
	}
	var pe *pathError
	if errors.As(err, &pe) {
		if pe.path == "" {
			return &pathError{err: pe.err, path: segment}
		}
		return &pathError{err: pe.err, path: segment + ": " + pe.path}
	}
	return &pathError{err: err, path: segment}
}

func tupleIndexPath(i int) string { return fmt.Sprintf("tuple index %d", i) }
func arrayIndexPath(i int) string { return fmt.Sprintf("array index %d", i) }
