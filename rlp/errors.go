package rlp

import "errors"

var (
	// ErrTruncated is returned whenever a header or payload runs past the
	// end of the available buffer.
	ErrTruncated = errors.New("rlp: truncated input")

	// ErrNonCanonicalSize is returned in strict mode when a long-string or
	// long-list header encodes a length that a short form could have
	// represented, or when its length-of-length has a leading zero byte.
	ErrNonCanonicalSize = errors.New("rlp: non-canonical size encoding")

	// ErrNonCanonicalSingleByte is returned in strict mode for a one-byte
	// string header (0x81..0xb7 range byte count of 1) whose payload byte
	// is itself < 0x80 — it should have been encoded as that single byte
	// with no header at all.
	ErrNonCanonicalSingleByte = errors.New("rlp: single byte should have no string header")

	// ErrExpectedList is returned when Elements is called on a non-list Item.
	ErrExpectedList = errors.New("rlp: item is not a list")

	// ErrExpectedString is returned when a string-only accessor is called
	// on a list Item.
	ErrExpectedString = errors.New("rlp: item is not a string")

	// ErrElementOverflowsList is returned when walking a list's elements
	// and a child item's encoded length would extend past its parent
	// list's declared end.
	ErrElementOverflowsList = errors.New("rlp: element extends past enclosing list")
)
