package wireint

import "errors"

var (
	// ErrNegativeValue is returned when a negative big.Int is encoded as an
	// unsigned slot.
	ErrNegativeValue = errors.New("wireint: negative value for unsigned encoding")

	// ErrIntegerTooLarge is returned when a big.Int does not fit a 32-byte slot.
	ErrIntegerTooLarge = errors.New("wireint: integer too large for 32-byte slot")

	// ErrShortBuffer is returned when fewer than 32 bytes are available to decode.
	ErrShortBuffer = errors.New("wireint: buffer shorter than 32 bytes")
)
