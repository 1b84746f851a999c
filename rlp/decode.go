package rlp

import "github.com/ethwire/abicore/internal/wireint"

// header describes the parsed prefix of one RLP item: whether it is a
// list, where its payload begins relative to the start of the buffer it
// was parsed from, and the payload's length (spec §4.5, the five header
// byte ranges 0x00-0x7f / 0x80-0xb7 / 0xb8-0xbf / 0xc0-0xf7 / 0xf8-0xff).
type header struct {
	isList    bool
	dataIndex int // offset of payload, counted from the start of the parsed buffer
	dataLength int
}

// parseHeader reads the header at the start of buf. strict rejects any
// encoding that is not the unique canonical one for its value (spec §9):
// a long-form length that a short form could represent, a length-of-length
// with a leading zero byte, or a single payload byte encoded with a string
// header instead of standing for itself.
func parseHeader(buf []byte, strict bool) (header, error) {
	if len(buf) == 0 {
		return header{}, ErrTruncated
	}
	b0 := buf[0]

	switch {
	case b0 < 0x80:
		// A single byte is its own RLP encoding; no header at all.
		return header{isList: false, dataIndex: 0, dataLength: 1}, nil

	case b0 <= 0xb7:
		// Only the header-structure and (for strict mode) the single
		// payload-byte canonical check are validated here; whether the
		// full payload actually fits the buffer is the caller's job
		// (wrap checks the whole buffer, Stream checks its io.Reader).
		length := int(b0 - 0x80)
		if strict && length == 1 {
			if len(buf) < 2 {
				return header{}, ErrTruncated
			}
			if buf[1] < 0x80 {
				return header{}, ErrNonCanonicalSingleByte
			}
		}
		return header{isList: false, dataIndex: 1, dataLength: length}, nil

	case b0 <= 0xbf:
		lenOfLen := int(b0 - 0xb7)
		if len(buf) < 1+lenOfLen {
			return header{}, ErrTruncated
		}
		lenBytes := buf[1 : 1+lenOfLen]
		if strict && lenBytes[0] == 0 {
			return header{}, ErrNonCanonicalSize
		}
		length, ok := decodeBigEndianLen(lenBytes)
		if !ok {
			return header{}, ErrTruncated
		}
		if strict && length < 56 {
			return header{}, ErrNonCanonicalSize
		}
		return header{isList: false, dataIndex: 1 + lenOfLen, dataLength: length}, nil

	case b0 <= 0xf7:
		length := int(b0 - 0xc0)
		return header{isList: true, dataIndex: 1, dataLength: length}, nil

	default: // b0 <= 0xff
		lenOfLen := int(b0 - 0xf7)
		if len(buf) < 1+lenOfLen {
			return header{}, ErrTruncated
		}
		lenBytes := buf[1 : 1+lenOfLen]
		if strict && lenBytes[0] == 0 {
			return header{}, ErrNonCanonicalSize
		}
		length, ok := decodeBigEndianLen(lenBytes)
		if !ok {
			return header{}, ErrTruncated
		}
		if strict && length < 56 {
			return header{}, ErrNonCanonicalSize
		}
		return header{isList: true, dataIndex: 1 + lenOfLen, dataLength: length}, nil
	}
}

// decodeBigEndianLen reads a big-endian byte-length field, bounding it so
// it can never overflow int on any supported platform. The accumulation
// itself is internal/wireint's GetLong, the same primitive Component A
// uses for its own minimal-length integers.
func decodeBigEndianLen(b []byte) (int, bool) {
	if len(b) > 8 {
		return 0, false
	}
	n := wireint.GetLong(b, 0, len(b))
	if n > uint64(^uint(0)>>1) {
		return 0, false
	}
	return int(n), true
}
