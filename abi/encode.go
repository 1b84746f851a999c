package abi

import (
	"math/big"
	"unicode/utf8"

	"github.com/ethwire/abicore/internal/wireint"
)

// Validate traverses value against t, returning its total encoded byte
// length, or a ValidationError-class sentinel wrapped with a "tuple index
// i: array index j: ..." path (spec §4.4.2). It allocates no output buffer,
// but it is not allocation-free: arrays and slices expand their element type
// into a temporary []Type, and signed range checks use a scratch big.Int.
func (t *Type) Validate(v Value) (int, error) {
	if !v.IsValid() {
		return 0, ErrNilValue
	}

	switch t.kind {
	case KindBool:
		if v.kind != KindBool {
			return 0, ErrWrongValueClass
		}
		return 32, nil

	case KindAddress:
		if v.kind != KindAddress {
			return 0, ErrWrongValueClass
		}
		return 32, nil

	case KindFunction:
		b, ok := v.AsBytes()
		if !ok {
			return 0, ErrWrongValueClass
		}
		if len(b) != 24 {
			return 0, ErrArrayLengthMismatch
		}
		return 32, nil

	case KindUint:
		n, ok := v.AsBigInt()
		if !ok {
			return 0, ErrWrongValueClass
		}
		if !fitsUnsigned(n, t.bitWidth) {
			return 0, ErrIntegerOutOfRange
		}
		return 32, nil

	case KindInt:
		n, ok := v.AsBigInt()
		if !ok {
			return 0, ErrWrongValueClass
		}
		if !fitsSigned(n, t.bitWidth) {
			return 0, ErrIntegerOutOfRange
		}
		return 32, nil

	case KindUfixed:
		n, ok := v.AsBigInt()
		if !ok {
			return 0, ErrWrongValueClass
		}
		if !fitsUnsigned(n, t.bitWidth) {
			return 0, ErrIntegerOutOfRange
		}
		return 32, nil

	case KindFixed:
		n, ok := v.AsBigInt()
		if !ok {
			return 0, ErrWrongValueClass
		}
		if !fitsSigned(n, t.bitWidth) {
			return 0, ErrIntegerOutOfRange
		}
		return 32, nil

	case KindBytesN:
		b, ok := v.AsBytes()
		if !ok {
			return 0, ErrWrongValueClass
		}
		if len(b) != t.byteWidth {
			return 0, ErrArrayLengthMismatch
		}
		return 32, nil

	case KindBytes:
		b, ok := v.AsBytes()
		if !ok || v.kind != KindBytes {
			return 0, ErrWrongValueClass
		}
		return 32 + wireint.RoundUp(len(b), 32), nil

	case KindString:
		s, ok := v.AsString()
		if !ok {
			return 0, ErrWrongValueClass
		}
		if !utf8.ValidString(s) {
			return 0, ErrInvalidUTF8
		}
		return 32 + wireint.RoundUp(len(s), 32), nil

	case KindArray:
		if v.kind != KindSlice && v.kind != KindTuple {
			return 0, ErrWrongValueClass
		}
		elems := v.Elems()
		if len(elems) != t.length {
			return 0, ErrArrayLengthMismatch
		}
		return validateSequence(repeat(*t.elem, len(elems)), elems, arrayIndexPath)

	case KindSlice:
		if v.kind != KindSlice && v.kind != KindTuple {
			return 0, ErrWrongValueClass
		}
		elems := v.Elems()
		n, err := validateSequence(repeat(*t.elem, len(elems)), elems, arrayIndexPath)
		if err != nil {
			return 0, err
		}
		return 32 + n, nil

	case KindTuple:
		if v.kind != KindTuple && v.kind != KindSlice {
			return 0, ErrWrongValueClass
		}
		elems := v.Elems()
		if len(elems) != len(t.children) {
			return 0, ErrArrayLengthMismatch
		}
		return validateSequence(t.children, elems, tupleIndexPath)

	default:
		return 0, ErrUnknownType
	}
}

func repeat(t Type, n int) []Type {
	out := make([]Type, n)
	for i := range out {
		out[i] = t
	}
	return out
}

// validateSequence computes the head/tail byte length of an ordered
// sequence of (childType, childValue) pairs — the layout shared by tuples
// and arrays (spec §4.4.1). pathFn labels each child's error context.
func validateSequence(children []Type, values []Value, pathFn func(int) string) (int, error) {
	total := 0
	for i, c := range children {
		if !c.dynamic {
			n, err := c.Validate(values[i])
			if err != nil {
				return 0, withPath(err, pathFn(i))
			}
			total += n
		} else {
			total += 32 // offset slot in head
			n, err := c.Validate(values[i])
			if err != nil {
				return 0, withPath(err, pathFn(i))
			}
			total += n
		}
	}
	return total, nil
}

// fitsUnsigned reports whether n is in [0, 2^bits - 1].
func fitsUnsigned(n *big.Int, bits int) bool {
	if n.Sign() < 0 {
		return false
	}
	return n.BitLen() <= bits
}

// fitsSigned reports whether n is in [-2^(bits-1), 2^(bits-1) - 1], using
// the source's bitLen(-x-1) == bitLen(x) identity for negative operands
// (spec §3 invariant).
func fitsSigned(n *big.Int, bits int) bool {
	if n.Sign() < 0 {
		neg := new(big.Int).Neg(n)
		neg.Sub(neg, big.NewInt(1)) // -x-1 == -(x)-1 for x = -n
		return neg.BitLen() < bits
	}
	return n.BitLen() < bits
}

// ByteLength returns the exact encoded size of value, assuming it is
// already known-valid (spec §4.2 byteLength(value)). Use Validate when the
// value's validity is not already established.
func (t *Type) ByteLength(v Value) int {
	n, err := t.Validate(v)
	if err != nil {
		panic("abi: ByteLength of an invalid value: " + err.Error())
	}
	return n
}

// Encode validates value against t, allocates a buffer of the exact
// encoded size, and writes the encoding (spec §4.4.3).
func (t *Type) Encode(v Value) ([]byte, error) {
	n, err := t.Validate(v)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := t.encodeInto(v, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// EncodeInto writes value's encoding into dst at offset 0, assuming dst is
// at least t.Validate(v) bytes long (spec §4.4.3, "encode(value, buffer)").
func (t *Type) EncodeInto(v Value, dst []byte) (int, error) {
	if _, err := t.Validate(v); err != nil {
		return 0, err
	}
	return t.encodeInto(v, dst)
}

// encodeInto writes the encoding assuming v is already validated.
func (t *Type) encodeInto(v Value, dst []byte) (int, error) {
	switch t.kind {
	case KindBool:
		b, _ := v.AsBool()
		clear32(dst)
		if b {
			dst[31] = 1
		}
		return 32, nil

	case KindAddress:
		a, _ := v.AsAddress()
		clear32(dst)
		copy(dst[12:32], a[:])
		return 32, nil

	case KindFunction:
		b, _ := v.AsBytes()
		clear32(dst)
		copy(dst[:24], b)
		return 32, nil

	case KindUint, KindUfixed:
		n, _ := v.AsBigInt()
		clear32(dst)
		n.FillBytes(dst[32-((n.BitLen()+7)/8):32])
		return 32, nil

	case KindInt, KindFixed:
		n, _ := v.AsBigInt()
		return 32, wireint.EncodeBigInt(n, dst[:32], true)

	case KindBytesN:
		b, _ := v.AsBytes()
		clear32(dst)
		copy(dst[:t.byteWidth], b)
		return 32, nil

	case KindBytes:
		b, _ := v.AsBytes()
		return encodeDynamicBytes(b, dst), nil

	case KindString:
		s, _ := v.AsString()
		return encodeDynamicBytes([]byte(s), dst), nil

	case KindArray:
		elems := v.Elems()
		return encodeSequence(repeat(*t.elem, len(elems)), elems, dst)

	case KindSlice:
		elems := v.Elems()
		clear32(dst)
		putUint64(dst[:32], uint64(len(elems)))
		n, err := encodeSequence(repeat(*t.elem, len(elems)), elems, dst[32:])
		return 32 + n, err

	case KindTuple:
		return encodeSequence(t.children, v.Elems(), dst)

	default:
		return 0, ErrUnknownType
	}
}

func clear32(dst []byte) {
	for i := 0; i < 32; i++ {
		dst[i] = 0
	}
}

func putUint64(dst []byte, v uint64) {
	for i := 0; i < 8; i++ {
		dst[31-i] = byte(v)
		v >>= 8
	}
}

func encodeDynamicBytes(b []byte, dst []byte) int {
	clear32(dst)
	putUint64(dst[:32], uint64(len(b)))
	n := copy(dst[32:], b)
	padded := wireint.RoundUp(len(b), 32)
	for i := n; i < padded; i++ {
		dst[32+i] = 0
	}
	return 32 + padded
}

// encodeSequence writes the head/tail layout for an ordered sequence of
// (childType, childValue) pairs. The head is written first with offsets as
// cumulative tail size; the tail follows in a second pass, in declaration
// order (spec §4.4.3).
func encodeSequence(children []Type, values []Value, dst []byte) (int, error) {
	headLen := 0
	for _, c := range children {
		headLen += c.HeadLength()
	}

	headPos := 0
	tailPos := headLen
	for i, c := range children {
		if !c.dynamic {
			n, err := c.encodeInto(values[i], dst[headPos:])
			if err != nil {
				return 0, err
			}
			headPos += n
			continue
		}

		clear32(dst[headPos : headPos+32])
		putUint64(dst[headPos:headPos+32], uint64(tailPos))
		headPos += 32

		n, err := c.encodeInto(values[i], dst[tailPos:])
		if err != nil {
			return 0, err
		}
		tailPos += n
	}
	return tailPos, nil
}
