package abi

import (
	"math/big"
	"unicode/utf8"
)

// ByteLengthPacked returns the exact size of value under the non-standard
// packed encoding (spec §4.4.6): no length prefixes, no offsets, no padding.
func (t *Type) ByteLengthPacked(v Value) (int, error) {
	return validatePacked(t, v)
}

// EncodePacked validates value and writes its packed encoding (spec
// §4.4.6). Packed encoding is used for off-chain hashing, never for
// contract-call data.
func (t *Type) EncodePacked(v Value) ([]byte, error) {
	n, err := validatePacked(t, v)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := encodePackedInto(t, v, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func validatePacked(t *Type, v Value) (int, error) {
	if !v.IsValid() {
		return 0, ErrNilValue
	}
	switch t.kind {
	case KindBool:
		if v.kind != KindBool {
			return 0, ErrWrongValueClass
		}
		return 1, nil
	case KindAddress:
		if v.kind != KindAddress {
			return 0, ErrWrongValueClass
		}
		return 20, nil
	case KindFunction:
		b, ok := v.AsBytes()
		if !ok || len(b) != 24 {
			return 0, ErrWrongValueClass
		}
		return 24, nil
	case KindUint, KindUfixed:
		n, ok := v.AsBigInt()
		if !ok || !fitsUnsigned(n, t.bitWidth) {
			return 0, ErrIntegerOutOfRange
		}
		return t.bitWidth / 8, nil
	case KindInt, KindFixed:
		n, ok := v.AsBigInt()
		if !ok || !fitsSigned(n, t.bitWidth) {
			return 0, ErrIntegerOutOfRange
		}
		return t.bitWidth / 8, nil
	case KindBytesN:
		b, ok := v.AsBytes()
		if !ok || len(b) != t.byteWidth {
			return 0, ErrArrayLengthMismatch
		}
		return t.byteWidth, nil
	case KindBytes:
		b, ok := v.AsBytes()
		if !ok || v.kind != KindBytes {
			return 0, ErrWrongValueClass
		}
		return len(b), nil
	case KindString:
		s, ok := v.AsString()
		if !ok {
			return 0, ErrWrongValueClass
		}
		if !utf8.ValidString(s) {
			return 0, ErrInvalidUTF8
		}
		return len(s), nil
	case KindArray, KindSlice:
		elems := v.Elems()
		if t.kind == KindArray && len(elems) != t.length {
			return 0, ErrArrayLengthMismatch
		}
		total := 0
		for i, e := range elems {
			n, err := validatePacked(t.elem, e)
			if err != nil {
				return 0, withPath(err, arrayIndexPath(i))
			}
			total += n
		}
		return total, nil
	case KindTuple:
		elems := v.Elems()
		if len(elems) != len(t.children) {
			return 0, ErrArrayLengthMismatch
		}
		total := 0
		for i := range t.children {
			n, err := validatePacked(&t.children[i], elems[i])
			if err != nil {
				return 0, withPath(err, tupleIndexPath(i))
			}
			total += n
		}
		return total, nil
	default:
		return 0, ErrUnknownType
	}
}

// encodePackedInto writes value's packed encoding, assuming it has already
// been validated. Nested tuples and arrays are flattened: there is no
// boundary marker between a composite child's packed bytes and its
// siblings' — this falls out of the recursion rather than needing an
// explicit flatten step.
func encodePackedInto(t *Type, v Value, dst []byte) (int, error) {
	switch t.kind {
	case KindBool:
		b, _ := v.AsBool()
		if b {
			dst[0] = 1
		} else {
			dst[0] = 0
		}
		return 1, nil
	case KindAddress:
		a, _ := v.AsAddress()
		copy(dst[:20], a[:])
		return 20, nil
	case KindFunction:
		b, _ := v.AsBytes()
		copy(dst[:24], b)
		return 24, nil
	case KindUint, KindUfixed:
		n, _ := v.AsBigInt()
		width := t.bitWidth / 8
		for i := range dst[:width] {
			dst[i] = 0
		}
		n.FillBytes(dst[width-((n.BitLen()+7)/8) : width])
		return width, nil
	case KindInt, KindFixed:
		n, _ := v.AsBigInt()
		width := t.bitWidth / 8
		if n.Sign() < 0 {
			mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(t.bitWidth)), big.NewInt(1))
			twos := new(big.Int).And(n, mask)
			twos.FillBytes(dst[:width])
		} else {
			for i := range dst[:width] {
				dst[i] = 0
			}
			n.FillBytes(dst[width-((n.BitLen()+7)/8) : width])
		}
		return width, nil
	case KindBytesN:
		b, _ := v.AsBytes()
		copy(dst[:t.byteWidth], b)
		return t.byteWidth, nil
	case KindBytes:
		b, _ := v.AsBytes()
		return copy(dst, b), nil
	case KindString:
		s, _ := v.AsString()
		return copy(dst, s), nil
	case KindArray, KindSlice:
		pos := 0
		for _, e := range v.Elems() {
			n, err := encodePackedInto(t.elem, e, dst[pos:])
			if err != nil {
				return 0, err
			}
			pos += n
		}
		return pos, nil
	case KindTuple:
		pos := 0
		for i, e := range v.Elems() {
			n, err := encodePackedInto(&t.children[i], e, dst[pos:])
			if err != nil {
				return 0, err
			}
			pos += n
		}
		return pos, nil
	default:
		return 0, ErrUnknownType
	}
}

// packedStaticSize reports the packed byte size implied by the type alone,
// when that size does not depend on a runtime value (spec §4.4.6 decode
// restriction: "at most one dynamic element"). ok is false when the size
// can only be known once a value is in hand (bytes, string, a dynamic
// array/slice, or a non-empty fixed array of dynamically-sized elements).
func packedStaticSize(t *Type) (int, bool) {
	switch t.kind {
	case KindBool:
		return 1, true
	case KindAddress:
		return 20, true
	case KindFunction:
		return 24, true
	case KindUint, KindInt, KindUfixed, KindFixed:
		return t.bitWidth / 8, true
	case KindBytesN:
		return t.byteWidth, true
	case KindBytes, KindString:
		return 0, false
	case KindArray:
		if t.length == 0 {
			return 0, true
		}
		elemSize, ok := packedStaticSize(t.elem)
		if !ok {
			return 0, false
		}
		return elemSize * t.length, true
	case KindSlice:
		return 0, false
	case KindTuple:
		total := 0
		for i := range t.children {
			s, ok := packedStaticSize(&t.children[i])
			if !ok {
				return 0, false
			}
			total += s
		}
		return total, true
	default:
		return 0, false
	}
}

// DecodePacked decodes a packed encoding produced by EncodePacked. It is
// only well-defined when the type has at most one element whose size is
// not determined by the type alone (spec §4.4.6). It refuses every
// dynamic-length T[] and every fixed array of more than one such element
// (ErrPackedAmbiguous), and a one-element array whose element decodes to
// zero bytes (ErrPackedZeroLenElement).
func (t *Type) DecodePacked(data []byte) (Value, error) {
	v, n, err := decodePackedAt(t, data)
	if err != nil {
		return Value{}, err
	}
	if n != len(data) {
		return Value{}, ErrTrailingBytes
	}
	return v, nil
}

func decodePackedAt(t *Type, data []byte) (Value, int, error) {
	if size, ok := packedStaticSize(t); ok {
		return decodePackedStatic(t, data, size)
	}

	switch t.kind {
	case KindBytes:
		return NewBytes(data), len(data), nil
	case KindString:
		return Str(string(data)), len(data), nil
	case KindSlice, KindArray:
		count := t.length
		if t.kind == KindSlice {
			// A dynamic-length packed slice has no count prefix; it is
			// only decodable when treated as a single opaque span, i.e.
			// the caller already knows the element boundaries some other
			// way. Without that, a bare T[] cannot be packed-decoded.
			return Value{}, 0, ErrPackedAmbiguous
		}
		if count > 1 {
			return Value{}, 0, ErrPackedAmbiguous
		}
		if count == 0 {
			return Seq(), 0, nil
		}
		ev, n, err := decodePackedAt(t.elem, data)
		if err != nil {
			return Value{}, 0, err
		}
		if n == 0 {
			return Value{}, 0, ErrPackedZeroLenElement
		}
		return Seq(ev), n, nil
	case KindTuple:
		return decodePackedTuple(t, data)
	default:
		return Value{}, 0, ErrUnknownType
	}
}

func decodePackedStatic(t *Type, data []byte, size int) (Value, int, error) {
	if len(data) < size {
		return Value{}, 0, ErrTruncatedInput
	}
	chunk := data[:size]
	switch t.kind {
	case KindBool:
		if chunk[0] > 1 {
			return Value{}, 0, ErrIllegalBoolByte
		}
		return Bool(chunk[0] == 1), size, nil
	case KindAddress:
		var a [20]byte
		copy(a[:], chunk)
		return Addr(a), size, nil
	case KindFunction:
		b := make([]byte, 24)
		copy(b, chunk)
		return Value{kind: KindFunction, byteVal: b}, size, nil
	case KindUint, KindUfixed:
		return Int(new(big.Int).SetBytes(chunk)), size, nil
	case KindInt, KindFixed:
		n := new(big.Int).SetBytes(chunk)
		if len(chunk) > 0 && chunk[0]&0x80 != 0 {
			mod := new(big.Int).Lsh(big.NewInt(1), uint(t.bitWidth))
			n.Sub(n, mod)
		}
		return Int(n), size, nil
	case KindBytesN:
		b := make([]byte, size)
		copy(b, chunk)
		return FixedBytes(b), size, nil
	case KindArray:
		values := make([]Value, t.length)
		elemSize, _ := packedStaticSize(t.elem)
		pos := 0
		for i := range values {
			v, _, err := decodePackedStatic(t.elem, chunk[pos:pos+elemSize], elemSize)
			if err != nil {
				return Value{}, 0, withPath(err, arrayIndexPath(i))
			}
			values[i] = v
			pos += elemSize
		}
		return Seq(values...), size, nil
	case KindTuple:
		values := make([]Value, len(t.children))
		pos := 0
		for i := range t.children {
			s, _ := packedStaticSize(&t.children[i])
			v, _, err := decodePackedStatic(&t.children[i], chunk[pos:pos+s], s)
			if err != nil {
				return Value{}, 0, withPath(err, tupleIndexPath(i))
			}
			values[i] = v
			pos += s
		}
		return NewTuple(values...), size, nil
	default:
		return Value{}, 0, ErrUnknownType
	}
}

// decodePackedTuple handles a tuple with at most one field whose packed
// size is not known from its type alone: the static fields' sizes are
// summed and subtracted from len(data) to recover the one dynamic field's
// span directly.
func decodePackedTuple(t *Type, data []byte) (Value, int, error) {
	staticTotal := 0
	dynIdx := -1
	sizes := make([]int, len(t.children))
	for i := range t.children {
		if s, ok := packedStaticSize(&t.children[i]); ok {
			sizes[i] = s
			staticTotal += s
			continue
		}
		if dynIdx != -1 {
			return Value{}, 0, ErrPackedAmbiguous
		}
		dynIdx = i
	}

	if dynIdx == -1 {
		return decodePackedStatic(t, data, staticTotal)
	}

	if len(data) < staticTotal {
		return Value{}, 0, ErrTruncatedInput
	}
	dynLen := len(data) - staticTotal
	if dynLen == 0 {
		return Value{}, 0, ErrPackedZeroLenElement
	}

	values := make([]Value, len(t.children))
	pos := 0
	for i := range t.children {
		if i == dynIdx {
			v, n, err := decodePackedAt(&t.children[i], data[pos:pos+dynLen])
			if err != nil {
				return Value{}, 0, withPath(err, tupleIndexPath(i))
			}
			values[i] = v
			pos += n
			continue
		}
		v, n, err := decodePackedStatic(&t.children[i], data[pos:pos+sizes[i]], sizes[i])
		if err != nil {
			return Value{}, 0, withPath(err, tupleIndexPath(i))
		}
		values[i] = v
		pos += n
	}
	return NewTuple(values...), pos, nil
}
