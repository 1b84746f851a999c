package abi

import (
	"math/big"

	"github.com/ethwire/abicore/internal/wireint"
)

// DecodeOption configures decode-time behavior that is not implied by the
// type alone (spec §5, §9 "lenient vs strict offset jumps").
type DecodeOption struct {
	// Lenient permits forward-skipping dynamic offsets, matching the
	// source's unconditional behavior (Solidity commit 3d1ca07). The
	// default, zero-value DecodeOption is strict: no skipping, no leniency.
	Lenient bool
}

func resolveOption(opts []DecodeOption) DecodeOption {
	if len(opts) == 0 {
		return DecodeOption{}
	}
	return opts[0]
}

// Decode fully materializes a value tree from data, following t. Any
// surplus bytes after the top-level value cause failure (spec §4.4.4).
func (t *Type) Decode(data []byte, opts ...DecodeOption) (Value, error) {
	cfg := resolveOption(opts)
	v, n, err := t.decodeAt(data, 0, cfg)
	if err != nil {
		return Value{}, err
	}
	if n != len(data) {
		return Value{}, ErrTrailingBytes
	}
	return v, nil
}

// DecodeAt decodes one value starting at byte offset pos in data and
// returns the position immediately after the consumed range — it does not
// require the buffer to be fully consumed (spec §4.4.4, "buffer-position
// decode").
func (t *Type) DecodeAt(data []byte, pos int, opts ...DecodeOption) (Value, int, error) {
	cfg := resolveOption(opts)
	v, n, err := t.decodeAt(data, pos, cfg)
	if err != nil {
		return Value{}, 0, err
	}
	return v, pos + n, nil
}

// decodeAt decodes the value of type t whose encoding begins at
// data[regionStart:]. It returns the value and the number of bytes its
// encoding occupies starting at regionStart (its own "region length").
func (t *Type) decodeAt(data []byte, regionStart int, cfg DecodeOption) (Value, int, error) {
	switch t.kind {
	case KindBool:
		slot, err := slot32(data, regionStart)
		if err != nil {
			return Value{}, 0, err
		}
		for i := 0; i < 31; i++ {
			if slot[i] != 0 {
				return Value{}, 0, ErrIllegalBoolByte
			}
		}
		if slot[31] > 1 {
			return Value{}, 0, ErrIllegalBoolByte
		}
		return Bool(slot[31] == 1), 32, nil

	case KindAddress:
		slot, err := slot32(data, regionStart)
		if err != nil {
			return Value{}, 0, err
		}
		// An address occupies the low 160 bits of the slot; BitLen > 160
		// means one of the 12 padding bytes is dirty, without walking them.
		if wireint.DecodeUint256(slot).BitLen() > 160 {
			return Value{}, 0, ErrDirtyPadding
		}
		var a [20]byte
		copy(a[:], slot[12:32])
		return Addr(a), 32, nil

	case KindFunction:
		slot, err := slot32(data, regionStart)
		if err != nil {
			return Value{}, 0, err
		}
		for i := 24; i < 32; i++ {
			if slot[i] != 0 {
				return Value{}, 0, ErrDirtyPadding
			}
		}
		b := make([]byte, 24)
		copy(b, slot[:24])
		return Value{kind: KindFunction, byteVal: b}, 32, nil

	case KindUint, KindUfixed:
		slot, err := slot32(data, regionStart)
		if err != nil {
			return Value{}, 0, err
		}
		// uint256's own bit length stands in for fitsUnsigned here, so the
		// 32-byte slot is only promoted to a math/big value once it is
		// known to pass.
		n := wireint.DecodeUint256(slot)
		if n.BitLen() > t.bitWidth {
			return Value{}, 0, ErrDirtyPadding
		}
		return Int(n.ToBig()), 32, nil

	case KindInt, KindFixed:
		slot, err := slot32(data, regionStart)
		if err != nil {
			return Value{}, 0, err
		}
		n, err := wireint.DecodeBigInt(slot, true)
		if err != nil {
			return Value{}, 0, err
		}
		if !fitsSigned(n, t.bitWidth) {
			return Value{}, 0, ErrDirtyPadding
		}
		return Int(n), 32, nil

	case KindBytesN:
		slot, err := slot32(data, regionStart)
		if err != nil {
			return Value{}, 0, err
		}
		for i := t.byteWidth; i < 32; i++ {
			if slot[i] != 0 {
				return Value{}, 0, ErrDirtyPadding
			}
		}
		b := make([]byte, t.byteWidth)
		copy(b, slot[:t.byteWidth])
		return FixedBytes(b), 32, nil

	case KindBytes, KindString:
		length, err := readLength(data, regionStart)
		if err != nil {
			return Value{}, 0, err
		}
		start := regionStart + 32
		end := start + length
		if end < start || end > len(data) {
			return Value{}, 0, ErrTruncatedInput
		}
		payload := data[start:end]
		padded := wireint.RoundUp(length, 32)
		padEnd := start + padded
		if padEnd > len(data) {
			return Value{}, 0, ErrTruncatedInput
		}
		for i := end; i < padEnd; i++ {
			if data[i] != 0 {
				return Value{}, 0, ErrDirtyPadding
			}
		}
		if t.kind == KindString {
			return Str(string(payload)), 32 + padded, nil
		}
		return NewBytes(payload), 32 + padded, nil

	case KindArray:
		children := repeat(*t.elem, t.length)
		if !t.dynamic {
			values, n, err := decodeStaticSequence(children, data, regionStart)
			if err != nil {
				return Value{}, 0, err
			}
			return Seq(values...), n, nil
		}
		values, n, err := decodeSequence(children, data, regionStart, cfg)
		if err != nil {
			return Value{}, 0, err
		}
		return Seq(values...), n, nil

	case KindSlice:
		count, err := readLength(data, regionStart)
		if err != nil {
			return Value{}, 0, err
		}
		children := repeat(*t.elem, count)
		var values []Value
		var n int
		if t.elem.dynamic {
			values, n, err = decodeSequence(children, data, regionStart+32, cfg)
		} else {
			values, n, err = decodeStaticSequence(children, data, regionStart+32)
		}
		if err != nil {
			return Value{}, 0, err
		}
		return Seq(values...), 32 + n, nil

	case KindTuple:
		var values []Value
		var n int
		var err error
		if !t.dynamic {
			values, n, err = decodeStaticSequence(t.children, data, regionStart)
		} else {
			values, n, err = decodeSequence(t.children, data, regionStart, cfg)
		}
		if err != nil {
			return Value{}, 0, err
		}
		return NewTuple(values...), n, nil

	default:
		return Value{}, 0, ErrUnknownType
	}
}

func slot32(data []byte, pos int) ([]byte, error) {
	if pos < 0 || pos+32 > len(data) {
		return nil, ErrTruncatedInput
	}
	return data[pos : pos+32], nil
}

// readLength reads the 32-byte big-endian length/count prefix used by
// bytes, string, and dynamic arrays, bounding it against the 31-bit offset
// maximum (spec §4.4.4, §5).
func readLength(data []byte, pos int) (int, error) {
	slot, err := slot32(data, pos)
	if err != nil {
		return 0, err
	}
	n := new(big.Int).SetBytes(slot)
	if !n.IsUint64() || n.Uint64() > maxOffset {
		return 0, ErrOffsetOutOfRange
	}
	return int(n.Uint64()), nil
}

// decodeStaticSequence decodes a fully non-dynamic sequence of children
// by simple sequential reads — no offsets, no jumps (spec §4.4.4 "for
// non-dynamic children decode in place").
func decodeStaticSequence(children []Type, data []byte, regionStart int) ([]Value, int, error) {
	values := make([]Value, len(children))
	pos := regionStart
	for i, c := range children {
		v, n, err := c.decodeAt(data, pos, DecodeOption{})
		if err != nil {
			return nil, 0, withPath(err, arrayIndexPath(i))
		}
		values[i] = v
		pos += n
	}
	return values, pos - regionStart, nil
}

// decodeSequence decodes a sequence with at least one dynamic child,
// following the two-pass head/tail algorithm of spec §4.4.4: the head is
// read first (non-dynamic children decoded in place, dynamic children's
// offsets recorded); the tail is then read in declaration order, enforcing
// monotonic, non-backwards jumps and (in strict mode) no forward skipping.
func decodeSequence(children []Type, data []byte, regionStart int, cfg DecodeOption) ([]Value, int, error) {
	values := make([]Value, len(children))
	offsets := make([]int, len(children))

	pos := regionStart
	for i, c := range children {
		if !c.dynamic {
			v, n, err := c.decodeAt(data, pos, cfg)
			if err != nil {
				return nil, 0, withPath(err, tupleIndexPath(i))
			}
			values[i] = v
			pos += n
			continue
		}
		off, err := readOffset(data, pos)
		if err != nil {
			return nil, 0, withPath(err, tupleIndexPath(i))
		}
		offsets[i] = off
		pos += 32
	}

	tailCursor := pos
	for i, c := range children {
		if !c.dynamic {
			continue
		}
		jump := regionStart + offsets[i]
		if jump < tailCursor {
			return nil, 0, withPath(ErrBackwardsJump, tupleIndexPath(i))
		}
		if jump > tailCursor && !cfg.Lenient {
			return nil, 0, withPath(ErrForwardSkipDenied, tupleIndexPath(i))
		}
		v, n, err := c.decodeAt(data, jump, cfg)
		if err != nil {
			return nil, 0, withPath(err, tupleIndexPath(i))
		}
		values[i] = v
		tailCursor = jump + n
	}
	return values, tailCursor - regionStart, nil
}

// readOffset reads and bounds-checks a dynamic child's 32-byte offset slot
// against the 31-bit maximum (spec §4.4.4, §5).
func readOffset(data []byte, pos int) (int, error) {
	slot, err := slot32(data, pos)
	if err != nil {
		return 0, err
	}
	n := new(big.Int).SetBytes(slot)
	if !n.IsUint64() || n.Uint64() > maxOffset {
		return 0, ErrOffsetOutOfRange
	}
	return int(n.Uint64()), nil
}

// DecodeIndex returns only the i-th tuple child without fully decoding
// earlier children (spec §4.4.5): it walks children 0..i-1 advancing only
// by their static head size, then decodes child i directly (static) or via
// its offset slot (dynamic).
func (t *Type) DecodeIndex(data []byte, i int, opts ...DecodeOption) (Value, error) {
	if t.kind != KindTuple {
		return Value{}, ErrWrongValueClass
	}
	if i < 0 || i >= len(t.children) {
		return Value{}, ErrArrayLengthMismatch
	}
	cfg := resolveOption(opts)

	pos := 0
	for j := 0; j < i; j++ {
		pos += t.children[j].HeadLength()
	}

	child := t.children[i]
	if !child.dynamic {
		v, _, err := child.decodeAt(data, pos, cfg)
		if err != nil {
			return Value{}, withPath(err, tupleIndexPath(i))
		}
		return v, nil
	}

	off, err := readOffset(data, pos)
	if err != nil {
		return Value{}, withPath(err, tupleIndexPath(i))
	}
	v, _, err := child.decodeAt(data, off, cfg)
	if err != nil {
		return Value{}, withPath(err, tupleIndexPath(i))
	}
	return v, nil
}
