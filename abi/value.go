package abi

import "math/big"

// Value is the runtime value tree that Encode/Decode operate on: a tagged
// variant mirroring the Type descriptor variants (spec §9, "no dynamic
// typing" — statically typed targets use a value enum rather than runtime
// reflection). Zero Value is invalid; use the constructors below.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   *big.Int // uint/int of any width, and (u)fixed scaled mantissa
	addrVal  [20]byte
	byteVal  []byte // bytes, bytesN, function selector||address
	strVal   string
	elemVals []Value // array/slice/tuple children
}

// Bool constructs a bool Value.
func Bool(v bool) Value { return Value{kind: KindBool, boolVal: v} }

// Int constructs an arbitrary-precision integer or decimal-mantissa Value.
// The same constructor serves both uint<N> and int<N>: signedness and range
// are checked against the descriptor at Validate time, not here.
func Int(v *big.Int) Value { return Value{kind: KindInt, intVal: new(big.Int).Set(v)} }

// Int64 constructs an integer Value from a native int64.
func Int64(v int64) Value { return Int(big.NewInt(v)) }

// Uint64 constructs an integer Value from a native uint64.
func Uint64(v uint64) Value { return Int(new(big.Int).SetUint64(v)) }

// Addr constructs an address Value from a 20-byte array.
func Addr(a [20]byte) Value { return Value{kind: KindAddress, addrVal: a} }

// FixedBytes constructs a bytes<N> Value. N is validated against the
// descriptor, not the slice length, at Validate time.
func FixedBytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBytesN, byteVal: cp}
}

// NewBytes constructs a dynamic bytes Value.
func NewBytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBytes, byteVal: cp}
}

// Str constructs a dynamic string Value.
func Str(s string) Value { return Value{kind: KindString, strVal: s} }

// Seq constructs an array/slice Value from its elements, in order.
func Seq(elems ...Value) Value {
	return Value{kind: KindSlice, elemVals: elems}
}

// NewTuple constructs a tuple Value of fixed arity.
func NewTuple(elems ...Value) Value {
	return Value{kind: KindTuple, elemVals: elems}
}

// Kind reports which variant this Value holds.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v was built by one of the constructors. The zero
// Value is invalid and Validate rejects it as a nil element.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsBool returns the bool payload; ok is false for non-bool values.
func (v Value) AsBool() (bool, bool) { return v.boolVal, v.kind == KindBool }

// AsBigInt returns the integer/decimal-mantissa payload.
func (v Value) AsBigInt() (*big.Int, bool) { return v.intVal, v.intVal != nil }

// AsAddress returns the address payload.
func (v Value) AsAddress() ([20]byte, bool) { return v.addrVal, v.kind == KindAddress }

// AsBytes returns the byte payload (bytes, bytesN, or function).
func (v Value) AsBytes() ([]byte, bool) {
	return v.byteVal, v.kind == KindBytes || v.kind == KindBytesN || v.kind == KindFunction
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) { return v.strVal, v.kind == KindString }

// Elems returns the children of an array/slice/tuple Value.
func (v Value) Elems() []Value { return v.elemVals }

// Equal reports structural equality between two values (spec §3, "Tuples
// are value objects of fixed arity; equality is structural").
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.boolVal == o.boolVal
	case KindInt:
		if v.intVal == nil || o.intVal == nil {
			return v.intVal == o.intVal
		}
		return v.intVal.Cmp(o.intVal) == 0
	case KindAddress:
		return v.addrVal == o.addrVal
	case KindBytes, KindBytesN, KindFunction:
		if len(v.byteVal) != len(o.byteVal) {
			return false
		}
		for i := range v.byteVal {
			if v.byteVal[i] != o.byteVal[i] {
				return false
			}
		}
		return true
	case KindString:
		return v.strVal == o.strVal
	case KindSlice, KindArray, KindTuple:
		if len(v.elemVals) != len(o.elemVals) {
			return false
		}
		for i := range v.elemVals {
			if !v.elemVals[i].Equal(o.elemVals[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
