package abi

import (
	"fmt"
	"strings"
)

// Kind is the small integer type code every Type node carries (spec §3,
// "type code"), mirroring the teacher's ethabi.Type.T tag switch but as a
// closed sum type rather than a reflect-backed abstract class.
type Kind uint8

const (
	// KindInvalid is the zero value of Kind; a zero Value is invalid and
	// Validate rejects it as a nil element (spec §4.4.2).
	KindInvalid Kind = iota
	KindBool
	KindAddress
	KindUint
	KindInt
	KindUfixed
	KindFixed
	KindFunction
	KindBytesN // bytes<N>, fixed width
	KindBytes  // dynamic byte string
	KindString
	KindArray // T[K], fixed length
	KindSlice // T[], dynamic length
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindUfixed:
		return "ufixed"
	case KindFixed:
		return "fixed"
	case KindFunction:
		return "function"
	case KindBytesN:
		return "bytesN"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindSlice:
		return "slice"
	case KindTuple:
		return "tuple"
	default:
		return "invalid"
	}
}

// maxTypeStringLen bounds type-string length at construction time, capping
// parser work (spec §3 invariants, §5 DoS bound).
const maxTypeStringLen = 2000

// maxOffset is the 31-bit bound decode offsets are checked against (spec
// §4.4.4, §5).
const maxOffset = 1<<31 - 1

// Type is an immutable node in a descriptor tree. Construct one with
// ParseType/ParseTupleType; never mutate a Type returned by the parser —
// trees are freely shareable across goroutines (spec §5).
type Type struct {
	kind Kind

	// Uint/Int/Ufixed/Fixed
	bitWidth int // N in uint<N>/int<N>, or M in (u)fixed<M>x<D>
	scale    int // D in (u)fixed<M>x<D>

	// BytesN
	byteWidth int // N in bytes<N>

	// Array/Slice
	elem   *Type
	length int // K for Array; unused (0) for Slice

	// Tuple
	children []Type
	names    []string // parallel to children; nil if unset

	canonical string
	dynamic   bool
	staticLen int // valid iff !dynamic: exact encoded byte length
}

// CanonicalType returns the canonical type string, e.g. "uint256",
// "int24[2][]", "(bytes,bool,uint256[])".
func (t *Type) CanonicalType() string { return t.canonical }

// TypeCode returns the small integer discriminator for this node.
func (t *Type) TypeCode() Kind { return t.kind }

// IsDynamic reports whether any descendant is dynamic, or this node itself
// is a dynamic-length array/bytes/string (spec §3 invariant).
func (t *Type) IsDynamic() bool { return t.dynamic }

// StaticByteLength returns the exact encoded size of a fully non-dynamic
// descriptor. Panics if called on a dynamic descriptor — callers must check
// IsDynamic first, matching the source's staticArrLen precondition that it
// is only ever invoked on statically-sized types.
func (t *Type) StaticByteLength() int {
	if t.dynamic {
		panic("abi: StaticByteLength of a dynamic type")
	}
	return t.staticLen
}

// HeadLength returns the number of bytes this type occupies in its parent's
// head region: the full static length for non-dynamic types, or exactly 32
// (an offset slot) for dynamic types (spec §4.2).
func (t *Type) HeadLength() int {
	if t.dynamic {
		return 32
	}
	return t.staticLen
}

// Elem returns the element descriptor of an Array or Slice type.
func (t *Type) Elem() *Type { return t.elem }

// Length returns the fixed array length K for an Array type.
func (t *Type) Length() int { return t.length }

// Children returns the ordered child descriptors of a Tuple type.
func (t *Type) Children() []Type { return t.children }

// Names returns the optional parallel element names of a Tuple type, or nil
// if none were attached (spec §4.3, §9 "element naming side-channel").
func (t *Type) Names() []string { return t.names }

// Arity returns the number of children of a Tuple type.
func (t *Type) Arity() int { return len(t.children) }

// Equal reports structural equality: same canonical type string. Element
// names never participate (spec §9).
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.canonical == o.canonical
}

// Hash implements the source's `31*hash(canonical) + flags` scheme.
func (t *Type) Hash() uint32 {
	h := uint32(0)
	for i := 0; i < len(t.canonical); i++ {
		h = 31*h + uint32(t.canonical[i])
	}
	flags := uint32(0)
	if t.dynamic {
		flags = 1
	}
	return 31*h + flags
}

func (t *Type) String() string { return t.canonical }

// --- constructors -----------------------------------------------------

func newScalar(kind Kind, canonical string, staticLen int) Type {
	return Type{kind: kind, canonical: canonical, dynamic: false, staticLen: staticLen}
}

func boolType() Type    { return newScalar(KindBool, "bool", 32) }
func addressType() Type { return newScalar(KindAddress, "address", 32) }
func functionType() Type {
	return newScalar(KindFunction, "function", 32)
}

func uintType(n int) Type {
	return Type{kind: KindUint, bitWidth: n, canonical: fmt.Sprintf("uint%d", n), staticLen: 32}
}

func intType(n int) Type {
	return Type{kind: KindInt, bitWidth: n, canonical: fmt.Sprintf("int%d", n), staticLen: 32}
}

func ufixedType(m, d int) Type {
	return Type{kind: KindUfixed, bitWidth: m, scale: d, canonical: fmt.Sprintf("ufixed%dx%d", m, d), staticLen: 32}
}

func fixedType(m, d int) Type {
	return Type{kind: KindFixed, bitWidth: m, scale: d, canonical: fmt.Sprintf("fixed%dx%d", m, d), staticLen: 32}
}

func bytesNType(n int) Type {
	return Type{kind: KindBytesN, byteWidth: n, canonical: fmt.Sprintf("bytes%d", n), staticLen: 32}
}

func dynBytesType() Type {
	return Type{kind: KindBytes, canonical: "bytes", dynamic: true}
}

func stringType() Type {
	return Type{kind: KindString, canonical: "string", dynamic: true}
}

// newArrayType builds T[K]. Length 0 is permitted (spec §4.3 "K >= 0").
func newArrayType(elem Type, k int) Type {
	t := Type{kind: KindArray, elem: &elem, length: k, dynamic: elem.dynamic}
	t.canonical = fmt.Sprintf("%s[%d]", elem.canonical, k)
	if !t.dynamic {
		t.staticLen = k * elem.staticLen
	}
	return t
}

func newSliceType(elem Type) Type {
	t := Type{kind: KindSlice, elem: &elem, dynamic: true}
	t.canonical = elem.canonical + "[]"
	return t
}

// newTupleType builds (T1,...,Tn). names may be nil.
func newTupleType(children []Type, names []string) (Type, error) {
	if names != nil && len(names) != len(children) {
		return Type{}, ErrNameCountMismatch
	}
	dynamic := false
	strs := make([]string, len(children))
	for i, c := range children {
		strs[i] = c.canonical
		if c.dynamic {
			dynamic = true
		}
	}
	t := Type{kind: KindTuple, children: children, names: names, dynamic: dynamic}
	t.canonical = "(" + strings.Join(strs, ",") + ")"
	if !dynamic {
		total := 0
		for _, c := range children {
			total += c.staticLen
		}
		t.staticLen = total
	}
	return t, nil
}

// WithNames returns a copy of a Tuple Type with element names attached.
// count mismatch fails (spec §4.3).
func (t *Type) WithNames(names []string) (*Type, error) {
	if t.kind != KindTuple {
		return nil, fmt.Errorf("abi: WithNames on non-tuple type %q", t.canonical)
	}
	if len(names) != len(t.children) {
		return nil, ErrNameCountMismatch
	}
	cp := *t
	cp.names = names
	return &cp, nil
}
