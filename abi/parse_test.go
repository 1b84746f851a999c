package abi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTypeCanonicalRoundTrip(t *testing.T) {
	cases := []string{
		"bool",
		"address",
		"uint256",
		"int8",
		"bytes32",
		"bytes",
		"string",
		"uint256[]",
		"uint256[3]",
		"int24[2][3]",
		"(bool)[]",
		"(bytes,bool,uint256[])",
		"()",
	}
	for _, s := range cases {
		typ, err := ParseType(s)
		require.NoError(t, err, s)
		require.Equal(t, s, typ.CanonicalType())
	}
}

func TestParseTypeNestingDirection(t *testing.T) {
	// T[K1][K2] reads as an array of K2 elements, each itself an array of
	// K1 elements of T — the last bracket wraps outermost, matching
	// Solidity's canonical reading.
	typ, err := ParseType("uint8[2][3]")
	require.NoError(t, err)
	require.Equal(t, KindArray, typ.TypeCode())
	require.Equal(t, 3, typ.Length())
	require.Equal(t, KindArray, typ.Elem().TypeCode())
	require.Equal(t, 2, typ.Elem().Length())
	require.Equal(t, KindUint, typ.Elem().Elem().TypeCode())
}

func TestParseTypeRejectsTooLong(t *testing.T) {
	long := make([]byte, maxTypeStringLen+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := ParseType(string(long))
	require.ErrorIs(t, err, ErrTypeStringTooLong)
}

func TestParseTypeRejectsUnknown(t *testing.T) {
	_, err := ParseType("notatype")
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestParseTypeRejectsTrailingGarbage(t *testing.T) {
	_, err := ParseType("bool,")
	require.Error(t, err)
}

func TestParseTypeRejectsOutOfRangeWidth(t *testing.T) {
	_, err := ParseType("uint257")
	require.ErrorIs(t, err, ErrMalformedTypeSize)

	_, err = ParseType("uint0")
	require.ErrorIs(t, err, ErrMalformedTypeSize)

	_, err = ParseType("bytes33")
	require.ErrorIs(t, err, ErrMalformedTypeSize)
}

func TestParseFixedSuffix(t *testing.T) {
	typ, err := ParseType("ufixed128x18")
	require.NoError(t, err)
	require.Equal(t, "ufixed128x18", typ.CanonicalType())

	_, err = ParseType("fixed7x18")
	require.ErrorIs(t, err, ErrMalformedTypeSize)

	_, err = ParseType("fixed128x81")
	require.ErrorIs(t, err, ErrMalformedTypeSize)
}

func TestParseTupleTypeNamed(t *testing.T) {
	typ, err := ParseTupleTypeNamed("(uint256,bool)", "amount", "ok")
	require.NoError(t, err)
	require.Equal(t, []string{"amount", "ok"}, typ.Names())

	_, err = ParseTupleTypeNamed("(uint256,bool)", "onlyone")
	require.ErrorIs(t, err, ErrNameCountMismatch)
}

func TestParseTupleTypeRejectsNonTuple(t *testing.T) {
	_, err := ParseTupleType("uint256")
	require.ErrorIs(t, err, ErrUnbalancedBrackets)
}

func TestDynamicPropagation(t *testing.T) {
	typ, err := ParseType("uint256[3]")
	require.NoError(t, err)
	require.False(t, typ.IsDynamic())
	require.Equal(t, 96, typ.StaticByteLength())

	typ, err = ParseType("bytes[3]")
	require.NoError(t, err)
	require.True(t, typ.IsDynamic())
	require.Panics(t, func() { typ.StaticByteLength() })

	typ, err = ParseType("(uint256,bytes)")
	require.NoError(t, err)
	require.True(t, typ.IsDynamic())
}
