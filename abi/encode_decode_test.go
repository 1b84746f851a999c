package abi

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustType(t *testing.T, s string) *Type {
	t.Helper()
	typ, err := ParseType(s)
	require.NoError(t, err)
	return typ
}

func TestEncodeDecodeRoundTripScalars(t *testing.T) {
	cases := []struct {
		typ string
		val Value
	}{
		{"bool", Bool(true)},
		{"bool", Bool(false)},
		{"uint256", Uint64(42)},
		{"int256", Int64(-42)},
		{"bytes4", FixedBytes([]byte{1, 2, 3, 4})},
		{"bytes", NewBytes([]byte("hello world, this is a dynamic byte string"))},
		{"string", Str("hello, world!")},
		{"address", Addr([20]byte{1, 2, 3})},
	}
	for _, c := range cases {
		typ := mustType(t, c.typ)
		enc, err := typ.Encode(c.val)
		require.NoError(t, err, c.typ)
		require.Equal(t, 0, len(enc)%32, "encoding must be word-aligned")

		dec, err := typ.Decode(enc)
		require.NoError(t, err, c.typ)
		require.True(t, c.val.Equal(dec), c.typ)
	}
}

func TestStaticTypeByteLengthMatchesEncoding(t *testing.T) {
	typ := mustType(t, "uint256[4]")
	v := Seq(Uint64(1), Uint64(2), Uint64(3), Uint64(4))
	enc, err := typ.Encode(v)
	require.NoError(t, err)
	require.Equal(t, typ.StaticByteLength(), len(enc))
}

func TestEmptyTupleEncodesEmpty(t *testing.T) {
	typ, err := ParseTupleType("()")
	require.NoError(t, err)
	enc, err := typ.Encode(NewTuple())
	require.NoError(t, err)
	require.Empty(t, enc)
}

func TestDynamicArrayOfLengthZero(t *testing.T) {
	typ := mustType(t, "uint256[]")
	enc, err := typ.Encode(Seq())
	require.NoError(t, err)
	require.Equal(t, 32, len(enc))
	require.Equal(t, make([]byte, 32), enc)
}

func TestUintBoundaries(t *testing.T) {
	typ := mustType(t, "uint8")
	ok := new(big.Int).SetUint64(255)
	_, err := typ.Encode(Int(ok))
	require.NoError(t, err)

	tooBig := new(big.Int).SetUint64(256)
	_, err = typ.Encode(Int(tooBig))
	require.ErrorIs(t, err, ErrIntegerOutOfRange)

	_, err = typ.Encode(Int(big.NewInt(-1)))
	require.ErrorIs(t, err, ErrIntegerOutOfRange)
}

func TestIntBoundaries(t *testing.T) {
	typ := mustType(t, "int8")
	_, err := typ.Encode(Int(big.NewInt(127)))
	require.NoError(t, err)
	_, err = typ.Encode(Int(big.NewInt(128)))
	require.ErrorIs(t, err, ErrIntegerOutOfRange)

	_, err = typ.Encode(Int(big.NewInt(-128)))
	require.NoError(t, err)
	_, err = typ.Encode(Int(big.NewInt(-129)))
	require.ErrorIs(t, err, ErrIntegerOutOfRange)
}

func TestValidatePathAnnotation(t *testing.T) {
	typ := mustType(t, "(uint8,uint8[2])")
	_, err := typ.Validate(NewTuple(Uint64(1), Seq(Uint64(1), Int(big.NewInt(256)))))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrIntegerOutOfRange)
	require.Contains(t, err.Error(), "tuple index 1")
	require.Contains(t, err.Error(), "array index 1")
}

func TestDecodeRejectsIllegalBool(t *testing.T) {
	typ := mustType(t, "bool")
	data := make([]byte, 32)
	data[31] = 2
	_, err := typ.Decode(data)
	require.ErrorIs(t, err, ErrIllegalBoolByte)
}

func TestDecodeRejectsDirtyPadding(t *testing.T) {
	typ := mustType(t, "address")
	data := make([]byte, 32)
	data[0] = 1
	_, err := typ.Decode(data)
	require.ErrorIs(t, err, ErrDirtyPadding)
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	typ := mustType(t, "uint256")
	data := make([]byte, 64)
	_, err := typ.Decode(data)
	require.ErrorIs(t, err, ErrTrailingBytes)
}

func TestDecodeOffsetJumpModes(t *testing.T) {
	// Tuple(bytes, bytes) laid out with the second offset skipping ahead
	// past some unused filler before the tail actually starts.
	typ := mustType(t, "(bytes,bytes)")

	head := make([]byte, 64)
	putUint64(head[:32], 64)
	// deliberately leave a gap: second element's data does not start
	// immediately after the first, so its offset points further ahead than
	// a tight packing would produce.
	firstTail := make([]byte, 32+32) // length 0 bytes, one word
	gap := make([]byte, 32)
	putUint64(head[32:64], uint64(64+len(firstTail)+len(gap)))
	secondTail := make([]byte, 32+32)
	putUint64(secondTail[:32], 32) // length 32: one full data word, no padding

	data := append(append(append(head, firstTail...), gap...), secondTail...)

	_, err := typ.Decode(data, DecodeOption{Lenient: false})
	require.ErrorIs(t, err, ErrForwardSkipDenied)

	v, err := typ.Decode(data, DecodeOption{Lenient: true})
	require.NoError(t, err)
	require.Len(t, v.Elems(), 2)
}

func TestDecodeRejectsBackwardsJump(t *testing.T) {
	typ := mustType(t, "(bytes,bytes)")
	head := make([]byte, 64)
	putUint64(head[:32], 96) // second element's offset, out of order
	putUint64(head[32:64], 64)
	tail := make([]byte, 64)
	data := append(head, tail...)

	_, err := typ.Decode(data, DecodeOption{Lenient: true})
	require.ErrorIs(t, err, ErrBackwardsJump)
}

func TestDecodeIndexMatchesFullDecode(t *testing.T) {
	typ := mustType(t, "(bytes,bool,uint256[])")
	v := NewTuple(NewBytes([]byte("dave")), Bool(true), Seq(Uint64(1), Uint64(2), Uint64(3)))
	enc, err := typ.Encode(v)
	require.NoError(t, err)

	full, err := typ.Decode(enc)
	require.NoError(t, err)

	for i := range full.Elems() {
		got, err := typ.DecodeIndex(enc, i)
		require.NoError(t, err)
		require.True(t, got.Equal(full.Elems()[i]), "index %d", i)
	}
}

func TestSamEncodingScenario(t *testing.T) {
	typ := mustType(t, "(bytes,bool,uint256[])")
	v := NewTuple(NewBytes([]byte("dave")), Bool(true), Seq(Uint64(1), Uint64(2), Uint64(3)))
	enc, err := typ.Encode(v)
	require.NoError(t, err)

	// 3 head words + 1 length word + 1 padded data word for "dave" + 1
	// length word + 3 element words for the array = 9 words.
	require.Equal(t, 9*32, len(enc))
	require.Equal(t, "0000000000000000000000000000000000000000000000000000000000000060", hex.EncodeToString(enc[0:32]))
	require.Equal(t, "0000000000000000000000000000000000000000000000000000000000000001", hex.EncodeToString(enc[32:64]))
	require.Equal(t, "00000000000000000000000000000000000000000000000000000000000000a0", hex.EncodeToString(enc[64:96]))
	require.Equal(t, "0000000000000000000000000000000000000000000000000000000000000004", hex.EncodeToString(enc[96:128]))
	require.Equal(t, "6461766500000000000000000000000000000000000000000000000000000000"[:64], hex.EncodeToString(enc[128:160]))
	require.Equal(t, "0000000000000000000000000000000000000000000000000000000000000003", hex.EncodeToString(enc[160:192]))

	dec, err := typ.Decode(enc)
	require.NoError(t, err)
	require.True(t, v.Equal(dec))

	third, err := typ.DecodeIndex(enc, 2)
	require.NoError(t, err)
	var nums []int64
	for _, e := range third.Elems() {
		n, _ := e.AsBigInt()
		nums = append(nums, n.Int64())
	}
	require.Equal(t, []int64{1, 2, 3}, nums)
}
