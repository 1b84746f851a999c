package abi

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackedScenarioIntBytesUintString(t *testing.T) {
	typ := mustType(t, "(int16,bytes1,uint16,string)")
	v := NewTuple(Int64(-1), FixedBytes([]byte{0x42}), Uint64(3), Str("Hello, world!"))
	enc, err := typ.EncodePacked(v)
	require.NoError(t, err)
	require.Equal(t, "ffff420003"+hex.EncodeToString([]byte("Hello, world!")), hex.EncodeToString(enc))
}

func TestPackedScenarioIntBoolBool(t *testing.T) {
	typ := mustType(t, "(int24,bool,bool)")
	v := NewTuple(Int64(-2), Bool(true), Bool(false))
	enc, err := typ.EncodePacked(v)
	require.NoError(t, err)
	require.Equal(t, "fffffe0100", hex.EncodeToString(enc))
}

func TestPackedScenarioArrayOfTuples(t *testing.T) {
	typ := mustType(t, "((bool)[])")
	v := NewTuple(Seq(
		NewTuple(Bool(true)),
		NewTuple(Bool(false)),
		NewTuple(Bool(true)),
	))
	enc, err := typ.EncodePacked(v)
	require.NoError(t, err)
	require.Equal(t, "010001", hex.EncodeToString(enc))
}

func TestPackedDecodeStaticRoundTrip(t *testing.T) {
	typ := mustType(t, "(int24,bool,bool)")
	v := NewTuple(Int64(-2), Bool(true), Bool(false))
	enc, err := typ.EncodePacked(v)
	require.NoError(t, err)

	dec, err := typ.DecodePacked(enc)
	require.NoError(t, err)
	require.True(t, v.Equal(dec))
}

func TestPackedDecodeSingleDynamicField(t *testing.T) {
	typ := mustType(t, "(uint16,string,uint16)")
	v := NewTuple(Uint64(3), Str("hi"), Uint64(7))
	enc, err := typ.EncodePacked(v)
	require.NoError(t, err)

	dec, err := typ.DecodePacked(enc)
	require.NoError(t, err)
	require.True(t, v.Equal(dec))
}

func TestPackedDecodeRejectsAmbiguousMultipleDynamic(t *testing.T) {
	typ := mustType(t, "(string,string)")
	v := NewTuple(Str("a"), Str("bb"))
	enc, err := typ.EncodePacked(v)
	require.NoError(t, err)

	_, err = typ.DecodePacked(enc)
	require.ErrorIs(t, err, ErrPackedAmbiguous)
}

func TestPackedDecodeRejectsBareDynamicSlice(t *testing.T) {
	typ := mustType(t, "uint8[]")
	_, err := typ.DecodePacked([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrPackedAmbiguous)
}

func TestPackedIntegerBoundary(t *testing.T) {
	typ := mustType(t, "uint8")
	_, err := typ.EncodePacked(Int(big.NewInt(256)))
	require.ErrorIs(t, err, ErrIntegerOutOfRange)
}

func TestPackedByteLengthMatchesEncoding(t *testing.T) {
	typ := mustType(t, "(int24,bool,bool)")
	v := NewTuple(Int64(-2), Bool(true), Bool(false))
	n, err := typ.ByteLengthPacked(v)
	require.NoError(t, err)
	enc, err := typ.EncodePacked(v)
	require.NoError(t, err)
	require.Equal(t, len(enc), n)
}
