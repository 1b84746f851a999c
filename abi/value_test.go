package abi

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroValueIsInvalid(t *testing.T) {
	var v Value
	require.False(t, v.IsValid())
	require.True(t, Bool(false).IsValid())
}

func TestValueEqual(t *testing.T) {
	require.True(t, Int64(5).Equal(Int(big.NewInt(5))))
	require.False(t, Int64(5).Equal(Int64(6)))
	require.True(t, Seq(Bool(true), Bool(false)).Equal(Seq(Bool(true), Bool(false))))
	require.False(t, Seq(Bool(true)).Equal(Seq(Bool(true), Bool(false))))
	require.False(t, Bool(true).Equal(Int64(1)))
}

func TestValidateRejectsNilElement(t *testing.T) {
	typ := mustType(t, "(uint8,uint8)")
	_, err := typ.Validate(NewTuple(Uint64(1), Value{}))
	require.ErrorIs(t, err, ErrNilValue)
}
