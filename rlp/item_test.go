package rlp

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestWrapSingleByte(t *testing.T) {
	item, n, err := Wrap([]byte{0x01}, true)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.False(t, item.IsList())
	require.Equal(t, []byte{0x01}, item.Bytes())
}

func TestWrapShortString(t *testing.T) {
	item, n, err := Wrap([]byte("\x83dog"), true)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.False(t, item.IsList())
	require.Equal(t, "dog", string(item.Bytes()))
}

func TestWrapEmptyString(t *testing.T) {
	item, n, err := Wrap([]byte{0x80}, true)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 0, item.Len())
}

func TestWrapListContainingEmptyString(t *testing.T) {
	// c1 80: a list containing a single empty-string element.
	item, n, err := Wrap(mustHex(t, "c180"), true)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.True(t, item.IsList())

	children, err := item.Elements(true)
	require.NoError(t, err)
	require.Len(t, children, 1)
	require.False(t, children[0].IsList())
	require.Equal(t, 0, children[0].Len())
}

func TestWrapLongStringAccepted(t *testing.T) {
	payload := bytes.Repeat([]byte{0x61}, 56)
	buf := append([]byte{0xb8, 0x38}, payload...)
	item, n, err := Wrap(buf, true)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, payload, item.Bytes())
}

func TestWrapLongStringRejectsNonMinimal(t *testing.T) {
	// b7 is the last short-string header byte (length 55); this long-form
	// header claims length 55 too, which a short header could represent.
	payload := bytes.Repeat([]byte{0x61}, 55)
	buf := append([]byte{0xb8, 0x37}, payload...)
	_, _, err := Wrap(buf, true)
	require.ErrorIs(t, err, ErrNonCanonicalSize)

	// Lenient mode accepts the same bytes.
	item, n, err := Wrap(buf, false)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, payload, item.Bytes())
}

func TestWrapRejectsNonCanonicalSingleByte(t *testing.T) {
	// 0x00 should be encoded as itself, not with a one-byte string header.
	buf := []byte{0x81, 0x00}
	_, _, err := Wrap(buf, true)
	require.ErrorIs(t, err, ErrNonCanonicalSingleByte)

	item, n, err := Wrap(buf, false)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{0x00}, item.Bytes())
}

func TestWrapRejectsNonCanonicalLengthOfLength(t *testing.T) {
	payload := bytes.Repeat([]byte{0x61}, 56)
	buf := append([]byte{0xb9, 0x00, 0x38}, payload...)
	_, _, err := Wrap(buf, true)
	require.ErrorIs(t, err, ErrNonCanonicalSize)
}

func TestWrapTruncatedInput(t *testing.T) {
	_, _, err := Wrap([]byte{0x83, 'd', 'o'}, true)
	require.ErrorIs(t, err, ErrTruncated)

	_, _, err = Wrap(nil, true)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestElementsRejectsNonList(t *testing.T) {
	item, _, err := Wrap([]byte{0x80}, true)
	require.NoError(t, err)
	_, err = item.Elements(true)
	require.ErrorIs(t, err, ErrExpectedList)
}

func TestStringRejectsList(t *testing.T) {
	item, _, err := Wrap([]byte{0xc0}, true)
	require.NoError(t, err)
	_, err = item.String()
	require.ErrorIs(t, err, ErrExpectedString)
}

func TestWrapNestedList(t *testing.T) {
	// A list containing two string elements: "cat" and "dog".
	buf := mustHex(t, "c88363617483646f67")
	item, n, err := Wrap(buf, true)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	children, err := item.Elements(true)
	require.NoError(t, err)
	require.Len(t, children, 2)
	s0, _ := children[0].String()
	s1, _ := children[1].String()
	require.Equal(t, "cat", s0)
	require.Equal(t, "dog", s1)
}
