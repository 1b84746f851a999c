// Package wireint holds the big-endian integer primitives shared by the abi
// and rlp packages: variable-length minimal encodings, bit-length, and
// length-rounding helpers. The fixed-width helpers write only into
// caller-supplied buffers; the big-integer helpers (EncodeBigInt,
// DecodeBigInt, DecodeUint256) allocate their math/big or uint256 values.
package wireint

import (
	"math/big"

	"github.com/holiman/uint256"
)

// BitLen returns the position of the most significant set bit of x, or 0 for
// x == 0. Matches math/big.Int.BitLen for non-negative values.
func BitLen(x uint64) int {
	n := 0
	for x != 0 {
		n++
		x >>= 1
	}
	return n
}

// RoundUp rounds n up to the nearest multiple of unit. unit must be positive.
func RoundUp(n, unit int) int {
	if n < 0 {
		panic("wireint: RoundUp of negative length")
	}
	return (n + unit - 1) / unit * unit
}

// CheckIsMultiple reports whether n is an exact multiple of unit.
func CheckIsMultiple(n, unit int) bool {
	if n < 0 {
		panic("wireint: CheckIsMultiple of negative length")
	}
	return n%unit == 0
}

// PutLong writes the minimal big-endian encoding of v into dst starting at
// off, returning the number of bytes written. v must be non-negative.
func PutLong(v uint64, dst []byte, off int) int {
	if v == 0 {
		return 0
	}
	n := (BitLen64(v) + 7) / 8
	for i := n - 1; i >= 0; i-- {
		dst[off+i] = byte(v)
		v >>= 8
	}
	return n
}

// BitLen64 is BitLen for a full 64-bit operand, used where the fast integer
// path is known to be in range.
func BitLen64(x uint64) int {
	n := 0
	for x != 0 {
		n++
		x >>= 1
	}
	return n
}

// GetLong reads a minimal-length big-endian unsigned integer of len bytes
// starting at off.
func GetLong(src []byte, off, length int) uint64 {
	var v uint64
	for i := 0; i < length; i++ {
		v = v<<8 | uint64(src[off+i])
	}
	return v
}

// tt256 is 2**256, used to fold two's-complement negative big.Ints into
// their unsigned 256-bit representation.
var tt256 = new(big.Int).Lsh(big.NewInt(1), 256)

// MaxUint256 is 2**256 - 1.
var MaxUint256 = new(big.Int).Sub(tt256, big.NewInt(1))

// EncodeBigInt writes n into the trailing bytes of a 32-byte slot buf,
// zero/sign-extending the leading bytes. Negative n requires signed; signed
// values use two's-complement representation.
func EncodeBigInt(n *big.Int, buf []byte, signed bool) error {
	if len(buf) != 32 {
		panic("wireint: EncodeBigInt requires a 32-byte slot")
	}
	if n.Sign() < 0 {
		if !signed {
			return ErrNegativeValue
		}
		twos := new(big.Int).And(n, MaxUint256)
		twos.FillBytes(buf)
		return nil
	}

	bitLen := n.BitLen()
	maxBits := 256
	if signed {
		maxBits = 255
	}
	if bitLen > maxBits {
		return ErrIntegerTooLarge
	}
	n.FillBytes(buf)
	return nil
}

// DecodeBigInt reads a 32-byte two's-complement (if signed) or unsigned big
// integer from the front of data.
func DecodeBigInt(data []byte, signed bool) (*big.Int, error) {
	if len(data) < 32 {
		return nil, ErrShortBuffer
	}
	ret := new(big.Int).SetBytes(data[:32])
	if signed && data[0]&0x80 != 0 {
		ret.Sub(ret, tt256)
	}
	return ret, nil
}

// DecodeUint256 reads a 32-byte unsigned integer using the uint256 fast
// path, used for the address/uint256 hot path that avoids math/big
// allocation.
func DecodeUint256(data []byte) *uint256.Int {
	var n uint256.Int
	n.SetBytes32(data)
	return &n
}
