/*
Package abi implements the Ethereum Contract ABI wire format: parsing a
canonical type descriptor string into an immutable type tree, and
validating, measuring, encoding, and decoding values against it.

Overview

Parse a type string once and reuse the resulting Type across any number of
encode/decode calls — Type values are immutable and safe for concurrent
read-only use:

	t, err := abi.ParseType("uint256[]")
	n, err := t.Validate(values)          // exact encoded byte length
	buf, err := t.Encode(values)           // validate + allocate + write
	back, err := t.Decode(buf)             // fully materialized Value

Function calls thread a 4-byte selector ahead of the encoded argument tuple;
Function itself never computes Keccak-256 — it is handed a hash provider at
construction (see NewFunction) so the core stays free of any hashing
implementation.

Quick Start

	sig, _ := abi.ParseTupleType("(bytes,bool,uint256[])")
	fn, _ := abi.NewFunction("sam", sig, nil, keccak256)
	call, _ := fn.EncodeCall(abi.NewBytes([]byte("dave")), abi.Bool(true), arr)

Type Mappings

	bool                 -> abi.Bool
	address              -> abi.Addr ([20]byte)
	uint<N>/int<N>       -> abi.Int (*big.Int, read with Value.AsBigInt);
	                        abi.Uint64/abi.Int64 build one from a native integer
	fixed/ufixed         -> abi.Int holding the scaled integer mantissa
	bytes<N>             -> abi.FixedBytes ([]byte of length N)
	bytes / string       -> abi.NewBytes / abi.Str
	T[] / T[K]           -> abi.Seq (elements read with Value.Elems)
	(T1,...,Tn)          -> abi.NewTuple
*/
package abi
