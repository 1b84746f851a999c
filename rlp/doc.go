// Package rlp implements a read-only Recursive Length Prefix decoder:
// wrapping a byte slice into a structural Item view, walking list elements,
// and a buffered Stream reader for decoding a sequence of top-level items
// off an io.Reader without holding the whole input in memory.
//
// Encoding is intentionally out of scope here; RLP items arrive off the
// wire and are inspected, never constructed, by this package's callers.
package rlp
