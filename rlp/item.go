package rlp

// Item is a read-only structural view over a span of an existing byte
// slice (spec §4.5): it never copies the payload, so its lifetime is tied
// to the buffer it was wrapped from. A string Item exposes raw bytes; a
// list Item exposes child Items walked from its payload span.
type Item struct {
	buffer     []byte // the full buffer the item was wrapped from
	dataStart  int    // offset of the payload within buffer
	dataLength int
	isList     bool
}

// IsList reports whether the item is an RLP list (vs. a string/byte item).
func (it Item) IsList() bool { return it.isList }

// Bytes returns the item's raw payload. For a list item this is the
// concatenated encoding of its elements, not a decoded value — use
// Elements to walk a list's children.
func (it Item) Bytes() []byte { return it.buffer[it.dataStart : it.dataStart+it.dataLength] }

// Len returns the payload length in bytes.
func (it Item) Len() int { return it.dataLength }

// String decodes a string item's payload as a Go string. Returns
// ErrExpectedString for a list item.
func (it Item) String() (string, error) {
	if it.isList {
		return "", ErrExpectedString
	}
	return string(it.Bytes()), nil
}

// Elements walks a list item's children in order, re-parsing each child's
// header from the list's payload span (spec §4.5 "c1 80" example: a list
// containing a single empty-string element). Returns ErrExpectedList for a
// non-list item.
func (it Item) Elements(strict bool) ([]Item, error) {
	if !it.isList {
		return nil, ErrExpectedList
	}
	payload := it.Bytes()
	var out []Item
	pos := 0
	for pos < len(payload) {
		child, consumed, err := wrap(payload[pos:], strict)
		if err == ErrTruncated {
			// payload ends at the list's declared end, so a child that runs
			// out of bytes here extends past its enclosing list.
			return nil, ErrElementOverflowsList
		}
		if err != nil {
			return nil, err
		}
		if pos+consumed > len(payload) {
			return nil, ErrElementOverflowsList
		}
		out = append(out, child)
		pos += consumed
	}
	return out, nil
}

// Wrap parses a single top-level RLP item from the start of buf. strict
// enables canonical-encoding enforcement (spec §4.5, §9 "strict by
// default"). consumed is the total number of bytes the item occupies,
// including its header — callers decoding a sequence of items use it to
// advance to the next one.
func Wrap(buf []byte, strict bool) (Item, int, error) {
	return wrap(buf, strict)
}

func wrap(buf []byte, strict bool) (Item, int, error) {
	h, err := parseHeader(buf, strict)
	if err != nil {
		return Item{}, 0, err
	}
	if h.dataIndex+h.dataLength > len(buf) {
		return Item{}, 0, ErrTruncated
	}
	it := Item{
		buffer:     buf,
		dataStart:  h.dataIndex,
		dataLength: h.dataLength,
		isList:     h.isList,
	}
	return it, h.dataIndex + h.dataLength, nil
}
