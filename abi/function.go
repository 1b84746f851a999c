package abi

import (
	"fmt"
)

// HashFunc is the external Keccak-256 collaborator this package never
// implements itself (spec §4.4.7, §6): callers supply it, typically a
// one-line adapter around github.com/ethereum/go-ethereum/crypto.Keccak256Hash,
// whose variadic signature is not itself assignable to HashFunc.
type HashFunc func(data []byte) [32]byte

// Function binds a name and an input/output tuple type to a selector
// computed through an injected hash provider (spec §4.4.7). It generalizes
// the source's pkg/abi Function/Argument model to the runtime Type
// descriptors.
type Function struct {
	Name     string
	Inputs   *Type // tuple type
	Outputs  *Type // tuple type, may be nil for a void return
	selector [4]byte
}

// NewFunction builds a Function and computes its 4-byte selector as the
// first 4 bytes of Keccak-256 of the canonical signature "name(T1,T2,...)".
func NewFunction(name string, inputs *Type, outputs *Type, hash HashFunc) (*Function, error) {
	if inputs == nil || inputs.kind != KindTuple {
		return nil, fmt.Errorf("abi: Function inputs must be a tuple type")
	}
	sig := name + inputs.canonical
	digest := hash([]byte(sig))
	var sel [4]byte
	copy(sel[:], digest[:4])
	return &Function{Name: name, Inputs: inputs, Outputs: outputs, selector: sel}, nil
}

// Selector returns the function's 4-byte selector.
func (f *Function) Selector() [4]byte { return f.selector }

// Signature returns the canonical "name(T1,T2,...)" signature string.
func (f *Function) Signature() string { return f.Name + f.Inputs.canonical }

// EncodeCall encodes a call: the 4-byte selector followed by the
// head/tail-encoded input tuple (spec §4.4.7).
func (f *Function) EncodeCall(args ...Value) ([]byte, error) {
	tuple := NewTuple(args...)
	body, err := f.Inputs.Encode(tuple)
	if err != nil {
		return nil, fmt.Errorf("abi: encoding call to %s: %w", f.Name, err)
	}
	out := make([]byte, 4+len(body))
	copy(out[:4], f.selector[:])
	copy(out[4:], body)
	return out, nil
}

// DecodeCall strips and checks the 4-byte selector, then decodes the
// remaining bytes against f.Inputs.
func (f *Function) DecodeCall(data []byte, opts ...DecodeOption) (Value, error) {
	if len(data) < 4 {
		return Value{}, ErrTruncatedInput
	}
	var got [4]byte
	copy(got[:], data[:4])
	if got != f.selector {
		return Value{}, fmt.Errorf("abi: selector mismatch for %s", f.Name)
	}
	return f.Inputs.Decode(data[4:], opts...)
}

// DecodeReturns decodes raw return data (no selector prefix) against
// f.Outputs.
func (f *Function) DecodeReturns(data []byte, opts ...DecodeOption) (Value, error) {
	if f.Outputs == nil {
		if len(data) != 0 {
			return Value{}, ErrTrailingBytes
		}
		return NewTuple(), nil
	}
	return f.Outputs.Decode(data, opts...)
}

// Event binds a name and an input tuple type to the 32-byte topic hash of
// its signature (spec §4.4.7 generalization). Non-dynamic indexed
// arguments are ABI-encoded into their own topic; dynamic indexed
// arguments are hashed instead, per Solidity's event-encoding rules — the
// source's EncodeEvent/DecodeEvent split kept the same distinction.
type Event struct {
	Name      string
	Inputs    *Type // tuple type
	Indexed   []bool
	Anonymous bool
	topic     [32]byte
}

// NewEvent builds an Event and computes its topic-0 hash (skipped entirely
// when Anonymous).
func NewEvent(name string, inputs *Type, indexed []bool, anonymous bool, hash HashFunc) (*Event, error) {
	if inputs == nil || inputs.kind != KindTuple {
		return nil, fmt.Errorf("abi: Event inputs must be a tuple type")
	}
	if len(indexed) != inputs.Arity() {
		return nil, ErrNameCountMismatch
	}
	sig := name + inputs.canonical
	return &Event{
		Name:      name,
		Inputs:    inputs,
		Indexed:   indexed,
		Anonymous: anonymous,
		topic:     hash([]byte(sig)),
	}, nil
}

// Topic0 returns the event's signature topic hash.
func (e *Event) Topic0() [32]byte { return e.topic }

// EncodeTopics produces the indexed-argument topics (topic-0 first, unless
// Anonymous) and EncodeData produces the ABI-encoded tuple of non-indexed
// arguments, following the teacher's EncodeEvent split (utils.go).
func (e *Event) EncodeTopics(args []Value, hash HashFunc) ([][32]byte, error) {
	var topics [][32]byte
	if !e.Anonymous {
		topics = append(topics, e.topic)
	}
	children := e.Inputs.Children()
	for i, indexed := range e.Indexed {
		if !indexed {
			continue
		}
		c := children[i]
		if !c.dynamic {
			enc, err := c.Encode(args[i])
			if err != nil {
				return nil, withPath(err, tupleIndexPath(i))
			}
			var t [32]byte
			copy(t[:], enc)
			topics = append(topics, t)
		} else {
			enc, err := c.Encode(args[i])
			if err != nil {
				return nil, withPath(err, tupleIndexPath(i))
			}
			topics = append(topics, hash(enc))
		}
	}
	return topics, nil
}

// EncodeData ABI-encodes the non-indexed arguments as a tuple, in
// declaration order.
func (e *Event) EncodeData(args []Value) ([]byte, error) {
	children := e.Inputs.Children()
	var dataChildren []Type
	var dataArgs []Value
	for i, indexed := range e.Indexed {
		if indexed {
			continue
		}
		dataChildren = append(dataChildren, children[i])
		dataArgs = append(dataArgs, args[i])
	}
	t, err := newTupleType(dataChildren, nil)
	if err != nil {
		return nil, err
	}
	return t.Encode(NewTuple(dataArgs...))
}

// Select returns a new tuple Type containing only the children whose
// corresponding mask entry is true (spec §6). mask length must equal
// arity.
func (t *Type) Select(mask []bool) (*Type, error) {
	if t.kind != KindTuple {
		return nil, ErrWrongValueClass
	}
	if len(mask) != len(t.children) {
		return nil, ErrArrayLengthMismatch
	}
	var children []Type
	var names []string
	for i, keep := range mask {
		if !keep {
			continue
		}
		children = append(children, t.children[i])
		if t.names != nil {
			names = append(names, t.names[i])
		}
	}
	if t.names == nil {
		names = nil
	}
	nt, err := newTupleType(children, names)
	if err != nil {
		return nil, err
	}
	return &nt, nil
}

// Exclude returns a new tuple Type omitting the children whose
// corresponding mask entry is true — the complement of Select (spec §6,
// §8: "select(m) and exclude(m) are complements over the children").
func (t *Type) Exclude(mask []bool) (*Type, error) {
	inverted := make([]bool, len(mask))
	for i, m := range mask {
		inverted[i] = !m
	}
	return t.Select(inverted)
}
