package abi

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser renders a tuple's element names into exported Go field names,
// adapted from the source's struct.go (which used a package-level Title
// caser over the same golang.org/x/text/cases API).
var titleCaser = cases.Title(language.Und, cases.NoLower)

// StructField names one element of a tuple Type as it would appear on a
// generated Go struct.
type StructField struct {
	Type *Type
	Name string
}

// StructFieldsFromTuple builds the Go-facing field list for a tuple Type,
// falling back to "FieldN" when an element has no name (spec §4.3, "tuple
// element naming is a side channel" — absent names still need a field
// identity for generated code).
func StructFieldsFromTuple(t *Type) ([]StructField, error) {
	if t.kind != KindTuple {
		return nil, fmt.Errorf("abi: StructFieldsFromTuple on non-tuple type %q", t.canonical)
	}
	fields := make([]StructField, len(t.children))
	names := t.names
	for i := range t.children {
		name := ""
		if names != nil {
			name = names[i]
		}
		if name == "" {
			name = fmt.Sprintf("Field%d", i+1)
		}
		fields[i] = StructField{Type: &t.children[i], Name: titleCaser.String(name)}
	}
	return fields, nil
}

// HasDynamicField reports whether any field of the tuple is itself
// dynamically sized.
func HasDynamicField(fields []StructField) bool {
	for _, f := range fields {
		if f.Type.IsDynamic() {
			return true
		}
	}
	return false
}
