package schema

import (
	"strings"

	"flatten-generator/internal/common"
)

// Attribute is an opaque attribute token attached to a field or struct
// (e.g., "derive(Clone)", "doc(...)"). The engine never interprets
// attribute semantics; tokens are carried through verbatim and in order.
type Attribute string

// FlattenAttr is the attribute token that marks a field for flattening.
const FlattenAttr Attribute = "flatten"

// TypeRef references a type by name, optionally qualified by a package.
// Name is the registry key; Pkg only matters for generated output.
type TypeRef struct {
	Pkg  string
	Name string
}

// String returns a human-readable representation of the reference.
func (r TypeRef) String() string {
	if r.Pkg == "" {
		return r.Name
	}

	return r.Pkg + "." + r.Name
}

// IsZero returns true if the reference names no type at all.
func (r TypeRef) IsZero() bool {
	return r.Name == ""
}

// Field is a single struct field in declaration order.
type Field struct {
	// Name is the field identifier. Discarded entirely when Flatten is set
	// and the field is spliced away.
	Name string

	// Type is the declared field type. For flatten-marked fields this is
	// the flatten target.
	Type TypeRef

	// Attrs are the field's attribute tokens, order preserved. The flatten
	// marker itself is not stored here; it lives in Flatten.
	Attrs []Attribute

	// Flatten marks the field for replacement by its target's resolved
	// field list.
	Flatten bool
}

// Visibility of a struct definition in the generated output.
type Visibility int

const (
	VisPrivate Visibility = iota // unexported in generated code
	VisPublic                    // exported in generated code
)

// String returns a human-readable visibility name.
func (v Visibility) String() string {
	switch v {
	case VisPrivate:
		return "private"
	case VisPublic:
		return "public"
	default:
		return common.UnknownStr
	}
}

// StructDefinition is one struct schema as produced by the loader, in
// source order relative to its siblings. Identity is Name.
type StructDefinition struct {
	Name       string
	Visibility Visibility
	Attrs      []Attribute
	Fields     []Field
}

// HasFlatten returns true if any field carries a flatten marker.
func (d *StructDefinition) HasFlatten() bool {
	for _, f := range d.Fields {
		if f.Flatten {
			return true
		}
	}

	return false
}

// FlattenTargets returns the type names referenced by flatten-marked
// fields, in field order, duplicates included.
func (d *StructDefinition) FlattenTargets() []string {
	var targets []string

	for _, f := range d.Fields {
		if f.Flatten {
			targets = append(targets, f.Type.Name)
		}
	}

	return targets
}

// FieldNames returns the field names in declaration order.
func (d *StructDefinition) FieldNames() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}

	return names
}

// CloneFields returns a deep copy of a field list. Registry entries and
// engine outputs must never alias caller-owned slices.
func CloneFields(fields []Field) []Field {
	if len(fields) == 0 {
		return nil
	}

	out := make([]Field, len(fields))
	copy(out, fields)

	for i := range out {
		if len(out[i].Attrs) > 0 {
			attrs := make([]Attribute, len(out[i].Attrs))
			copy(attrs, out[i].Attrs)
			out[i].Attrs = attrs
		}
	}

	return out
}

// FieldsString renders a field list as "name type, name type" for error
// messages and debug output.
func FieldsString(fields []Field) string {
	var sb strings.Builder

	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(f.Name)
		sb.WriteString(" ")
		sb.WriteString(f.Type.String())
	}

	return sb.String()
}
