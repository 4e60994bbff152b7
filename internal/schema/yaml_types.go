package schema

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaFile represents the root of a YAML struct schema file.
// Struct order in the file is the processing order.
type SchemaFile struct {
	// Version of the schema format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Structs is the ordered list of struct definitions.
	Structs []StructDef `yaml:"structs"`
}

// StructDef is the YAML form of one struct definition.
type StructDef struct {
	// Name of the struct. Required, non-empty.
	Name string `yaml:"name"`

	// Visibility is "public" (or "pub") or "private". Defaults to private.
	Visibility string `yaml:"visibility,omitempty"`

	// Attrs are attribute tokens attached to the struct itself.
	Attrs AttrList `yaml:"attrs,omitempty"`

	// Fields is the ordered field list.
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef is the YAML form of one field. Two syntaxes are accepted:
//   - Full object: {name: enable, type: bool, attrs: [...], flatten: true}
//   - Shorthand, a one-entry map: {enable: bool}
type FieldDef struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Attrs   AttrList `yaml:"attrs,omitempty"`
	Flatten bool     `yaml:"flatten,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FieldDef) UnmarshalYAML(unmarshal func(any) error) error {
	// Full object form. An alias type avoids recursing into this method.
	type fieldDefPlain FieldDef

	var full fieldDefPlain
	if err := unmarshal(&full); err == nil && full.Name != "" {
		*f = FieldDef(full)
		return nil
	}

	// Shorthand form: {fieldName: typeName}
	var m map[string]string
	if err := unmarshal(&m); err == nil && len(m) == 1 {
		for name, typ := range m {
			f.Name = name
			f.Type = typ
		}

		return nil
	}

	return errors.New("expected field object with name/type or {name: type} shorthand")
}

// AttrList is a list of attribute tokens that can be unmarshaled from a
// single string or a list of strings.
type AttrList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *AttrList) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*a = []string{single}
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*a = multi
		return nil
	}

	return errors.New("expected string or list of strings for attrs")
}

// ParseTypeRef parses "Name" or "pkg.Name" into a TypeRef. The last dot
// separates package from type, so "a/b.C" also works.
func ParseTypeRef(s string) TypeRef {
	s = strings.TrimSpace(s)

	if i := strings.LastIndex(s, "."); i >= 0 {
		return TypeRef{Pkg: s[:i], Name: s[i+1:]}
	}

	return TypeRef{Name: s}
}

// parseVisibility maps the YAML visibility string to a Visibility.
func parseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "private":
		return VisPrivate, nil
	case "public", "pub":
		return VisPublic, nil
	default:
		return VisPrivate, fmt.Errorf("unknown visibility %q", s)
	}
}

// Definition converts the YAML form into the canonical StructDefinition.
// The flatten marker is recognized either from the dedicated flatten key
// or from a "flatten" token at any position in the field's attrs; the
// token is consumed, not carried into Field.Attrs.
func (sd *StructDef) Definition() (StructDefinition, error) {
	vis, err := parseVisibility(sd.Visibility)
	if err != nil {
		return StructDefinition{}, fmt.Errorf("struct %s: %w", sd.Name, err)
	}

	def := StructDefinition{
		Name:       sd.Name,
		Visibility: vis,
		Attrs:      toAttrs(sd.Attrs),
	}

	for _, fd := range sd.Fields {
		field := Field{
			Name:    fd.Name,
			Type:    ParseTypeRef(fd.Type),
			Flatten: fd.Flatten,
		}

		for _, tok := range fd.Attrs {
			if Attribute(tok) == FlattenAttr {
				field.Flatten = true
				continue
			}

			field.Attrs = append(field.Attrs, Attribute(tok))
		}

		def.Fields = append(def.Fields, field)
	}

	return def, nil
}

// Definitions converts every struct in the file, in order.
func (sf *SchemaFile) Definitions() ([]StructDefinition, error) {
	defs := make([]StructDefinition, 0, len(sf.Structs))

	for i := range sf.Structs {
		def, err := sf.Structs[i].Definition()
		if err != nil {
			return nil, err
		}

		defs = append(defs, def)
	}

	return defs, nil
}

func toAttrs(tokens []string) []Attribute {
	if len(tokens) == 0 {
		return nil
	}

	attrs := make([]Attribute, len(tokens))
	for i, tok := range tokens {
		attrs[i] = Attribute(tok)
	}

	return attrs
}
