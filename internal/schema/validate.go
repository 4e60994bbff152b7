package schema

import (
	"errors"
	"fmt"
)

// Validate checks a single definition for structural problems the engine
// cannot repair: missing names, duplicate field names, and flatten markers
// that reference no type. Field semantics (whether the referenced type
// exists) are the engine's concern, not the loader's.
func Validate(def *StructDefinition) error {
	if def.Name == "" {
		return errors.New("struct definition has empty name")
	}

	seen := make(map[string]struct{}, len(def.Fields))

	for i := range def.Fields {
		f := &def.Fields[i]

		if f.Name == "" {
			return fmt.Errorf("struct %s: field %d has empty name", def.Name, i)
		}

		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("struct %s: duplicate field name %q", def.Name, f.Name)
		}
		seen[f.Name] = struct{}{}

		if f.Flatten && f.Type.IsZero() {
			return fmt.Errorf("struct %s: flatten marker on field %q references no type", def.Name, f.Name)
		}

		if !f.Flatten && f.Type.IsZero() {
			return fmt.Errorf("struct %s: field %q has empty type", def.Name, f.Name)
		}
	}

	return nil
}
