package flatten

import (
	"flatten-generator/internal/registry"
	"flatten-generator/internal/schema"
)

// Engine resolves flatten markers against a caller-owned registry.
//
// Resolution is eager: a definition's output is registered the moment it
// resolves, so registry entries are always fully flat and Flatten never
// re-walks a target. A type can therefore only be flattened into a host
// if it was processed before the host.
type Engine struct {
	reg *registry.Registry
}

// New creates an Engine bound to the given registry.
func New(reg *registry.Registry) *Engine {
	return &Engine{reg: reg}
}

// Registry returns the registry the engine is bound to.
func (e *Engine) Registry() *registry.Registry {
	return e.reg
}

// Flatten resolves one definition to its flat field list and registers
// the result under the definition's name.
//
// Non-flatten fields pass through unchanged, keeping their position.
// Each flatten-marked field is replaced, at its position, by the
// registered field list of its target type; the host field's own name,
// type, and attributes are discarded entirely.
//
// On any error the registry is left untouched: no partial entry is ever
// created for the failed definition.
func (e *Engine) Flatten(def schema.StructDefinition) ([]schema.Field, error) {
	// Marker sanity before any field work.
	for i := range def.Fields {
		f := &def.Fields[i]
		if f.Flatten && f.Type.IsZero() {
			return nil, &MalformedMarkerError{Definition: def.Name, Field: f.Name}
		}
	}

	out := make([]schema.Field, 0, len(def.Fields))

	for _, f := range def.Fields {
		if !f.Flatten {
			out = append(out, f)
			continue
		}

		fields, ok := e.reg.Lookup(f.Type.Name)
		if !ok {
			return nil, &UnknownTargetError{
				Definition: def.Name,
				Field:      f.Name,
				Target:     f.Type.Name,
			}
		}

		// Already fully resolved by the registry invariant; splice as-is.
		out = append(out, fields...)
	}

	if err := e.reg.Register(def.Name, out); err != nil {
		return nil, err
	}

	// Copy so the result does not alias the caller's attr slices.
	return schema.CloneFields(out), nil
}
