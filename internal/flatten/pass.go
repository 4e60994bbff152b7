package flatten

import (
	"errors"
	"fmt"

	"flatten-generator/internal/common"
	"flatten-generator/internal/diagnostic"
	"flatten-generator/internal/registry"
	"flatten-generator/internal/schema"
)

// Mode selects the failure policy of a processing pass.
type Mode int

const (
	// ModeStrict aborts the whole pass on the first failed definition.
	ModeStrict Mode = iota

	// ModeLenient skips failed definitions, records them as diagnostics,
	// and keeps resolving the rest.
	ModeLenient
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeLenient:
		return "lenient"
	default:
		return common.UnknownStr
	}
}

// Resolved pairs a definition with its flat field list.
type Resolved struct {
	Definition schema.StructDefinition
	Fields     []schema.Field
}

// Result is the outcome of a pass over a definition sequence.
type Result struct {
	// Resolved holds successfully flattened definitions in input order.
	Resolved []Resolved
	// Diags collects per-definition failures (lenient mode) and progress
	// notes.
	Diags diagnostic.Diagnostics
}

// Run processes definitions in the given order against the engine's
// registry. In ModeStrict the first failure aborts the pass and is
// returned as the error; in ModeLenient failures become diagnostics and
// the partial Result is still returned with a nil error.
func (e *Engine) Run(defs []schema.StructDefinition, mode Mode) (*Result, error) {
	res := &Result{}

	for i := range defs {
		def := defs[i]

		fields, err := e.Flatten(def)
		if err != nil {
			if mode == ModeStrict {
				return nil, fmt.Errorf("flattening %s: %w", def.Name, err)
			}

			res.Diags.AddError(errorCode(err), err.Error(), def.Name, errorField(err))

			continue
		}

		res.Resolved = append(res.Resolved, Resolved{Definition: def, Fields: fields})
		res.Diags.AddInfo("resolved", fmt.Sprintf("resolved to %d fields", len(fields)), def.Name, "")
	}

	return res, nil
}

// errorCode maps engine errors to stable diagnostic codes.
func errorCode(err error) string {
	var unknown *UnknownTargetError
	if errors.As(err, &unknown) {
		return "unknown-target"
	}

	var malformed *MalformedMarkerError
	if errors.As(err, &malformed) {
		return "malformed-marker"
	}

	var dup *registry.DuplicateDefinitionError
	if errors.As(err, &dup) {
		return "duplicate-definition"
	}

	return "flatten-failed"
}

// errorField extracts the offending field name, if the error carries one.
func errorField(err error) string {
	var unknown *UnknownTargetError
	if errors.As(err, &unknown) {
		return unknown.Field
	}

	var malformed *MalformedMarkerError
	if errors.As(err, &malformed) {
		return malformed.Field
	}

	return ""
}
