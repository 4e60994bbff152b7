package flatten

import "fmt"

// UnknownTargetError reports a flatten marker whose target type is not in
// the registry: never defined, defined later in the input, or genuinely
// absent. A flatten cycle also surfaces as this error, because the cyclic
// partner cannot have completed registration yet.
type UnknownTargetError struct {
	// Definition is the host struct being flattened.
	Definition string
	// Field is the flatten-marked host field.
	Field string
	// Target is the unresolved type name.
	Target string
}

// Error implements the error interface.
func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("struct %s: field %s flattens unknown type %s (not registered before this definition)",
		e.Definition, e.Field, e.Target)
}

// MalformedMarkerError reports a flatten marker that names no resolvable
// target type. It is surfaced before any field of the definition is
// processed.
type MalformedMarkerError struct {
	// Definition is the host struct being flattened.
	Definition string
	// Field is the marker-bearing field.
	Field string
}

// Error implements the error interface.
func (e *MalformedMarkerError) Error() string {
	return fmt.Sprintf("struct %s: malformed flatten marker on field %s", e.Definition, e.Field)
}

// CycleError reports a flatten reference cycle found while building a
// dependency order.
type CycleError struct {
	// Members are the struct names participating in (or blocked by) the
	// cycle, in input order.
	Members []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("flatten reference cycle involving: %v", e.Members)
}
