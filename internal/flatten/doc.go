// Package flatten implements the flattening engine: it walks a struct
// definition's fields in order and replaces each flatten-marked field, in
// place, by the registered flat field list of its target type.
//
// Resolution is eager and registry entries are pre-flattened, so a
// definition is processed in a single linear walk with no recursion at
// call time; transitive flattening falls out of processing order. A
// flatten cycle cannot be constructed in a valid order and surfaces as an
// unknown-target error instead of infinite recursion.
//
// The package also provides the batch driver: Run executes a strict or
// lenient pass over an ordered definition sequence, and DependencyOrder
// derives a valid processing order for unordered inputs.
package flatten
