// Package schema provides the canonical struct schema model consumed by
// the flattening engine, plus YAML parsing and validation for schema
// files.
//
// Key types:
//   - Field: name, type reference, attribute tokens, flatten marker
//   - StructDefinition: ordered field list with identity by name
//   - SchemaFile: YAML root, struct order is processing order
//
// The flatten marker is recognized position-independently: either the
// dedicated "flatten" key on a field or a "flatten" token anywhere in its
// attrs list. Attribute tokens are otherwise opaque and carried through
// unchanged.
package schema
