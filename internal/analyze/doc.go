// Package analyze seeds the registry from compiled Go packages.
//
// It uses golang.org/x/tools/go/packages with go/types to extract the
// exported struct types of loaded packages and register their field
// lists, making types from separate compilation units available as
// flatten targets.
package analyze
