// Package gen emits resolved flat structs as gofmt-formatted Go source
// and writes the generated files to disk.
package gen
