package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*SchemaFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a SchemaFile.
func Parse(data []byte) (*SchemaFile, error) {
	var sf SchemaFile

	err := yaml.Unmarshal(data, &sf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&sf)

	return &sf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(sf *SchemaFile) {
	if sf.Version == "" {
		sf.Version = "1"
	}
}

// LoadDefinitions is a convenience that loads, converts, and validates a
// schema file, returning definitions in file order.
func LoadDefinitions(path string) ([]StructDefinition, error) {
	sf, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	defs, err := sf.Definitions()
	if err != nil {
		return nil, err
	}

	for i := range defs {
		if err := Validate(&defs[i]); err != nil {
			return nil, err
		}
	}

	return defs, nil
}
