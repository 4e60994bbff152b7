package analyze

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"flatten-generator/internal/registry"
	"flatten-generator/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads compiled Go packages and turns their exported struct
// types into registry entries, so schema files can flatten types that
// live in ordinary Go code.
type Analyzer struct {
	structs []seededStruct
}

// seededStruct is one exported struct type extracted from a package.
type seededStruct struct {
	pkgPath string
	name    string
	fields  []schema.Field
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// LoadPackages loads the specified packages and extracts their exported
// struct types. Patterns are standard Go package patterns (e.g.,
// "./sensor", "flatten-generator/sensor").
func (a *Analyzer) LoadPackages(patterns ...string) error {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return nil
}

// Structs returns the number of extracted struct types.
func (a *Analyzer) Structs() int {
	return len(a.structs)
}

// Seed registers every extracted struct type's field list under the
// type's bare name. Go structs carry no flatten markers, so seeded
// entries satisfy the registry's flat-fields invariant by construction.
// Returns the number of registered entries.
func (a *Analyzer) Seed(reg *registry.Registry) (int, error) {
	for _, s := range a.structs {
		if err := reg.Register(s.name, s.fields); err != nil {
			return 0, fmt.Errorf("seeding %s.%s: %w", s.pkgPath, s.name, err)
		}
	}

	return len(a.structs), nil
}

// processPackage extracts exported struct types from a loaded package.
// scope.Names() is sorted, so extraction order is deterministic.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	scope := pkg.Types.Scope()

	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		typeName, ok := obj.(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		a.structs = append(a.structs, seededStruct{
			pkgPath: pkg.PkgPath,
			name:    name,
			fields:  structFields(st, pkg.Types),
		})
	}
}

// structFields converts a struct type's exported fields, in declaration
// order, into schema fields.
func structFields(st *types.Struct, within *types.Package) []schema.Field {
	var fields []schema.Field

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		fields = append(fields, schema.Field{
			Name: field.Name(),
			Type: schema.TypeRef{Name: typeString(field.Type(), within)},
		})
	}

	return fields
}

// typeString renders a field type relative to its defining package:
// same-package types print bare, foreign types print as pkgname.Type.
func typeString(t types.Type, within *types.Package) string {
	qualifier := func(p *types.Package) string {
		if p == within {
			return ""
		}

		return p.Name()
	}

	return types.TypeString(t, qualifier)
}
