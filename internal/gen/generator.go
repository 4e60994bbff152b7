package gen

import (
	"fmt"
	"go/format"
	"strings"
	"unicode"

	"flatten-generator/internal/flatten"
	"flatten-generator/internal/schema"
)

// Generator renders resolved struct definitions as Go source. It only
// ever sees flat field lists; flatten markers never reach this layer.
type Generator struct {
	// PackageName is the package clause of generated files.
	PackageName string
}

// NewGenerator creates a Generator for the given output package.
func NewGenerator(packageName string) *Generator {
	return &Generator{PackageName: packageName}
}

// GeneratedFile is one output file ready to be written.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

// Render generates a single Go source file containing all resolved
// structs, gofmt-formatted.
func (g *Generator) Render(resolved []flatten.Resolved) (*GeneratedFile, error) {
	var sb strings.Builder

	sb.WriteString("// Code generated by flatten-generator. DO NOT EDIT.\n\n")
	sb.WriteString(fmt.Sprintf("package %s\n\n", g.PackageName))

	for _, r := range resolved {
		g.writeStruct(&sb, r)
	}

	src := sb.String()

	formatted, err := format.Source([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w\n%s", err, src)
	}

	return &GeneratedFile{
		Filename: g.PackageName + ".go",
		Content:  formatted,
	}, nil
}

// writeStruct renders one flat struct. Attribute tokens are opaque to
// the generator and are preserved as doc-comment lines.
func (g *Generator) writeStruct(sb *strings.Builder, r flatten.Resolved) {
	def := r.Definition

	for _, attr := range def.Attrs {
		sb.WriteString(fmt.Sprintf("// attr: %s\n", attr))
	}

	sb.WriteString(fmt.Sprintf("type %s struct {\n", identFor(def.Name, def.Visibility)))

	for _, f := range r.Fields {
		for _, attr := range f.Attrs {
			sb.WriteString(fmt.Sprintf("\t// attr: %s\n", attr))
		}

		sb.WriteString(fmt.Sprintf("\t%s %s\n", f.Name, goType(f.Type)))
	}

	sb.WriteString("}\n\n")
}

// identFor adjusts the identifier's first rune to realize visibility in
// Go's export rules.
func identFor(name string, vis schema.Visibility) string {
	if name == "" {
		return name
	}

	runes := []rune(name)
	if vis == schema.VisPublic {
		runes[0] = unicode.ToUpper(runes[0])
	} else {
		runes[0] = unicode.ToLower(runes[0])
	}

	return string(runes)
}

// typeAliases maps schema surface type names onto Go type names. Names
// not in the table pass through verbatim.
var typeAliases = map[string]string{
	"f32": "float32",
	"f64": "float64",
	"i8":  "int8",
	"i16": "int16",
	"i32": "int32",
	"i64": "int64",
	"u8":  "uint8",
	"u16": "uint16",
	"u32": "uint32",
	"u64": "uint64",
}

// goType renders a type reference as a Go type expression.
func goType(r schema.TypeRef) string {
	if r.Pkg == "" {
		if alias, ok := typeAliases[r.Name]; ok {
			return alias
		}

		return r.Name
	}

	return r.Pkg + "." + r.Name
}
