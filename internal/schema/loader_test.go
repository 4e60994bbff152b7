package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicYAML = `
version: "1"
structs:
  - name: NestedStruct
    fields:
      - {name: value_0, type: f32}
      - {value_1: f32}
  - name: BaseStruct
    visibility: public
    attrs: ["derive(Clone)"]
    fields:
      - {name: enable, type: bool}
      - {name: nested, type: NestedStruct, flatten: true}
`

func TestParse_Basic(t *testing.T) {
	sf, err := Parse([]byte(basicYAML))
	require.NoError(t, err)
	assert.Equal(t, "1", sf.Version)
	require.Len(t, sf.Structs, 2)

	defs, err := sf.Definitions()
	require.NoError(t, err)

	nested := defs[0]
	assert.Equal(t, "NestedStruct", nested.Name)
	assert.Equal(t, VisPrivate, nested.Visibility)
	require.Len(t, nested.Fields, 2)
	assert.Equal(t, Field{Name: "value_0", Type: TypeRef{Name: "f32"}}, nested.Fields[0])
	assert.Equal(t, "value_1", nested.Fields[1].Name, "shorthand form")

	base := defs[1]
	assert.Equal(t, VisPublic, base.Visibility)
	assert.Equal(t, []Attribute{"derive(Clone)"}, base.Attrs)
	assert.False(t, base.Fields[0].Flatten)
	assert.True(t, base.Fields[1].Flatten)
	assert.Equal(t, "NestedStruct", base.Fields[1].Type.Name)
}

func TestParse_FlattenMarkerAsAttrAnyPosition(t *testing.T) {
	src := `
structs:
  - name: Host
    fields:
      - {name: n, type: Nested, attrs: ["doc(first)", flatten, "doc(last)"]}
`
	sf, err := Parse([]byte(src))
	require.NoError(t, err)

	defs, err := sf.Definitions()
	require.NoError(t, err)

	f := defs[0].Fields[0]
	assert.True(t, f.Flatten)
	// The marker token is consumed; the other attrs survive in order.
	assert.Equal(t, []Attribute{"doc(first)", "doc(last)"}, f.Attrs)
}

func TestParse_SingleAttrString(t *testing.T) {
	src := `
structs:
  - name: Host
    attrs: "derive(Debug)"
    fields:
      - {a: bool}
`
	sf, err := Parse([]byte(src))
	require.NoError(t, err)

	defs, err := sf.Definitions()
	require.NoError(t, err)
	assert.Equal(t, []Attribute{"derive(Debug)"}, defs[0].Attrs)
}

func TestParse_BadVisibility(t *testing.T) {
	src := `
structs:
  - name: Host
    visibility: internal
    fields:
      - {a: bool}
`
	sf, err := Parse([]byte(src))
	require.NoError(t, err)

	_, err = sf.Definitions()
	require.Error(t, err)
	assert.ErrorContains(t, err, "visibility")
}

func TestParse_DefaultVersion(t *testing.T) {
	sf, err := Parse([]byte("structs: []"))
	require.NoError(t, err)
	assert.Equal(t, "1", sf.Version)
}

func TestParseTypeRef(t *testing.T) {
	assert.Equal(t, TypeRef{Name: "Position"}, ParseTypeRef("Position"))
	assert.Equal(t, TypeRef{Pkg: "sensor", Name: "Position"}, ParseTypeRef("sensor.Position"))
	assert.Equal(t, TypeRef{Pkg: "a/b", Name: "C"}, ParseTypeRef("a/b.C"))
	assert.True(t, ParseTypeRef("").IsZero())
}
