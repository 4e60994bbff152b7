package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatten-generator/internal/schema"
)

func fields(names ...string) []schema.Field {
	out := make([]schema.Field, len(names))
	for i, n := range names {
		out[i] = schema.Field{Name: n, Type: schema.TypeRef{Name: "f32"}}
	}

	return out
}

func TestRegistry_LookupIdempotent(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register("Position", fields("X", "Y", "Z")))

	for i := 0; i < 3; i++ {
		got, ok := reg.Lookup("Position")
		require.True(t, ok)
		assert.Equal(t, fields("X", "Y", "Z"), got)
	}
}

func TestRegistry_LookupAbsent(t *testing.T) {
	reg := New()

	got, ok := reg.Lookup("Nope")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRegistry_RejectDuplicate(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register("Position", fields("X")))

	err := reg.Register("Position", fields("Y"))
	require.Error(t, err)

	var dup *DuplicateDefinitionError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "Position", dup.Name)

	// Existing entry survives the rejected overwrite.
	got, ok := reg.Lookup("Position")
	require.True(t, ok)
	assert.Equal(t, fields("X"), got)
}

func TestRegistry_OverwritePolicy(t *testing.T) {
	reg := NewWithPolicy(PolicyOverwrite)
	require.NoError(t, reg.Register("Position", fields("X")))
	require.NoError(t, reg.Register("Position", fields("Y", "Z")))

	got, ok := reg.Lookup("Position")
	require.True(t, ok)
	assert.Equal(t, fields("Y", "Z"), got)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_LookupReturnsCopy(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register("Position", fields("X", "Y")))

	got, ok := reg.Lookup("Position")
	require.True(t, ok)

	got[0].Name = "mutated"

	again, ok := reg.Lookup("Position")
	require.True(t, ok)
	assert.Equal(t, "X", again[0].Name)
}

func TestRegistry_RegisterCopiesInput(t *testing.T) {
	reg := New()
	in := fields("X")
	require.NoError(t, reg.Register("Position", in))

	in[0].Name = "mutated"

	got, ok := reg.Lookup("Position")
	require.True(t, ok)
	assert.Equal(t, "X", got[0].Name)
}

func TestRegistry_EntriesInRegistrationOrder(t *testing.T) {
	reg := NewWithPolicy(PolicyOverwrite)
	require.NoError(t, reg.Register("B", fields("B1")))
	require.NoError(t, reg.Register("A", fields("A1")))
	require.NoError(t, reg.Register("B", fields("B2")))

	entries := reg.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].Name)
	assert.Equal(t, fields("B2"), entries[0].Fields)
	assert.Equal(t, "A", entries[1].Name)
}
