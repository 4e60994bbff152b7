package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityError,
		Code:     "unknown-target",
		Message:  "field flattens unknown type Missing",
		Struct:   "Host",
		Field:    "m",
	}
	assert.Equal(t, "[Host] m: [unknown-target] field flattens unknown type Missing", d.String())

	bare := Diagnostic{Message: "just a note"}
	assert.Equal(t, "just a note", bare.String())
}

func TestDiagnostics_ErrorAggregation(t *testing.T) {
	var diags Diagnostics
	assert.NoError(t, diags.Error())
	assert.False(t, diags.HasErrors())

	diags.AddWarning("w", "warned", "S", "")
	assert.NoError(t, diags.Error())

	diags.AddError("e1", "first", "S", "a")
	diags.AddError("e2", "second", "S", "b")
	require.True(t, diags.HasErrors())

	err := diags.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")
}
