package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityError,
		Code:     "unmapped_member",
		Message:  "source member MethodCrypto has no destination member",
		TypePair: "store.PaymentMethod->warehouse.PaymentMethod",
		Member:   "MethodCrypto",
	}

	assert.Equal(t,
		"[store.PaymentMethod->warehouse.PaymentMethod] MethodCrypto: [unmapped_member] source member MethodCrypto has no destination member",
		d.String())
}

func TestDiagnosticStringWithSuggestion(t *testing.T) {
	d := Diagnostic{
		Severity:   SeverityError,
		Code:       "missing_enum_map",
		Message:    "no explicit enum map",
		Suggestion: "cfg.CreateMap(store.OrderStatus(0), warehouse.OrderStatus(0))",
	}

	assert.Equal(t,
		"[missing_enum_map] no explicit enum map\ncfg.CreateMap(store.OrderStatus(0), warehouse.OrderStatus(0))",
		d.String())
}

func TestDiagnosticsError(t *testing.T) {
	var d Diagnostics
	require.NoError(t, d.Error())
	assert.False(t, d.HasErrors())

	d.AddWarning("overrides_ignored", "member overrides only apply in by-name mode", "a->b", "")
	require.NoError(t, d.Error(), "warnings alone do not fail validation")

	d.AddError("unmapped_member", "first", "a->b", "X")
	d.AddError("unmapped_member", "second", "a->b", "Y")
	require.Error(t, d.Error())
	assert.Contains(t, d.Error().Error(), "first")
	assert.Contains(t, d.Error().Error(), "second")
}

func TestDiagnosticsMergeAndAppend(t *testing.T) {
	var a, b Diagnostics
	a.AddError("x", "one", "", "")
	b.AddWarning("y", "two", "", "")
	b.Append(Diagnostic{Severity: SeverityError, Code: "z", Message: "three"})

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}
