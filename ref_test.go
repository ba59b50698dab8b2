package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefWithinAnonymousSchema(t *testing.T) {
	schema := []byte(`{
		"properties": {
			"home": {"$ref": "#/$defs/address"},
			"work": {"$ref": "#/$defs/address"}
		},
		"$defs": {
			"address": {"type": "object", "required": ["street"]}
		}
	}`)

	result, err := ValidateJSON(schema, []byte(`{"home": {"street": "x"}, "work": {"street": "y"}}`))
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = ValidateJSON(schema, []byte(`{"home": {}}`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, traceOf(result), [2]string{"#/$defs/address/required", "#/home"})
}

func TestRefToRegisteredSchema(t *testing.T) {
	require.NoError(t, RegisterSchema(map[string]any{"type": "string"}, "https://example.com/string"))
	defer UnregisterSchema("https://example.com/string")

	result, err := ValidateJSON(
		[]byte(`{"$ref": "https://example.com/string"}`),
		[]byte(`"ok"`),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = ValidateJSON(
		[]byte(`{"$ref": "https://example.com/string"}`),
		[]byte(`42`),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, [][2]string{
		{"#/$ref", "#"},
		{"https://example.com/string#/type", "#"},
	}, traceOf(result))
}

func TestRefRelativeResolution(t *testing.T) {
	require.NoError(t, RegisterSchema(map[string]any{"type": "number"}, "https://example.com/schemas/number"))
	defer UnregisterSchema("https://example.com/schemas/number")

	// A relative $ref inside an identified schema resolves against its $id.
	result, err := ValidateJSON(
		[]byte(`{"$id": "https://example.com/schemas/root", "$ref": "number"}`),
		[]byte(`"not a number"`),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid)

	result, err = ValidateJSON(
		[]byte(`{"$id": "https://example.com/schemas/root", "$ref": "number"}`),
		[]byte(`3.5`),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestRefFragmentOfRegisteredSchema(t *testing.T) {
	require.NoError(t, RegisterSchemaJSON(
		[]byte(`{"$defs": {"port": {"type": "integer", "minimum": 1, "maximum": 65535}}}`),
		"https://example.com/net",
	))
	defer UnregisterSchema("https://example.com/net")

	result, err := ValidateJSON(
		[]byte(`{"$ref": "https://example.com/net#/$defs/port"}`),
		[]byte(`8080`),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = ValidateJSON(
		[]byte(`{"$ref": "https://example.com/net#/$defs/port"}`),
		[]byte(`0`),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, traceOf(result), [2]string{"https://example.com/net#/$defs/port/minimum", "#"})
}

func TestRefUnresolvable(t *testing.T) {
	_, err := ValidateJSON(
		[]byte(`{"$ref": "https://example.com/never-registered"}`),
		[]byte(`1`),
	)
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = ValidateJSON(
		[]byte(`{"$ref": "#/$defs/missing"}`),
		[]byte(`1`),
	)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestRefSelfReferenceTerminates(t *testing.T) {
	// A self-reference that consumes no instance is vacuously valid on
	// revisit instead of recursing forever.
	result, err := ValidateJSON([]byte(`{"$ref": "#"}`), []byte(`true`))
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestRefRecursiveSchemaOnShrinkingInstance(t *testing.T) {
	schema := []byte(`{
		"type": "object",
		"properties": {
			"value": {"type": "number"},
			"next": {"$ref": "#"}
		}
	}`)

	result, err := ValidateJSON(schema, []byte(`{"value": 1, "next": {"value": 2, "next": {"value": 3}}}`))
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = ValidateJSON(schema, []byte(`{"value": 1, "next": {"value": "two"}}`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
}
