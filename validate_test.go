package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// traceOf reduces a result to its (absoluteKeywordLocation, instanceLocation)
// pairs for comparison against expected failure traces.
func traceOf(result *Result) [][2]string {
	trace := make([][2]string, 0, len(result.Errors))
	for _, unit := range result.Errors {
		trace = append(trace, [2]string{unit.AbsoluteKeywordLocation, unit.InstanceLocation})
	}
	return trace
}

func TestValidateRefTrace(t *testing.T) {
	result, err := ValidateJSON(
		[]byte(`{"$ref": "#/$defs/string", "$defs": {"string": {"type": "string"}}}`),
		[]byte(`42`),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, [][2]string{
		{"#/$ref", "#"},
		{"#/$defs/string/type", "#"},
	}, traceOf(result))
}

func TestValidateAdditionalPropertiesTrace(t *testing.T) {
	result, err := ValidateJSON(
		[]byte(`{"additionalProperties": false}`),
		[]byte(`{"foo": 42, "bar": 24}`),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, [][2]string{
		{"#/additionalProperties", "#"},
		{"#/additionalProperties", "#/foo"},
		{"#/additionalProperties", "#/bar"},
	}, traceOf(result))
}

func TestValidatePropertiesAndRequiredTrace(t *testing.T) {
	result, err := ValidateJSON(
		[]byte(`{"properties": {"foo": {"type": "string"}, "bar": {"type": "boolean"}}, "required": ["foo", "bar"]}`),
		[]byte(`{"foo": 42}`),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, [][2]string{
		{"#/properties", "#"},
		{"#/properties/foo/type", "#/foo"},
		{"#/required", "#"},
	}, traceOf(result))
}

func TestValidatePatternPropertiesTrace(t *testing.T) {
	result, err := ValidateJSON(
		[]byte(`{"patternProperties": {"^f": {"type": "string"}, "^b": {"type": "number"}}}`),
		[]byte(`{"foo": 42, "bar": true}`),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid)

	// The caret is percent-encoded in the keyword locations.
	assert.Contains(t, traceOf(result), [2]string{"#/patternProperties/%5Ef/type", "#/foo"})
	assert.Contains(t, traceOf(result), [2]string{"#/patternProperties/%5Eb/type", "#/bar"})
}

func TestValidateConditionalTrace(t *testing.T) {
	schema := []byte(`{"if": {"type": "string"}, "then": {"minLength": 1}}`)

	result, err := ValidateJSON(schema, []byte(`""`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, [][2]string{
		{"#/then", "#"},
		{"#/then/minLength", "#"},
	}, traceOf(result))

	result, err = ValidateJSON(schema, []byte(`"foo"`))
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateNestedPropertiesTrace(t *testing.T) {
	result, err := ValidateJSON(
		[]byte(`{"properties": {"foo": {"properties": {"bar": {"type": "boolean"}}}}}`),
		[]byte(`{"foo": {"bar": 42}}`),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, [][2]string{
		{"#/properties", "#"},
		{"#/properties/foo/properties", "#/foo"},
		{"#/properties/foo/properties/bar/type", "#/foo/bar"},
	}, traceOf(result))
}

func TestValidateBooleanSchemas(t *testing.T) {
	instances := []any{nil, true, 42.0, "text", []any{1.0}, map[string]any{"a": 1.0}}

	for _, instance := range instances {
		result, err := Validate(true, instance)
		require.NoError(t, err)
		assert.True(t, result.Valid)

		result, err = Validate(false, instance)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "#", result.Errors[0].AbsoluteKeywordLocation)
		assert.Equal(t, "#", result.Errors[0].InstanceLocation)
	}
}

func TestValidateUnknownKeywordsIgnored(t *testing.T) {
	result, err := ValidateJSON(
		[]byte(`{"title": "anything", "x-vendor": {"type": "object"}, "type": "number"}`),
		[]byte(`3`),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateDeterministic(t *testing.T) {
	schema := []byte(`{"properties": {"a": {"type": "string"}, "b": {"minimum": 3}}, "required": ["c"]}`)
	instance := []byte(`{"a": 1, "b": 2}`)

	first, err := ValidateJSON(schema, instance)
	require.NoError(t, err)
	second, err := ValidateJSON(schema, instance)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidateTypeEquivalentToAllOf(t *testing.T) {
	instances := [][]byte{[]byte(`42`), []byte(`"s"`), []byte(`[1]`), []byte(`null`)}

	for _, instance := range instances {
		plain, err := ValidateJSON([]byte(`{"type": "string"}`), instance)
		require.NoError(t, err)
		wrapped, err := ValidateJSON([]byte(`{"allOf": [{"type": "string"}]}`), instance)
		require.NoError(t, err)
		assert.Equal(t, plain.Valid, wrapped.Valid, "instance %s", instance)
	}
}

func TestValidateErrorsNonEmptyWhenInvalid(t *testing.T) {
	result, err := ValidateJSON([]byte(`{"type": "string"}`), []byte(`42`))
	require.NoError(t, err)
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	for _, unit := range result.Errors {
		assert.Contains(t, unit.AbsoluteKeywordLocation, "#")
		assert.Contains(t, unit.InstanceLocation, "#")
	}
}

func TestValidateWithID(t *testing.T) {
	result, err := ValidateJSON(
		[]byte(`{"$id": "https://example.com/person", "type": "object", "required": ["name"]}`),
		[]byte(`{"name": "jam"}`),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	// The schema's locations are rooted at its $id.
	result, err = ValidateJSON(
		[]byte(`{"$id": "https://example.com/person", "type": "object"}`),
		[]byte(`42`),
	)
	require.NoError(t, err)
	require.False(t, result.Valid)
	assert.Equal(t, "https://example.com/person#/type", result.Errors[0].AbsoluteKeywordLocation)
	assert.Equal(t, "#", result.Errors[0].InstanceLocation)
}

func TestValidateRegistered(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(map[string]any{"type": "string"}, "https://example.com/string"))

	result, err := registry.ValidateRegistered("https://example.com/string", "hello")
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = registry.ValidateRegistered("https://example.com/string", 42)
	require.NoError(t, err)
	assert.False(t, result.Valid)

	_, err = registry.ValidateRegistered("https://example.com/missing", "hello")
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestValidateYAML(t *testing.T) {
	result, err := ValidateYAML(
		[]byte("type: object\nrequired:\n  - name\n"),
		[]byte("name: jam\n"),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = ValidateYAML(
		[]byte("type: object\nrequired:\n  - name\n"),
		[]byte("age: 3\n"),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}
