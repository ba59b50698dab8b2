package jsonschema

import "errors"

// === Input Errors ===
var (
	// ErrInvalidJSON is returned when a value cannot be represented as a JSON tree.
	ErrInvalidJSON = errors.New("invalid json")
)

// === Schema Errors ===
var (
	// ErrInvalidSchema is returned when the schema itself is malformed.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrInvalidReference is returned when a $ref cannot be resolved.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrUnsupportedFeature is returned when the schema uses a keyword this
	// validator rejects rather than ignores.
	ErrUnsupportedFeature = errors.New("unsupported feature")

	// ErrUnsupportedDialect is returned when $schema names any dialect other
	// than draft 2020-12.
	ErrUnsupportedDialect = errors.New("unsupported dialect")
)

// === Serialization Errors ===
var (
	// ErrJSONUnmarshal is returned when there is an error unmarshalling JSON.
	ErrJSONUnmarshal = errors.New("json unmarshal failed")

	// ErrYAMLUnmarshal is returned when there is an error unmarshalling YAML.
	ErrYAMLUnmarshal = errors.New("yaml unmarshal failed")
)
