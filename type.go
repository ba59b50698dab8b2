package jsonschema

import (
	"fmt"
	"math"
)

// evaluateType checks the instance against the "type" keyword.
// According to the JSON Schema Draft 2020-12:
//   - The value of "type" must be a string or an array of unique strings.
//   - Valid names are the six primitive types ("null", "boolean", "object",
//     "array", "number", "string") and "integer", which matches any number
//     with a zero fractional part.
//   - The instance matches if its type corresponds to at least one name.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-type
func evaluateType(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	switch value.Kind {
	case KindString:
		return typeMatches(value.String, instance), nil
	case KindArray:
		for _, name := range value.Children {
			if err := assertKind(name, KindString); err != nil {
				return false, err
			}
			if typeMatches(name.String, instance) {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("%w: \"type\" at %q must be a string or an array of strings",
			ErrInvalidSchema, value.Location)
	}
}

func typeMatches(name string, instance *Node) bool {
	switch name {
	case "null":
		return instance.Kind == KindNull
	case "boolean":
		return instance.Kind == KindBoolean
	case "object":
		return instance.Kind == KindObject
	case "array":
		return instance.Kind == KindArray
	case "string":
		return instance.Kind == KindString
	case "number":
		return instance.Kind == KindNumber
	case "integer":
		return instance.Kind == KindNumber && math.Trunc(instance.Number) == instance.Number
	default:
		return false
	}
}
