package jsonschema

// evaluateEnum checks that the instance equals one of the listed values.
// According to the JSON Schema Draft 2020-12:
//   - The value of "enum" must be an array; elements may be of any type.
//   - The instance is valid if it is equal to one of the elements, under
//     canonical JSON equality.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-enum
func evaluateEnum(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindArray); err != nil {
		return false, err
	}

	encoded := canonicalize(instance)
	for _, element := range value.Children {
		if canonicalize(element) == encoded {
			return true, nil
		}
	}
	return false, nil
}
