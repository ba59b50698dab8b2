package jsonschema

// evaluateUniqueItems checks that all array elements are distinct when
// "uniqueItems" is true.
// According to the JSON Schema Draft 2020-12:
//   - If "uniqueItems" is false, the instance always validates.
//   - If it is true, no two elements may be equal JSON values.
//
// Equality is canonical JSON equality: objects with the same members in a
// different order compare equal.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-uniqueitems
func evaluateUniqueItems(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindBoolean); err != nil {
		return false, err
	}
	if !value.Bool || instance.Kind != KindArray {
		return true, nil
	}

	seen := make(map[string]struct{}, len(instance.Children))
	for _, element := range instance.Children {
		key := canonicalize(element)
		if _, duplicate := seen[key]; duplicate {
			return false, nil
		}
		seen[key] = struct{}{}
	}
	return true, nil
}
