package jsonschema

// evaluateRequired checks that every listed property is present.
// According to the JSON Schema Draft 2020-12:
//   - The value of "required" must be an array of unique strings.
//   - An object instance is valid only if it contains every listed name.
//
// Missing names are reported as a single keyword-level failure.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-required
func evaluateRequired(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindArray); err != nil {
		return false, err
	}
	if instance.Kind != KindObject {
		return true, nil
	}

	for _, name := range value.Children {
		if err := assertKind(name, KindString); err != nil {
			return false, err
		}
		if !objectHas(instance, name.String) {
			return false, nil
		}
	}
	return true, nil
}
