package jsonschema

// evaluateDependentRequired checks the property dependencies declared by
// "dependentRequired".
// According to the JSON Schema Draft 2020-12:
//   - The value of "dependentRequired" must be an object whose values are
//     arrays of unique strings.
//   - For every key that is present in the instance, every name listed under
//     that key must also be present.
//
// A violated dependency is reported as a single keyword-level failure with no
// child units.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-dependentrequired
func evaluateDependentRequired(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindObject); err != nil {
		return false, err
	}
	if instance.Kind != KindObject {
		return true, nil
	}

	for _, dependency := range value.Children {
		if !objectHas(instance, dependency.key()) {
			continue
		}
		required := dependency.value()
		if err := assertKind(required, KindArray); err != nil {
			return false, err
		}
		for _, name := range required.Children {
			if err := assertKind(name, KindString); err != nil {
				return false, err
			}
			if !objectHas(instance, name.String) {
				return false, nil
			}
		}
	}
	return true, nil
}
