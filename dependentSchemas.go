package jsonschema

// evaluateDependentSchemas applies each dependent schema whose trigger
// property is present in the instance.
// According to the JSON Schema Draft 2020-12:
//   - The value of "dependentSchemas" must be an object whose values are
//     valid schemas.
//   - For every key that is also a member of the instance, the whole instance
//     must validate against the associated subschema.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-dependentschemas
func evaluateDependentSchemas(e *evaluator, value, instance, _ *Node, errs *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindObject); err != nil {
		return false, err
	}
	if instance.Kind != KindObject {
		return true, nil
	}

	valid := true
	for _, dependency := range value.Children {
		if !objectHas(instance, dependency.key()) {
			continue
		}
		ok, err := e.apply(dependency.value(), instance, errs)
		if err != nil {
			return false, err
		}
		if !ok {
			valid = false
		}
	}
	return valid, nil
}
