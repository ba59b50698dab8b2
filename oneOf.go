package jsonschema

// evaluateOneOf checks that the instance matches exactly one schema in the
// "oneOf" array.
// According to the JSON Schema Draft 2020-12:
//   - The value of "oneOf" must be a non-empty array of valid schemas.
//   - An instance validates successfully only if it validates against exactly
//     one of them.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-oneof
func evaluateOneOf(e *evaluator, value, instance, _ *Node, errs *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindArray); err != nil {
		return false, err
	}

	matches := 0
	for _, member := range value.Children {
		ok, err := e.apply(member, instance, errs)
		if err != nil {
			return false, err
		}
		if ok {
			matches++
		}
	}
	return matches == 1, nil
}
