package jsonschema

// evaluateAnyOf checks the instance against every schema in the "anyOf"
// array.
// According to the JSON Schema Draft 2020-12:
//   - The value of "anyOf" must be a non-empty array of valid schemas.
//   - An instance validates successfully if it validates against at least one
//     of them.
//
// Every member is attempted and the buffer accumulates the errors of every
// failing attempt; the dispatcher discards the buffer when the keyword as a
// whole passes. Callers must not rely on error absence in the passing case.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-anyof
func evaluateAnyOf(e *evaluator, value, instance, _ *Node, errs *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindArray); err != nil {
		return false, err
	}

	valid := false
	for _, member := range value.Children {
		ok, err := e.apply(member, instance, errs)
		if err != nil {
			return false, err
		}
		if ok {
			valid = true
		}
	}
	return valid, nil
}
