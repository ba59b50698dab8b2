package jsonschema

// evaluateAllOf checks the instance against every schema in the "allOf"
// array.
// According to the JSON Schema Draft 2020-12:
//   - The value of "allOf" must be a non-empty array of valid schemas.
//   - An instance validates successfully only if it validates against all of
//     them.
//
// Every member is evaluated even after a failure, so the buffer retains the
// errors of all failing members.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-allof
func evaluateAllOf(e *evaluator, value, instance, _ *Node, errs *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindArray); err != nil {
		return false, err
	}

	valid := true
	for _, member := range value.Children {
		ok, err := e.apply(member, instance, errs)
		if err != nil {
			return false, err
		}
		if !ok {
			valid = false
		}
	}
	return valid, nil
}
