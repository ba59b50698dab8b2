package jsonschema

// evaluatePatternProperties applies the "patternProperties" subschemas to the
// instance members whose names match the associated pattern.
// According to the JSON Schema Draft 2020-12:
//   - The value of "patternProperties" must be an object whose keys are
//     regular expressions and whose values are valid schemas.
//   - For every pattern and every instance member whose name matches it, the
//     member value must validate against the associated subschema.
//
// Patterns are not implicitly anchored; a member name may match several
// patterns and is then validated against each of them.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-patternproperties
func evaluatePatternProperties(e *evaluator, value, instance, _ *Node, errs *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindObject); err != nil {
		return false, err
	}
	if instance.Kind != KindObject {
		return true, nil
	}

	valid := true
	for _, patternProperty := range value.Children {
		re, err := compilePattern(patternProperty.key())
		if err != nil {
			return false, err
		}

		for _, member := range instance.Children {
			if !matchPattern(re, member.key()) {
				continue
			}
			ok, err := e.apply(patternProperty.value(), member.value(), errs)
			if err != nil {
				return false, err
			}
			if !ok {
				valid = false
			}
		}
	}
	return valid, nil
}
