package jsonschema

// evaluatePattern tests a string instance against the "pattern" regular
// expression.
// According to the JSON Schema Draft 2020-12:
//   - The value of "pattern" must be a string that is a valid regular
//     expression.
//   - The instance is valid if the expression matches anywhere in it; no
//     anchors are implied.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-pattern
func evaluatePattern(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindString); err != nil {
		return false, err
	}
	re, err := compilePattern(value.String)
	if err != nil {
		return false, err
	}
	if instance.Kind != KindString {
		return true, nil
	}
	return matchPattern(re, instance.String), nil
}
