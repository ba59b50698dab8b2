package jsonschema

// evaluateMaximum checks the inclusive upper bound on a numeric instance.
// Non-numeric instances pass: the keyword does not apply to them.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maximum
func evaluateMaximum(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindNumber); err != nil {
		return false, err
	}
	if instance.Kind != KindNumber {
		return true, nil
	}
	return instance.Number <= value.Number, nil
}
