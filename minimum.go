package jsonschema

// evaluateMinimum checks the inclusive lower bound on a numeric instance.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-minimum
func evaluateMinimum(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindNumber); err != nil {
		return false, err
	}
	if instance.Kind != KindNumber {
		return true, nil
	}
	return instance.Number >= value.Number, nil
}
