package jsonschema

// evaluateExclusiveMaximum checks the strict upper bound on a numeric
// instance.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-exclusivemaximum
func evaluateExclusiveMaximum(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindNumber); err != nil {
		return false, err
	}
	if instance.Kind != KindNumber {
		return true, nil
	}
	return instance.Number < value.Number, nil
}
