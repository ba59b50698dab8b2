package jsonschema

// evaluateConst checks that the instance equals the constant, under canonical
// JSON equality.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-const
func evaluateConst(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	return canonicalEqual(instance, value), nil
}
