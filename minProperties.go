package jsonschema

// evaluateMinProperties requires a minimum number of members on an object
// instance.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-minproperties
func evaluateMinProperties(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindNumber); err != nil {
		return false, err
	}
	if instance.Kind != KindObject {
		return true, nil
	}
	return float64(len(instance.Children)) >= value.Number, nil
}
