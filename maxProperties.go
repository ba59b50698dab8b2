package jsonschema

// evaluateMaxProperties limits the number of members of an object instance.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maxproperties
func evaluateMaxProperties(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindNumber); err != nil {
		return false, err
	}
	if instance.Kind != KindObject {
		return true, nil
	}
	return float64(len(instance.Children)) <= value.Number, nil
}
