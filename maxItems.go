package jsonschema

// evaluateMaxItems limits the length of an array instance.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maxitems
func evaluateMaxItems(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindNumber); err != nil {
		return false, err
	}
	if instance.Kind != KindArray {
		return true, nil
	}
	return float64(len(instance.Children)) <= value.Number, nil
}
