package jsonschema

import "unicode/utf8"

// evaluateMinLength requires a minimum length for a string instance, counted
// in Unicode code points.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-minlength
func evaluateMinLength(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindNumber); err != nil {
		return false, err
	}
	if instance.Kind != KindString {
		return true, nil
	}
	return float64(utf8.RuneCountInString(instance.String)) >= value.Number, nil
}
