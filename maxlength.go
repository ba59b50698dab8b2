package jsonschema

import "unicode/utf8"

// evaluateMaxLength limits the length of a string instance.
// According to the JSON Schema Draft 2020-12:
//   - Length is the number of Unicode code points, not bytes or UTF-16
//     units.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-maxlength
func evaluateMaxLength(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindNumber); err != nil {
		return false, err
	}
	if instance.Kind != KindString {
		return true, nil
	}
	return float64(utf8.RuneCountInString(instance.String)) <= value.Number, nil
}
