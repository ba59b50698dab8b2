package jsonschema

// evaluateNot inverts the result of the "not" schema.
// According to the JSON Schema Draft 2020-12:
//   - An instance is valid against "not" if it fails to validate against the
//     given schema.
//
// The sub-evaluation only makes a decision, so it runs against a throwaway
// buffer and produces no child errors.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-not
func evaluateNot(e *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	discard := []OutputUnit{}
	ok, err := e.apply(value, instance, &discard)
	if err != nil {
		return false, err
	}
	return !ok, nil
}
