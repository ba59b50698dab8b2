package jsonschema

import "math"

// evaluateContains counts the array elements matching the "contains" schema
// and checks the count against the sibling "minContains"/"maxContains"
// bounds.
// According to the JSON Schema Draft 2020-12:
//   - The value of "contains" must be a valid schema.
//   - "minContains" defaults to 1 and "maxContains" to unbounded; the number
//     of matching elements must fall within [minContains, maxContains].
//   - With "minContains" of 0 an empty array is valid.
//
// Failing elements contribute their errors to a shared buffer that the
// dispatcher merges only when the keyword as a whole fails.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-contains
func evaluateContains(e *evaluator, value, instance, schema *Node, errs *[]OutputUnit) (bool, error) {
	if instance.Kind != KindArray {
		return true, nil
	}

	minContains := 1.0
	if node := objectGet(schema, "minContains"); node != nil {
		if err := assertKind(node, KindNumber); err != nil {
			return false, err
		}
		minContains = node.Number
	}
	maxContains := math.Inf(1)
	if node := objectGet(schema, "maxContains"); node != nil {
		if err := assertKind(node, KindNumber); err != nil {
			return false, err
		}
		maxContains = node.Number
	}

	matches := 0
	for _, element := range instance.Children {
		ok, err := e.apply(value, element, errs)
		if err != nil {
			return false, err
		}
		if ok {
			matches++
		}
	}
	count := float64(matches)
	return count >= minContains && count <= maxContains, nil
}
