package jsonschema

// evaluatePrefixItems validates the leading array elements positionally.
// According to the JSON Schema Draft 2020-12:
//   - The value of "prefixItems" must be a non-empty array of valid schemas.
//   - Element i of the instance must validate against schema i, for every
//     index covered by both the instance and the prefix.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-prefixitems
func evaluatePrefixItems(e *evaluator, value, instance, _ *Node, errs *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindArray); err != nil {
		return false, err
	}
	if instance.Kind != KindArray {
		return true, nil
	}

	valid := true
	for i, subschema := range value.Children {
		if i >= len(instance.Children) {
			break
		}
		ok, err := e.apply(subschema, instance.Children[i], errs)
		if err != nil {
			return false, err
		}
		if !ok {
			valid = false
		}
	}
	return valid, nil
}
