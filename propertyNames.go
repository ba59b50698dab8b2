package jsonschema

// evaluatePropertyNames validates every member name of the instance against
// the "propertyNames" schema.
// According to the JSON Schema Draft 2020-12:
//   - The value of "propertyNames" must be a valid schema.
//   - Every property name of the instance must validate against it; the name
//     is validated as if it were a string instance.
//
// The synthesized string node is located at the member's value slot, so
// failures point at the offending member.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-propertynames
func evaluatePropertyNames(e *evaluator, value, instance, _ *Node, errs *[]OutputUnit) (bool, error) {
	if instance.Kind != KindObject {
		return true, nil
	}

	valid := true
	for _, member := range instance.Children {
		name := &Node{
			Kind:     KindString,
			Location: appendLocation(instance.Location, member.key()),
			String:   member.key(),
		}
		ok, err := e.apply(value, name, errs)
		if err != nil {
			return false, err
		}
		if !ok {
			valid = false
		}
	}
	return valid, nil
}
