package jsonschema

// evaluateProperties applies the "properties" subschemas to the matching
// instance members.
// According to the JSON Schema Draft 2020-12:
//   - The value of "properties" must be an object whose values are valid
//     schemas.
//   - For every instance member whose name appears in "properties", the
//     member value must validate against the corresponding subschema.
//   - Members without a corresponding subschema are unconstrained here.
//
// Non-object instances pass: the keyword does not apply to them.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-properties
func evaluateProperties(e *evaluator, value, instance, _ *Node, errs *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindObject); err != nil {
		return false, err
	}
	if instance.Kind != KindObject {
		return true, nil
	}

	valid := true
	for _, member := range instance.Children {
		subschema := objectGet(value, member.key())
		if subschema == nil {
			continue
		}
		ok, err := e.apply(subschema, member.value(), errs)
		if err != nil {
			return false, err
		}
		if !ok {
			valid = false
		}
	}
	return valid, nil
}
