package jsonschema

import (
	"regexp"
	"strings"
)

// evaluateAdditionalProperties applies the "additionalProperties" schema to
// the instance members claimed by neither sibling "properties" nor sibling
// "patternProperties".
// According to the JSON Schema Draft 2020-12:
//   - The value of "additionalProperties" must be a valid schema (including
//     the boolean schemas).
//   - It applies to every instance member whose name is not listed in
//     "properties" and matches no pattern in "patternProperties".
//
// The claimed set is expressed as a single pattern union: each "properties"
// key anchored and quoted as "^key$", each "patternProperties" key taken
// verbatim. An empty union degenerates to the never-match pattern, so every
// member counts as additional.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-additionalproperties
func evaluateAdditionalProperties(e *evaluator, value, instance, schema *Node, errs *[]OutputUnit) (bool, error) {
	if instance.Kind != KindObject {
		return true, nil
	}

	var parts []string
	if properties := objectGet(schema, "properties"); properties != nil && properties.Kind == KindObject {
		for _, property := range properties.Children {
			parts = append(parts, "^"+regexp.QuoteMeta(property.key())+"$")
		}
	}
	if patternProperties := objectGet(schema, "patternProperties"); patternProperties != nil && patternProperties.Kind == KindObject {
		for _, patternProperty := range patternProperties.Children {
			parts = append(parts, patternProperty.key())
		}
	}

	union := neverMatchPattern
	if len(parts) > 0 {
		union = strings.Join(parts, "|")
	}
	re, err := compilePattern(union)
	if err != nil {
		return false, err
	}

	valid := true
	for _, member := range instance.Children {
		if matchPattern(re, member.key()) {
			continue
		}
		ok, err := e.apply(value, member.value(), errs)
		if err != nil {
			return false, err
		}
		if !ok {
			valid = false
		}
	}
	return valid, nil
}
