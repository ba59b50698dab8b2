package jsonschema

import (
	"fmt"
	"strings"
)

// evaluateID accepts "$id" at the document root and rejects it anywhere else.
// Embedded "$id" introduces a nested base URI scope, which this validator
// does not implement; failing loudly beats resolving references against the
// wrong base.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-the-id-keyword
func evaluateID(_ *evaluator, value, _, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindString); err != nil {
		return false, err
	}
	if !strings.HasSuffix(value.Location, "#/$id") {
		return false, fmt.Errorf("%w: embedded $id at %q", ErrUnsupportedFeature, value.Location)
	}
	return true, nil
}
