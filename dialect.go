package jsonschema

import "fmt"

// draft202012URI is the sole dialect this validator accepts.
const draft202012URI = "https://json-schema.org/draft/2020-12/schema"

// evaluateDialect gates "$schema". Any dialect other than draft 2020-12
// fails with ErrUnsupportedDialect rather than being silently interpreted
// under the wrong rules.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-the-schema-keyword
func evaluateDialect(_ *evaluator, value, _, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindString); err != nil {
		return false, err
	}
	if value.String != draft202012URI {
		return false, fmt.Errorf("%w: %q at %q", ErrUnsupportedDialect, value.String, value.Location)
	}
	return true, nil
}
