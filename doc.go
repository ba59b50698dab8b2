// Package jsonschema validates JSON instances against JSON Schema draft
// 2020-12 documents.
//
// The engine is an interpreter: the schema document is turned into a located
// JSON tree — every node carries a "<base-uri>#<json-pointer>" location — and
// evaluated recursively against a located tree of the instance. On failure
// the result holds a trace of output units pairing the location of the
// rejecting schema node with the location of the rejected instance node, in
// document order of the schema.
//
// Basic usage:
//
//	result, err := jsonschema.ValidateJSON(
//		[]byte(`{"type": "object", "required": ["name"]}`),
//		[]byte(`{"name": "jam"}`),
//	)
//	if err != nil {
//		// the schema itself is broken, not the instance
//	}
//	if !result.Valid {
//		for _, unit := range result.Errors {
//			fmt.Println(unit.AbsoluteKeywordLocation, unit.InstanceLocation, unit.Error)
//		}
//	}
//
// Schemas referenced through "$ref" across documents are made resolvable with
// RegisterSchema (or Registry.Register for callers that want isolation from
// the package-level registry).
//
// The validator is strict about scope: "$anchor", "$dynamicAnchor",
// "$dynamicRef", "unevaluatedProperties", "unevaluatedItems", embedded "$id",
// and any "$schema" other than the draft 2020-12 meta-schema URI are rejected
// with an error instead of being silently ignored. Unrecognized keywords, as
// the specification requires, do not constrain validation.
package jsonschema
