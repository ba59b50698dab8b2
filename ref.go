package jsonschema

import (
	"fmt"
	"strings"
)

// evaluateRef resolves a "$ref" and applies the referenced schema to the
// current instance.
// According to the JSON Schema Draft 2020-12:
//   - The value of "$ref" is a URI reference resolved against the schema's
//     base URI; the fragment, when present, is a JSON Pointer into the
//     referenced document.
//
// Resolution follows the location of the keyword itself. When the enclosing
// schema is anonymous (its locations begin with "#"), a fragment-only
// reference resolves within the "" registry entry and an absolute reference
// resolves to its own base; otherwise the reference is resolved against the
// schema's URI. The base must name a registered schema or resolution fails
// with ErrInvalidReference.
//
// Errors produced by the referenced schema propagate into the caller's
// buffer. A (target, instance) pair already on the active reference path is
// treated as vacuously valid, which keeps self-references that never consume
// instance from recursing forever.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-direct-references-with-ref
func evaluateRef(e *evaluator, value, instance, _ *Node, errs *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindString); err != nil {
		return false, err
	}
	ref := value.String

	var base, fragment string
	if strings.HasPrefix(value.Location, "#") {
		if strings.HasPrefix(ref, "#") {
			base, fragment = "", ref[1:]
		} else {
			base, fragment = splitLocation(ref)
		}
	} else {
		ownBase, _ := splitLocation(value.Location)
		base, fragment = splitLocation(resolveRelativeURI(ownBase, ref))
	}

	root := e.registry.Lookup(base)
	if root == nil {
		return false, errNotRegistered(base)
	}

	target, err := pointerGet(fragment, root)
	if err != nil {
		return false, err
	}

	key := visitKey{schema: target.Location, instance: instance.Location}
	if _, onPath := e.visited[key]; onPath {
		return true, nil
	}
	e.visited[key] = struct{}{}
	defer delete(e.visited, key)

	return e.apply(target, instance, errs)
}

func errNotRegistered(uri string) error {
	return fmt.Errorf("%w: no schema registered for %q", ErrInvalidReference, uri)
}
