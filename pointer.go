package jsonschema

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// pointerEscaper applies the RFC 6901 escapes. Escaping runs before percent
// encoding so a literal "/" in a member name survives as "~1".
var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// appendLocation extends a location string by one pointer segment. The
// segment is escaped per RFC 6901 and then percent-encoded for URI-fragment
// safety, so e.g. the pattern "^f" lands in the location as "%5Ef".
func appendLocation(location, segment string) string {
	return location + "/" + url.PathEscape(pointerEscaper.Replace(segment))
}

// pointerGet walks a JSON Pointer from the root of a located tree and returns
// the addressed value slot. Segments are percent-decoded and unescaped per
// RFC 6901. A dangling step fails with ErrInvalidReference.
func pointerGet(pointer string, root *Node) (*Node, error) {
	if pointer == "" {
		return root, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("%w: %q is not a json pointer", ErrInvalidReference, pointer)
	}

	node := root
	for _, segment := range jsonpointer.Parse(pointer) {
		decoded, err := url.PathUnescape(segment)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot decode segment %q", ErrInvalidReference, segment)
		}
		node, err = pointerStep(decoded, node)
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

// splitLocation separates a location or reference into its base URI and
// fragment parts.
func splitLocation(location string) (baseURI string, fragment string) {
	parts := strings.SplitN(location, "#", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return location, ""
}

// isAbsoluteURI checks if the given URI has a scheme and host.
func isAbsoluteURI(uri string) bool {
	u, err := url.Parse(uri)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// resolveRelativeURI resolves a reference against a base URI.
func resolveRelativeURI(baseURI, ref string) string {
	if isAbsoluteURI(ref) {
		return ref
	}
	base, err := url.Parse(baseURI)
	if err != nil || base.Scheme == "" {
		return ref
	}
	rel, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(rel).String()
}
